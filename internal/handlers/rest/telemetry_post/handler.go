package telemetry_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/service/telemetry"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var telemetryCreateDTO dto.TelemetryCreate
	err := json.NewDecoder(r.Body).Decode(&telemetryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if telemetryCreateDTO.CurrentLatitude == nil || telemetryCreateDTO.CurrentLongitude == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sample, err := h.service.Ingest(r.Context(), id, *telemetryCreateDTO.CurrentLatitude, *telemetryCreateDTO.CurrentLongitude)
	if err != nil {
		switch {
		case errors.Is(err, telemetry.ErrInvalidLatitude),
			errors.Is(err, telemetry.ErrInvalidLongitude):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TelemetrySample{
		OrderID:          sample.OrderID,
		Timestamp:        sample.Timestamp,
		CurrentLatitude:  sample.CurrentLatitude,
		CurrentLongitude: sample.CurrentLongitude,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
