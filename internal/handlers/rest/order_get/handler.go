package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/service/order"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDTO(*orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Поля прогноза появляются в ответе только когда прогноз реально получен.
func toDTO(enriched entities.EnrichedOrder) dto.Order {
	orderDTO := dto.Order{
		ID:     enriched.ID,
		Status: enriched.Status.String(),
		Destination: dto.Location{
			Latitude:  enriched.DestinationLatitude,
			Longitude: enriched.DestinationLongitude,
		},
		Priority: enriched.Priority,
	}

	if enriched.Forecast != nil {
		orderDTO.DistanceKm = &enriched.Forecast.DistanceKm
		orderDTO.EstimatedArrivalMinutes = &enriched.Forecast.EstimatedArrivalMinutes
	}

	return orderDTO
}
