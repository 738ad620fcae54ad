package order_put

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

	var orderUpdateDTO dto.OrderUpdate
	err := json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID: &id,
	}

	// Опциональные параметры
	if orderUpdateDTO.Status != nil {
		statusType := entities.OrderStatusType(*orderUpdateDTO.Status)
		orderModifyEntity.Status = &statusType
	}
	if orderUpdateDTO.Destination != nil {
		orderModifyEntity.DestinationLatitude = &orderUpdateDTO.Destination.Latitude
		orderModifyEntity.DestinationLongitude = &orderUpdateDTO.Destination.Longitude
	}
	if orderUpdateDTO.Priority != nil {
		orderModifyEntity.Priority = orderUpdateDTO.Priority
	}

	res, err := h.service.UpdateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidLatitude),
			errors.Is(err, order.ErrInvalidLongitude),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:     res.ID,
		Status: res.Status.String(),
		Destination: dto.Location{
			Latitude:  res.DestinationLatitude,
			Longitude: res.DestinationLongitude,
		},
		Priority: res.Priority,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
