package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		Priority: orderCreateDTO.Priority,
	}
	if orderCreateDTO.Status != nil {
		statusType := entities.OrderStatusType(*orderCreateDTO.Status)
		orderModifyEntity.Status = &statusType
	}
	if orderCreateDTO.Destination != nil {
		orderModifyEntity.DestinationLatitude = &orderCreateDTO.Destination.Latitude
		orderModifyEntity.DestinationLongitude = &orderCreateDTO.Destination.Longitude
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidLatitude),
			errors.Is(err, order.ErrInvalidLongitude),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:     orderEntity.ID,
		Status: orderEntity.Status.String(),
		Destination: dto.Location{
			Latitude:  orderEntity.DestinationLatitude,
			Longitude: orderEntity.DestinationLongitude,
		},
		Priority: orderEntity.Priority,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
