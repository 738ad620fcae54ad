package orders_get

import (
	"encoding/json"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
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
	orders, err := h.service.GetOrders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Order, 0, len(orders))
	for _, orderEntity := range orders {
		response = append(response, toDTO(orderEntity))
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
