package forecast

import (
	"fmt"

	"service/internal/entities"
)

// Внутри модель camelCase, на проводе snake_case - перевод живет только тут.
type forecastRequest struct {
	DestinationLatitude  float64 `json:"destination_latitude"`
	DestinationLongitude float64 `json:"destination_longitude"`
	Priority             string  `json:"priority"`
}

type forecastResponse struct {
	DistanceKm              *float64 `json:"distance_km"`
	EstimatedArrivalMinutes *float64 `json:"estimated_arrival_minutes"`
}

func fromDomainRequest(destinationLatitude, destinationLongitude float64, urgency entities.UrgencyType) forecastRequest {
	return forecastRequest{
		DestinationLatitude:  destinationLatitude,
		DestinationLongitude: destinationLongitude,
		Priority:             urgency.String(),
	}
}

func toDomain(resp *forecastResponse) (*entities.Forecast, error) {
	if resp == nil || resp.DistanceKm == nil || resp.EstimatedArrivalMinutes == nil {
		return nil, fmt.Errorf("%w: missing forecast fields", ErrBadResponse)
	}

	return &entities.Forecast{
		DistanceKm:              *resp.DistanceKm,
		EstimatedArrivalMinutes: *resp.EstimatedArrivalMinutes,
	}, nil
}
