package telemetry

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
)

type Telemetry struct {
	repository Repository
}

func New(repository Repository) *Telemetry {
	return &Telemetry{
		repository: repository,
	}
}

// Ingest проставляет сэмплу время приема (целые секунды epoch) и
// дописывает его в хранилище. Это первичная запись, а не обогащение:
// ошибка хранилища отдается вызывающему как есть.
func (s *Telemetry) Ingest(ctx context.Context, orderID string, currentLatitude, currentLongitude float64) (*entities.TelemetrySample, error) {
	if !isValidLatitude(currentLatitude) {
		return nil, ErrInvalidLatitude
	}
	if !isValidLongitude(currentLongitude) {
		return nil, ErrInvalidLongitude
	}

	sample := entities.TelemetrySample{
		OrderID:          orderID,
		Timestamp:        time.Now().UTC().Unix(),
		CurrentLatitude:  currentLatitude,
		CurrentLongitude: currentLongitude,
	}

	if err := s.repository.Insert(ctx, sample); err != nil {
		return nil, fmt.Errorf("ingest telemetry: %w", err)
	}

	return &sample, nil
}

func (s *Telemetry) ListByOrder(ctx context.Context, orderID string) ([]entities.TelemetrySample, error) {
	samples, err := s.repository.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list telemetry: %w", err)
	}

	return samples, nil
}

func isValidLatitude(latitude float64) bool {
	return latitude >= -90 && latitude <= 90
}

func isValidLongitude(longitude float64) bool {
	return longitude >= -180 && longitude <= 180
}
