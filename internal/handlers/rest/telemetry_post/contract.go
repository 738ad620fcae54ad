//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=telemetry_post_test
package telemetry_post

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Ingest(ctx context.Context, orderID string, currentLatitude, currentLongitude float64) (*entities.TelemetrySample, error)
}
