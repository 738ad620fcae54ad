//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=telemetry_test
package telemetry

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Insert(ctx context.Context, sampleEntity entities.TelemetrySample) error
	ListByOrder(ctx context.Context, orderID string) ([]entities.TelemetrySample, error)
}
