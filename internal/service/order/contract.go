//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type ForecastGateway interface {
	GetForecast(ctx context.Context, orderID string, destinationLatitude, destinationLongitude float64, urgency entities.UrgencyType) (*entities.Forecast, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
