package order

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"service/internal/entities"
	"service/pkg/logger"
)

// enrichmentParallelism ограничивает одновременные запросы к сервису
// прогнозирования при обогащении списка заказов.
const enrichmentParallelism = 8

type Order struct {
	log             serviceLogger
	repository      Repository
	forecastGateway ForecastGateway
	txManager       TxManager
}

func New(log serviceLogger, repository Repository, forecastGateway ForecastGateway, txManager TxManager) *Order {
	serviceLog := log.With()

	return &Order{
		log:             serviceLog,
		repository:      repository,
		forecastGateway: forecastGateway,
		txManager:       txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.DestinationLatitude == nil ||
		orderModify.DestinationLongitude == nil ||
		orderModify.Priority == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidLatitude(*orderModify.DestinationLatitude) {
		return nil, ErrInvalidLatitude
	}
	if !isValidLongitude(*orderModify.DestinationLongitude) {
		return nil, ErrInvalidLongitude
	}

	// Запрошенный статус принимаем на входе, но игнорируем:
	// новый заказ всегда стартует в PENDING.
	pending := entities.OrderPending
	orderModify.ID = nil
	orderModify.Status = &pending

	order, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// GetOrder возвращает заказ, обогащенный прогнозом best-effort:
// недоступность прогноза не превращает успешный lookup в ошибку.
func (s *Order) GetOrder(ctx context.Context, id string) (*entities.EnrichedOrder, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	enriched := s.enrich(ctx, *order)
	return &enriched, nil
}

func (s *Order) GetOrders(ctx context.Context) ([]entities.EnrichedOrder, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	enriched := make([]entities.EnrichedOrder, len(orders))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(enrichmentParallelism)
	for i := range orders {
		group.Go(func() error {
			enriched[i] = s.enrich(groupCtx, orders[i])
			return nil
		})
	}
	// ошибок тут не бывает - провал обогащения одного заказа не трогает остальные
	_ = group.Wait()

	return enriched, nil
}

func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}

	if orderModify.Status == nil &&
		orderModify.DestinationLatitude == nil &&
		orderModify.DestinationLongitude == nil &&
		orderModify.Priority == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	// Координаты назначения меняются только парой.
	if (orderModify.DestinationLatitude == nil) != (orderModify.DestinationLongitude == nil) {
		return nil, ErrMissingRequiredFields
	}

	if orderModify.Status != nil && !isValidStatus(orderModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if orderModify.DestinationLatitude != nil && !isValidLatitude(*orderModify.DestinationLatitude) {
		return nil, ErrInvalidLatitude
	}
	if orderModify.DestinationLongitude != nil && !isValidLongitude(*orderModify.DestinationLongitude) {
		return nil, ErrInvalidLongitude
	}

	order, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}

func (s *Order) DeleteOrder(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete order: %w", err)
	}

	return deleted, nil
}

func (s *Order) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return counts, nil
}

func (s *Order) enrich(ctx context.Context, order entities.Order) entities.EnrichedOrder {
	forecast, err := s.forecastGateway.GetForecast(
		ctx,
		order.ID,
		order.DestinationLatitude,
		order.DestinationLongitude,
		order.Urgency(),
	)
	if err != nil {
		s.log.With(
			logger.NewField("order", order.ID),
			logger.NewField("error", err),
		).Warn("forecast unavailable, returning order without prediction")
		return entities.EnrichedOrder{Order: order}
	}

	return entities.EnrichedOrder{
		Order:    order,
		Forecast: forecast,
	}
}
