package order_stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"service/internal/entities"
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

var ordersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_by_status",
		Help: "Current number of orders per status",
	},
	[]string{"status"},
)

type OrderStats struct {
	service  Service
	interval time.Duration
}

func NewOrderStats(service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

// Do выполняет логику задачи.
func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// Статусы без заказов обнуляем, иначе gauge застревает на прошлом значении.
	for _, status := range []entities.OrderStatusType{
		entities.OrderPending,
		entities.OrderConfirmed,
		entities.OrderInTransit,
		entities.OrderDelivered,
		entities.OrderCancelled,
	} {
		// Метрики Prometheus
		ordersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (o *OrderStats) Info() string {
	return "order stats"
}
