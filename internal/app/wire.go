//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	forecastGateway "service/internal/gateway/http/forecast"
	"service/internal/handlers/rest/order_delete"
	"service/internal/handlers/rest/order_get"
	"service/internal/handlers/rest/order_post"
	"service/internal/handlers/rest/order_put"
	"service/internal/handlers/rest/orders_get"
	"service/internal/handlers/rest/telemetry_get"
	"service/internal/handlers/rest/telemetry_post"
	"service/internal/handlers/tasks/order_stats"
	"service/internal/pkg/config"

	orderRepo "service/internal/repository/order"
	telemetryRepo "service/internal/repository/telemetry"
	orderService "service/internal/service/order"
	telemetryService "service/internal/service/telemetry"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OrderStatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceTelemetry  ServiceTelemetry
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	order_post.Service
	order_put.Service
	order_delete.Service
	orders_get.Service
}

type ServiceTelemetry interface {
	telemetry_get.Service
	telemetry_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderStatsInterval,

		provideOrderRepository,
		provideTelemetryRepository,

		provideHTTPClient,
		provideForecastGateway,

		provideServiceOrder,
		provideServiceTelemetry,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceTelemetry), new(*telemetryService.Telemetry)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(telemetryService.Repository), new(*telemetryRepo.Repository)),
		wire.Bind(new(orderService.ForecastGateway), new(*forecastGateway.ForecastGateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_stats.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceTelemetry *telemetryService.Telemetry
}

// InitializeTelemetryWorkerApp для Kafka воркера (cmd/worker-telemetry-ingest)
func InitializeTelemetryWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideTelemetryRepository,
		provideServiceTelemetry,

		wire.Bind(new(telemetryService.Repository), new(*telemetryRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTelemetryRepository(querier *querier.Querier) *telemetryRepo.Repository {
	return telemetryRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	// Бюджет на запрос живет в самом гейтвее, клиент без общего таймаута.
	return &http.Client{}
}

func provideForecastGateway(client *http.Client, cfg *config.Config) *forecastGateway.ForecastGateway {
	return forecastGateway.New(client, cfg.Forecast.BaseURL)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	gateway orderService.ForecastGateway,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(log, repository, gateway, txManager)
}

func provideServiceTelemetry(repository telemetryService.Repository) *telemetryService.Telemetry {
	return telemetryService.New(repository)
}

func provideOrderStatsInterval(cfg *config.Config) OrderStatsInterval {
	return OrderStatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	orderStatsService order_stats.Service,
	interval OrderStatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(orderStatsService, time.Duration(interval))
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
