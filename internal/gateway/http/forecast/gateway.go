package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"service/internal/entities"
)

const (
	serviceName = "forecasting-service"
)

// Жесткий потолок на весь запрос: прогноз - необязательное обогащение,
// и ждать его дольше нет смысла. Ретраев тут нет по той же причине,
// повторная попытка не уложилась бы в бюджет.
const requestTimeout = 300 * time.Millisecond

type ForecastGateway struct {
	client  httpDoer
	baseURL string
}

func New(client httpDoer, baseURL string) *ForecastGateway {
	return &ForecastGateway{
		client:  client,
		baseURL: baseURL,
	}
}

func (g *ForecastGateway) GetForecast(
	ctx context.Context,
	orderID string,
	destinationLatitude, destinationLongitude float64,
	urgency entities.UrgencyType,
) (*entities.Forecast, error) {
	var forecast *entities.Forecast

	err := g.executeWithMetrics(ctx, "GetForecast", func(ctx context.Context) error {
		var err error
		forecast, err = g.getForecast(ctx, orderID, destinationLatitude, destinationLongitude, urgency)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway forecast, get forecast: %s: %w", orderID, err)
	}

	return forecast, nil
}

func (g *ForecastGateway) getForecast(
	ctx context.Context,
	orderID string,
	destinationLatitude, destinationLongitude float64,
	urgency entities.UrgencyType,
) (*entities.Forecast, error) {
	payload, err := json.Marshal(fromDomainRequest(destinationLatitude, destinationLongitude, urgency))
	if err != nil {
		return nil, fmt.Errorf("marshal forecast request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	// Без завершающего слэша: иначе сервис отвечает 307, а редирект теряет тело.
	url := fmt.Sprintf("%s/api/forecast/%s", g.baseURL, orderID)

	// Тело буферизованное, с известным Content-Length.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrBadResponse, resp.StatusCode)
	}

	var respDTO forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&respDTO); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrBadResponse, err)
	}

	return toDomain(&respDTO)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (g *ForecastGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	start := time.Now()

	err := fn(ctx)

	reason := getReason(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, reason).Observe(time.Since(start).Seconds())

	if err != nil {
		// Метрики Prometheus
		GatewayFailuresTotal.WithLabelValues(serviceName, method, reason).Inc()
	}

	return err
}

func getReason(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrBadResponse):
		return "bad_response"
	default:
		return "unknown"
	}
}
