package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Заглушка сервиса прогнозов для локальной разработки:
// отвечает правдоподобным прогнозом на POST /api/forecast/{orderID}.
var (
	forecastCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forecast_stub_requests_total",
		Help: "Общее количество запросов прогноза",
	})

	forecastDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_stub_request_duration_seconds",
		Help:    "Длительность обработки запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5},
	})
)

type forecastRequest struct {
	DestinationLatitude  float64 `json:"destination_latitude"`
	DestinationLongitude float64 `json:"destination_longitude"`
	Priority             string  `json:"priority"`
}

type forecastResponse struct {
	DistanceKm              float64 `json:"distance_km"`
	EstimatedArrivalMinutes float64 `json:"estimated_arrival_minutes"`
}

func handleForecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		forecastDuration.Observe(time.Since(start).Seconds())
	}()
	forecastCounter.Inc()

	if r.Method != http.MethodPost || !strings.HasPrefix(r.URL.Path, "/api/forecast/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req forecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// случайная задержка, чтобы дергать таймауты клиента
	time.Sleep(time.Duration(rand.Intn(100)) * time.Millisecond)

	distance := 0.5 + rand.Float64()*20
	speedKmh := 25.0
	if req.Priority == "Express" {
		speedKmh = 40.0
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(forecastResponse{
		DistanceKm:              distance,
		EstimatedArrivalMinutes: distance / speedKmh * 60,
	})
	if err != nil {
		log.Printf("encode forecast response: %v", err)
	}
}

func main() {
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/api/forecast/", handleForecast)

	log.Println("forecast stub listening on :9595")
	if err := http.ListenAndServe(":9595", nil); err != nil {
		log.Fatal(err)
	}
}
