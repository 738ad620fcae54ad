package entities

// Forecast - расчет от сервиса прогнозирования, нигде не хранится.
type Forecast struct {
	DistanceKm              float64
	EstimatedArrivalMinutes float64
}

// EnrichedOrder - заказ вместе с best-effort прогнозом.
// Forecast == nil означает что прогноз недоступен, сам заказ при этом валиден.
type EnrichedOrder struct {
	Order
	Forecast *Forecast
}
