package entities

type TelemetrySample struct {
	OrderID          string
	Timestamp        int64 // epoch seconds
	CurrentLatitude  float64
	CurrentLongitude float64
}
