package telemetry

type TelemetrySampleDB struct {
	OrderID          string
	Timestamp        int64
	CurrentLatitude  float64
	CurrentLongitude float64
}
