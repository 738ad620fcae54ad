package order

import "time"

type OrderDB struct {
	ID                   string
	Status               string
	DestinationLatitude  float64
	DestinationLongitude float64
	Priority             int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type OrderModifyDB struct {
	ID                   *string
	Status               *string
	DestinationLatitude  *float64
	DestinationLongitude *float64
	Priority             *int
}
