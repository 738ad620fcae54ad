package entities

import "time"

type Order struct {
	ID                   string
	Status               OrderStatusType
	DestinationLatitude  float64
	DestinationLongitude float64
	Priority             int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderConfirmed OrderStatusType = "CONFIRMED"
	OrderInTransit OrderStatusType = "IN_TRANSIT"
	OrderDelivered OrderStatusType = "DELIVERED"
	OrderCancelled OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type UrgencyType string

const (
	UrgencyExpress  UrgencyType = "Express"
	UrgencyStandard UrgencyType = "Standard"
)

const expressPriorityThreshold = 5

func (t UrgencyType) String() string {
	return string(t)
}

// Urgency - метка срочности для сервиса прогнозирования.
func (o Order) Urgency() UrgencyType {
	if o.Priority >= expressPriorityThreshold {
		return UrgencyExpress
	}
	return UrgencyStandard
}

type OrderModify struct {
	ID                   *string
	Status               *OrderStatusType
	DestinationLatitude  *float64
	DestinationLongitude *float64
	Priority             *int
}
