package order

import (
	"service/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                   o.ID,
		Status:               entities.OrderStatusType(o.Status),
		DestinationLatitude:  o.DestinationLatitude,
		DestinationLongitude: o.DestinationLongitude,
		Priority:             o.Priority,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.DestinationLatitude != nil {
		orderDB.DestinationLatitude = orderModify.DestinationLatitude
	}
	if orderModify.DestinationLongitude != nil {
		orderDB.DestinationLongitude = orderModify.DestinationLongitude
	}
	if orderModify.Priority != nil {
		orderDB.Priority = orderModify.Priority
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
