package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidLatitude       = errors.New("latitude out of range")
	ErrInvalidLongitude      = errors.New("longitude out of range")
	ErrInvalidStatus         = errors.New("invalid order status")

	ErrOrderNotFound = errors.New("order not found")
)
