package forecast

import "errors"

var (
	ErrUnavailable = errors.New("forecasting service unavailable")
	ErrTimeout     = errors.New("forecasting service deadline exceeded")
	ErrBadResponse = errors.New("forecasting service malformed response")
)
