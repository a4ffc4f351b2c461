package payment

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAmountMismatch  = errors.New("amount does not match booking total")
)
