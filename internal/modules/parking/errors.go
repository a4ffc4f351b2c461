package parking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrSpotNotFound    = errors.New("parking spot not found")
	ErrSpotUnavailable = errors.New("parking spot is not available")
)
