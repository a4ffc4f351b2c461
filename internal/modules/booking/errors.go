package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is not available")
	ErrServiceNotFound = errors.New("service not found")
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrSpotNotFound    = errors.New("parking spot not found")
	ErrSpotUnavailable = errors.New("parking spot is not available")
	ErrBookingNotFound = errors.New("booking not found")
)
