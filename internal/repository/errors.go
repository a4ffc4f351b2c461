package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available")
	ErrSpotNotFound     = errors.New("parking spot not found")
	ErrSpotUnavailable  = errors.New("parking spot is not available")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDuplicateID      = errors.New("identifier already exists")
	ErrMissingReference = errors.New("referenced record does not exist")
)

// mapConstraintError translates postgres constraint violations into sentinel
// errors; anything else passes through untouched.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateID
		case "23503":
			return ErrMissingReference
		}
	}
	return err
}
