package catalog

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

var ErrRoomNotFound = errors.New("room not found")

type Service struct {
	rooms    *repository.RoomRepository
	services *repository.ServiceRepository
	staff    *repository.StaffRepository
	parking  *repository.ParkingRepository
}

func NewService(
	rooms *repository.RoomRepository,
	services *repository.ServiceRepository,
	staff *repository.StaffRepository,
	parking *repository.ParkingRepository,
) *Service {
	return &Service{
		rooms:    rooms,
		services: services,
		staff:    staff,
		parking:  parking,
	}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ListAvailableRooms(ctx context.Context, minCapacity int) ([]domain.Room, error) {
	return s.rooms.ListAvailable(ctx, minCapacity)
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *Service) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return s.staff.List(ctx)
}

func (s *Service) ListParkingSpots(ctx context.Context) ([]domain.ParkingSpot, error) {
	return s.parking.ListSpots(ctx)
}

// CheckAvailability reports whether a room can take a new booking: the room
// must be available and no pending/confirmed booking may overlap the range.
func (s *Service) CheckAvailability(ctx context.Context, roomNo string, checkin, checkout time.Time) (*AvailabilityResponse, error) {
	room, err := s.rooms.GetByNo(ctx, roomNo)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	conflicts, err := s.rooms.CountConflicts(ctx, roomNo, checkin, checkout)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResponse{
		RoomNo:      roomNo,
		Available:   room.Status == domain.RoomAvailable && conflicts == 0,
		RoomDetails: room,
		Conflicts:   conflicts,
	}, nil
}
