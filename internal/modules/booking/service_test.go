package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithRoomClaim(ctx context.Context, b *domain.Booking, serviceIDs []string, staffID *string) error {
	args := m.Called(ctx, b, serviceIDs, staffID)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetServiceIDs(ctx context.Context, bookingID string) ([]string, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]repository.CustomerBookingRow, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CustomerBookingRow), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByNo(ctx context.Context, roomNo string) (*domain.Room, error) {
	args := m.Called(ctx, roomNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) FindByIDs(ctx context.Context, ids []string) ([]domain.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockStaffDirectory struct {
	mock.Mock
}

func (m *MockStaffDirectory) Exists(ctx context.Context, staffID string) (bool, error) {
	args := m.Called(ctx, staffID)
	return args.Bool(0), args.Error(1)
}

type MockParkingLot struct {
	mock.Mock
}

func (m *MockParkingLot) GetSpot(ctx context.Context, spotID string) (*domain.ParkingSpot, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParkingSpot), args.Error(1)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) RoomStatusChanged(roomNo string, status domain.RoomStatus) {
	m.Called(roomNo, status)
}

func (m *MockBroadcaster) SpotStatusChanged(spotID string, status domain.SpotStatus) {
	m.Called(spotID, status)
}

func newTestService() (*Service, *MockBookingRepository, *MockRoomRepository, *MockServiceCatalog, *MockStaffDirectory, *MockParkingLot, *MockBroadcaster) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	services := new(MockServiceCatalog)
	staff := new(MockStaffDirectory)
	parking := new(MockParkingLot)
	events := new(MockBroadcaster)
	return NewService(bookings, rooms, services, staff, parking, events), bookings, rooms, services, staff, parking, events
}

func TestService_CreateBooking_Success(t *testing.T) {
	service, bookings, rooms, services, _, _, events := newTestService()

	rooms.On("GetByNo", mock.Anything, "R104").Return(&domain.Room{
		RoomNo: "R104", Status: domain.RoomAvailable, Price: 129, Capacity: 2,
	}, nil)
	services.On("FindByIDs", mock.Anything, []string{"S-food", "S-laundry"}).Return([]domain.Service{
		{ServiceID: "S-food", Charges: 25},
		{ServiceID: "S-laundry", Charges: 15},
	}, nil)
	bookings.On("CreateWithRoomClaim", mock.Anything, mock.Anything, []string{"S-food", "S-laundry"}, (*string)(nil)).Return(nil)
	events.On("RoomStatusChanged", "R104", domain.RoomBooked).Return()

	req := CreateBookingRequest{
		RoomNo:       "R104",
		CheckinDate:  "2026-09-10",
		CheckoutDate: "2026-09-12",
		Guests:       2,
		ServiceIDs:   []string{"S-food", "S-laundry"},
	}

	b, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 298.0, b.TotalAmount)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "CUST-1", b.CustomerID)
	assert.NotEmpty(t, b.BookingID)
	events.AssertCalled(t, "RoomStatusChanged", "R104", domain.RoomBooked)
	bookings.AssertExpectations(t)
}

func TestService_CreateBooking_WithParkingFee(t *testing.T) {
	service, bookings, rooms, _, _, parking, events := newTestService()

	spotID := "P07"
	rooms.On("GetByNo", mock.Anything, "R101").Return(&domain.Room{
		RoomNo: "R101", Status: domain.RoomAvailable, Price: 189,
	}, nil)
	parking.On("GetSpot", mock.Anything, "P07").Return(&domain.ParkingSpot{
		SpotID: "P07", Status: domain.SpotAvailable, Price: 200,
	}, nil)
	bookings.On("CreateWithRoomClaim", mock.Anything, mock.Anything, []string(nil), (*string)(nil)).Return(nil)
	events.On("RoomStatusChanged", "R101", domain.RoomBooked).Return()
	events.On("SpotStatusChanged", "P07", domain.SpotBooked).Return()

	req := CreateBookingRequest{
		RoomNo:        "R101",
		CheckinDate:   "2026-09-10",
		CheckoutDate:  "2026-09-11",
		Guests:        1,
		ParkingSpotID: &spotID,
	}

	b, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.NoError(t, err)
	assert.Equal(t, 389.0, b.TotalAmount)
	events.AssertCalled(t, "SpotStatusChanged", "P07", domain.SpotBooked)
}

func TestService_CreateBooking_RoomNotFound(t *testing.T) {
	service, _, rooms, _, _, _, _ := newTestService()

	rooms.On("GetByNo", mock.Anything, "R999").Return(nil, repository.ErrRoomNotFound)

	req := CreateBookingRequest{RoomNo: "R999", Guests: 2}
	_, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_CreateBooking_RoomAlreadyBooked(t *testing.T) {
	service, _, rooms, _, _, _, _ := newTestService()

	rooms.On("GetByNo", mock.Anything, "R102").Return(&domain.Room{
		RoomNo: "R102", Status: domain.RoomBooked, Price: 329,
	}, nil)

	req := CreateBookingRequest{RoomNo: "R102", Guests: 2}
	_, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestService_CreateBooking_ClaimLostRace(t *testing.T) {
	service, bookings, rooms, _, _, _, _ := newTestService()

	// Lookup still sees the room available but the claim loses the race.
	rooms.On("GetByNo", mock.Anything, "R101").Return(&domain.Room{
		RoomNo: "R101", Status: domain.RoomAvailable, Price: 189,
	}, nil)
	bookings.On("CreateWithRoomClaim", mock.Anything, mock.Anything, []string(nil), (*string)(nil)).
		Return(repository.ErrRoomUnavailable)

	req := CreateBookingRequest{RoomNo: "R101", Guests: 1}
	_, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestService_CreateBooking_CheckoutBeforeCheckin(t *testing.T) {
	service, _, _, _, _, _, _ := newTestService()

	req := CreateBookingRequest{
		RoomNo:       "R101",
		CheckinDate:  "2026-09-12",
		CheckoutDate: "2026-09-10",
		Guests:       2,
	}
	_, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_MalformedDate(t *testing.T) {
	service, _, _, _, _, _, _ := newTestService()

	req := CreateBookingRequest{RoomNo: "R101", CheckinDate: "10-09-2026", Guests: 2}
	_, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_DuplicateServiceIDsChargedOnce(t *testing.T) {
	service, bookings, rooms, services, _, _, events := newTestService()

	rooms.On("GetByNo", mock.Anything, "R101").Return(&domain.Room{
		RoomNo: "R101", Status: domain.RoomAvailable, Price: 189,
	}, nil)
	services.On("FindByIDs", mock.Anything, []string{"S-food"}).Return([]domain.Service{
		{ServiceID: "S-food", Charges: 25},
	}, nil)
	bookings.On("CreateWithRoomClaim", mock.Anything, mock.Anything, []string{"S-food"}, (*string)(nil)).Return(nil)
	events.On("RoomStatusChanged", "R101", domain.RoomBooked).Return()

	req := CreateBookingRequest{
		RoomNo:       "R101",
		CheckinDate:  "2026-09-10",
		CheckoutDate: "2026-09-11",
		Guests:       1,
		ServiceIDs:   []string{"S-food", "S-food", "S-food"},
	}

	b, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.NoError(t, err)
	assert.Equal(t, 214.0, b.TotalAmount)
	bookings.AssertExpectations(t)
}

func TestService_CreateBooking_UnknownService(t *testing.T) {
	service, _, rooms, services, _, _, _ := newTestService()

	rooms.On("GetByNo", mock.Anything, "R101").Return(&domain.Room{
		RoomNo: "R101", Status: domain.RoomAvailable, Price: 189,
	}, nil)
	services.On("FindByIDs", mock.Anything, []string{"S-nope"}).Return([]domain.Service{}, nil)

	req := CreateBookingRequest{RoomNo: "R101", Guests: 1, ServiceIDs: []string{"S-nope"}}
	_, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_CreateBooking_UnknownStaff(t *testing.T) {
	service, _, rooms, _, staff, _, _ := newTestService()

	staffID := "ST999"
	rooms.On("GetByNo", mock.Anything, "R101").Return(&domain.Room{
		RoomNo: "R101", Status: domain.RoomAvailable, Price: 189,
	}, nil)
	staff.On("Exists", mock.Anything, "ST999").Return(false, nil)

	req := CreateBookingRequest{RoomNo: "R101", Guests: 1, StaffID: &staffID}
	_, err := service.CreateBooking(context.Background(), "CUST-1", req)

	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestService_GetBooking_NotFound(t *testing.T) {
	service, bookings, _, _, _, _, _ := newTestService()

	bookings.On("GetByID", mock.Anything, "BOOK-missing").Return(nil, repository.ErrBookingNotFound)

	_, _, err := service.GetBooking(context.Background(), "BOOK-missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
