package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/admin"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/events"
	"hotelbooking/internal/modules/membership"
	"hotelbooking/internal/modules/parking"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/profile"
	"hotelbooking/internal/modules/servicebooking"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Customer{},
		&domain.Room{},
		&domain.Service{},
		&domain.Staff{},
		&domain.Booking{},
		&domain.BookingService{},
		&domain.BookingStaff{},
		&domain.Payment{},
		&domain.ParkingSpot{},
		&domain.ParkingBooking{},
		&domain.ServiceBooking{},
		&domain.Membership{},
	))

	customerRepo := repository.NewCustomerRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	parkingRepo := repository.NewParkingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	serviceBookingRepo := repository.NewServiceBookingRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	hub := events.NewHub()

	authHandler := auth.NewHandler(auth.NewService(customerRepo, jwtService))
	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo, serviceRepo, staffRepo, parkingRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo, serviceRepo, staffRepo, parkingRepo, hub))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, hub))
	adminHandler := admin.NewHandler(admin.NewService(roomRepo, bookingRepo, hub))
	parkingHandler := parking.NewHandler(parking.NewService(parkingRepo, hub))
	profileHandler := profile.NewHandler(customerRepo)
	serviceBookingHandler := servicebooking.NewHandler(servicebooking.NewService(serviceBookingRepo, serviceRepo))
	membershipHandler := membership.NewHandler(membership.NewService(membershipRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	catalogHandler.RegisterRoutes(v1)
	membershipHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(jwtService))
	{
		bookingHandler.RegisterRoutes(protected)
		paymentHandler.RegisterRoutes(protected)
		parkingHandler.RegisterRoutes(protected)
		serviceBookingHandler.RegisterRoutes(protected)
		profileHandler.RegisterRoutes(protected)
		membershipHandler.RegisterRoutes(protected)

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.RequireRole("admin"))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	seedCatalog(t, db)

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService}
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	rooms := []domain.Room{
		{RoomNo: "R101", Status: domain.RoomAvailable, Price: 189, Capacity: 2, Type: "Deluxe"},
		{RoomNo: "R102", Status: domain.RoomBooked, Price: 329, Capacity: 4, Type: "Suite"},
		{RoomNo: "R104", Status: domain.RoomAvailable, Price: 129, Capacity: 2, Type: "Standard"},
	}
	for i := range rooms {
		require.NoError(t, db.Create(&rooms[i]).Error)
	}

	services := []domain.Service{
		{ServiceID: "S-food", Name: "In-Room Dining", Charges: 25, Category: "Food"},
		{ServiceID: "S-laundry", Name: "Laundry Service", Charges: 15, Category: "Housekeeping"},
	}
	for i := range services {
		require.NoError(t, db.Create(&services[i]).Error)
	}

	require.NoError(t, db.Create(&domain.Staff{StaffID: "ST001", Name: "Santhosh", Role: "Chef"}).Error)
	require.NoError(t, db.Create(&domain.ParkingSpot{SpotID: "P01", Status: domain.SpotAvailable, Price: 200, Location: "Ground Floor"}).Error)
	require.NoError(t, db.Create(&domain.ParkingSpot{SpotID: "P02", Status: domain.SpotBooked, Price: 200, Location: "Ground Floor"}).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.Customer{
		CustomerID:   "CUST-admin",
		Name:         "Hotel Admin",
		Email:        "admin@test.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}).Error)
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return &resp
}

func (s *E2ETestSuite) registerClient(t *testing.T, email string) string {
	w := s.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
		"name":     "Test Guest",
		"email":    email,
		"password": "Password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	return resp.Data["token"].(string)
}

func (s *E2ETestSuite) loginAdmin(t *testing.T) string {
	w := s.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "admin@test.com",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := parseResponse(t, w)
	return resp.Data["token"].(string)
}

func TestBookingLifecycle(t *testing.T) {
	suite := setupTestSuite(t)

	var clientToken, bookingID string
	var totalAmount float64

	t.Run("register and login", func(t *testing.T) {
		clientToken = suite.registerClient(t, "guest@test.com")

		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "guest@test.com",
			"password": "Password123",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("browse catalog", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/rooms", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Len(t, resp.Data["rooms"], 3)

		w = suite.makeRequest("GET", "/api/v1/rooms/available?capacity=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		resp = parseResponse(t, w)
		assert.Len(t, resp.Data["rooms"], 2)
	})

	t.Run("check availability", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/rooms/check-availability?room_no=R104&checkin_date=2026-09-10&checkout_date=2026-09-12", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, true, resp.Data["available"])
	})

	t.Run("create booking", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"room_no":       "R104",
			"checkin_date":  "2026-09-10",
			"checkout_date": "2026-09-12",
			"no_of_members": 2,
			"services":      []string{"S-food", "S-laundry"},
			"parking_spot":  "P01",
		}, clientToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := parseResponse(t, w)
		bookingID = resp.Data["booking_id"].(string)
		totalAmount = resp.Data["total_amount"].(float64)

		// 129 * 2 nights + 25 + 15 + 200 parking
		assert.Equal(t, 498.0, totalAmount)
		assert.Equal(t, "pending", resp.Data["status"])

		var room domain.Room
		require.NoError(t, suite.db.First(&room, "room_no = ?", "R104").Error)
		assert.Equal(t, domain.RoomBooked, room.Status)
	})

	t.Run("booked room rejects a second booking", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/bookings", map[string]interface{}{
			"room_no":       "R104",
			"no_of_members": 1,
		}, clientToken)
		assert.Equal(t, http.StatusConflict, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "ROOM_UNAVAILABLE", resp.Error.Code)
	})

	t.Run("fetch booking", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/bookings/"+bookingID, nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		b := resp.Data["booking"].(map[string]interface{})
		assert.Equal(t, "pending", b["status"])
		assert.Equal(t, totalAmount, b["total_amount"])
		assert.Len(t, resp.Data["services"], 2)
	})

	t.Run("payment with wrong amount is rejected", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/payments", map[string]interface{}{
			"booking_id": bookingID,
			"amount":     totalAmount - 10,
			"mode":       "card",
		}, clientToken)
		assert.Equal(t, http.StatusConflict, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "AMOUNT_MISMATCH", resp.Error.Code)
	})

	t.Run("payment confirms booking", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/payments", map[string]interface{}{
			"booking_id": bookingID,
			"amount":     totalAmount,
			"mode":       "card",
		}, clientToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.Equal(t, "completed", resp.Data["status"])
		assert.Equal(t, "R104", resp.Data["room_no"])

		w = suite.makeRequest("GET", "/api/v1/bookings/"+bookingID, nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		b := parseResponse(t, w).Data["booking"].(map[string]interface{})
		assert.Equal(t, "confirmed", b["status"])
		assert.Equal(t, totalAmount, b["total_amount"])
	})

	t.Run("list own bookings", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/bookings", nil, clientToken)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Len(t, resp.Data["bookings"], 1)
	})

	t.Run("admin reset frees everything", func(t *testing.T) {
		adminToken := suite.loginAdmin(t)

		// Clients cannot reset.
		w := suite.makeRequest("POST", "/api/v1/admin/rooms/reset", nil, clientToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = suite.makeRequest("POST", "/api/v1/admin/rooms/reset", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.Equal(t, float64(3), resp.Data["total_rooms"])
		assert.Equal(t, float64(3), resp.Data["available_rooms"])

		var bookedRooms int64
		require.NoError(t, suite.db.Model(&domain.Room{}).Where("status = ?", domain.RoomBooked).Count(&bookedRooms).Error)
		assert.EqualValues(t, 0, bookedRooms)

		var active int64
		require.NoError(t, suite.db.Model(&domain.Booking{}).
			Where("status IN ?", []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
			Count(&active).Error)
		assert.EqualValues(t, 0, active)
	})
}

func TestAuthAndProfile(t *testing.T) {
	suite := setupTestSuite(t)

	token := suite.registerClient(t, "profile@test.com")

	t.Run("duplicate email rejected", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
			"name":     "Other",
			"email":    "profile@test.com",
			"password": "Password123",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, "EMAIL_TAKEN", resp.Error.Code)
	})

	t.Run("protected routes require a token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/customer/profile", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("get and update profile", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/customer/profile", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		customer := resp.Data["customer"].(map[string]interface{})
		assert.Equal(t, "profile@test.com", customer["email"])
		_, leaked := customer["password_hash"]
		assert.False(t, leaked)

		w = suite.makeRequest("PUT", "/api/v1/customer/profile", map[string]interface{}{
			"name":     "Renamed Guest",
			"phone_no": "+91 90000 00001",
			"city":     "Chennai",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest("GET", "/api/v1/customer/profile", nil, token)
		customer = parseResponse(t, w).Data["customer"].(map[string]interface{})
		assert.Equal(t, "Renamed Guest", customer["name"])
	})
}

func TestParkingAndExtras(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.registerClient(t, "extras@test.com")

	t.Run("parking booking claims the spot", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/parking-bookings", map[string]interface{}{
			"vehicle_no":   "KA-01-1234",
			"parking_spot": "P01",
			"booking_date": "2026-09-10",
			"start_time":   "10:00",
			"end_time":     "18:00",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.Equal(t, 200.0, resp.Data["total_amount"])

		var spot domain.ParkingSpot
		require.NoError(t, suite.db.First(&spot, "spot_id = ?", "P01").Error)
		assert.Equal(t, domain.SpotBooked, spot.Status)

		// Claiming the same spot again conflicts.
		w = suite.makeRequest("POST", "/api/v1/parking-bookings", map[string]interface{}{
			"vehicle_no":   "KA-01-9999",
			"parking_spot": "P01",
		}, token)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("service booking", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/service-bookings", map[string]interface{}{
			"service_id":   "S-food",
			"booking_date": "2026-09-11",
			"booking_time": "19:00",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.Equal(t, 25.0, resp.Data["total_amount"])

		w = suite.makeRequest("GET", "/api/v1/service-bookings", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseResponse(t, w).Data["service_bookings"], 1)
	})

	t.Run("membership enrollment", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/membership/plans", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseResponse(t, w).Data["plans"], 3)

		w = suite.makeRequest("POST", "/api/v1/membership", map[string]interface{}{
			"type": "Gold",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.NotEmpty(t, parseResponse(t, w).Data["membership_id"])
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
