package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.GetMyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customerID := c.GetString("customer_id")
	b, err := h.service.CreateBooking(c.Request.Context(), customerID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking dates or guest count")
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case ErrServiceNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "One or more services not found")
		case ErrStaffNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Staff member not found")
		case ErrSpotNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Parking spot not found")
		case ErrRoomUnavailable:
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available")
		case ErrSpotUnavailable:
			response.Error(c, http.StatusConflict, "SPOT_UNAVAILABLE", "Parking spot is not available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, CreateBookingResponse{
		BookingID:   b.BookingID,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	customerID := c.GetString("customer_id")
	rows, err := h.service.GetMyBookings(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, serviceIDs, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrBookingNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	if b.CustomerID != c.GetString("customer_id") && c.GetString("role") != "admin" {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"booking":  b,
		"services": serviceIDs,
	})
}
