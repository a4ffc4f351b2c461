package parking

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
	rg.POST("/parking-bookings", h.CreateBooking)
	rg.GET("/parking-bookings", h.GetMyBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateParkingBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pb, err := h.service.CreateBooking(c.Request.Context(), c.GetString("customer_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date")
		case ErrSpotNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Parking spot not found")
		case ErrSpotUnavailable:
			response.Error(c, http.StatusConflict, "SPOT_UNAVAILABLE", "Parking spot is not available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create parking booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, CreateParkingBookingResponse{
		ParkingBookingID: pb.ParkingBookingID,
		TotalAmount:      pb.TotalAmount,
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	rows, err := h.service.GetMyBookings(c.Request.Context(), c.GetString("customer_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load parking bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parking_bookings": rows})
}
