package servicebooking

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
	rg.POST("/service-bookings", h.CreateBooking)
	rg.GET("/service-bookings", h.GetMyBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateServiceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sb, err := h.service.CreateBooking(c.Request.Context(), c.GetString("customer_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date")
		case ErrServiceNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, CreateServiceBookingResponse{
		ServiceBookingID: sb.ServiceBookingID,
		TotalAmount:      sb.TotalAmount,
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	rows, err := h.service.GetMyBookings(c.Request.Context(), c.GetString("customer_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load service bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_bookings": rows})
}
