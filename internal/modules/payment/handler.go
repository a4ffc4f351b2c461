package payment

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
	rg.POST("/payments", h.CreatePayment)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, b, err := h.service.FinalizePayment(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrAmountMismatch:
			response.Error(c, http.StatusConflict, "AMOUNT_MISMATCH", "Amount does not match the booking total")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, CreatePaymentResponse{
		PaymentID: p.PaymentID,
		BookingID: b.BookingID,
		RoomNo:    b.RoomNo,
		Status:    string(p.Status),
	})
}
