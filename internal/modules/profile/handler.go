package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/repository"
)

type Handler struct {
	customers *repository.CustomerRepository
}

func NewHandler(customers *repository.CustomerRepository) *Handler {
	return &Handler{customers: customers}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/customer/profile", h.GetProfile)
	rg.PUT("/customer/profile", h.UpdateProfile)
}

func (h *Handler) GetProfile(c *gin.Context) {
	customerID := c.GetString("customer_id")
	customer, err := h.customers.GetByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": customer})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile payload")
		return
	}

	fields := map[string]interface{}{
		"name":     req.Name,
		"phone_no": req.PhoneNo,
		"street":   req.Street,
		"city":     req.City,
		"landmark": req.Landmark,
	}
	customerID := c.GetString("customer_id")
	if err := h.customers.UpdateProfile(c.Request.Context(), customerID, fields); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
