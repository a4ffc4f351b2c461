package membership

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

// RegisterPublicRoutes exposes the plan catalog without authentication.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/membership/plans", h.GetPlans)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/membership", h.Enroll)
}

func (h *Handler) GetPlans(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"plans": Plans})
}

func (h *Handler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid membership payload")
		return
	}

	m, err := h.service.Enroll(c.Request.Context(), c.GetString("customer_id"), req.Type)
	if err != nil {
		if err == ErrUnknownPlan {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown membership plan")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create membership")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"membership_id": m.MembershipID})
}
