package catalog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.GetRooms)
	rg.GET("/rooms/available", h.GetAvailableRooms)
	rg.GET("/rooms/check-availability", h.CheckAvailability)
	rg.GET("/services", h.GetServices)
	rg.GET("/staff", h.GetStaff)
	rg.GET("/parking-spots", h.GetParkingSpots)
}

func (h *Handler) GetRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetAvailableRooms(c *gin.Context) {
	minCapacity := 0
	if v := c.Query("capacity"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			minCapacity = parsed
		}
	}

	rooms, err := h.service.ListAvailableRooms(c.Request.Context(), minCapacity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomNo := c.Query("room_no")
	if roomNo == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_no is required")
		return
	}

	checkin, err1 := time.Parse(dateLayout, c.Query("checkin_date"))
	checkout, err2 := time.Parse(dateLayout, c.Query("checkout_date"))
	if err1 != nil || err2 != nil || !checkout.After(checkin) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
		return
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), roomNo, checkin, checkout)
	if err != nil {
		if err == ErrRoomNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) GetStaff(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load staff")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

func (h *Handler) GetParkingSpots(c *gin.Context) {
	spots, err := h.service.ListParkingSpots(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load parking spots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"parking_spots": spots})
}
