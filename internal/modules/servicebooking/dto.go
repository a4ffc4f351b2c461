package servicebooking

type CreateServiceBookingRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
}

type CreateServiceBookingResponse struct {
	ServiceBookingID string  `json:"service_booking_id"`
	TotalAmount      float64 `json:"total_amount"`
}
