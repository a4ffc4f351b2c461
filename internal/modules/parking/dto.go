package parking

type CreateParkingBookingRequest struct {
	VehicleNo   string `json:"vehicle_no"`
	SpotID      string `json:"parking_spot" binding:"required"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type CreateParkingBookingResponse struct {
	ParkingBookingID string  `json:"parking_booking_id"`
	TotalAmount      float64 `json:"total_amount"`
}
