package booking

type CreateBookingRequest struct {
	RoomNo        string   `json:"room_no" binding:"required"`
	CheckinDate   string   `json:"checkin_date"`
	CheckoutDate  string   `json:"checkout_date"`
	Guests        int      `json:"no_of_members" binding:"required,gte=1"`
	ServiceIDs    []string `json:"services"`
	StaffID       *string  `json:"staff_id"`
	ParkingSpotID *string  `json:"parking_spot"`
}

type CreateBookingResponse struct {
	BookingID   string  `json:"booking_id"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}
