package payment

type CreatePaymentRequest struct {
	BookingID string  `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"mode" binding:"required"`
}

type CreatePaymentResponse struct {
	PaymentID string `json:"payment_id"`
	BookingID string `json:"booking_id"`
	RoomNo    string `json:"room_no"`
	Status    string `json:"status"`
}
