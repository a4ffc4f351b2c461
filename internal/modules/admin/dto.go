package admin

type ResetRoomsResponse struct {
	RoomsUpdated   int64 `json:"rooms_updated"`
	TotalRooms     int64 `json:"total_rooms"`
	AvailableRooms int64 `json:"available_rooms"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}
