package catalog

import "hotelbooking/internal/domain"

type AvailabilityResponse struct {
	RoomNo      string       `json:"room_no"`
	Available   bool         `json:"available"`
	RoomDetails *domain.Room `json:"room_details"`
	Conflicts   int64        `json:"conflicts"`
}
