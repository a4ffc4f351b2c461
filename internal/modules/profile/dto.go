package profile

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	PhoneNo  string `json:"phone_no"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Landmark string `json:"landmark"`
}
