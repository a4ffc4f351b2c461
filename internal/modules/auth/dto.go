package auth

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	PhoneNo  string `json:"phone_no"`
	Password string `json:"password" binding:"required,min=6"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Landmark string `json:"landmark"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	CustomerID string `json:"customer_id"`
	Token      string `json:"token"`
}
