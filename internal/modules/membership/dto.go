package membership

type Plan struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Perks []string `json:"perks"`
}

type EnrollRequest struct {
	Type string `json:"type" binding:"required"`
}
