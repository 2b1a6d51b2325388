package car

type CarReq struct {
	Name         string   `json:"name" form:"name" validate:"required"`
	Model        string   `json:"model" form:"model" validate:"required"`
	Image        string   `json:"image" form:"image"`
	PricePerHour float64  `json:"price_per_hour" form:"price_per_hour" validate:"required,gt=0"`
	Description  string   `json:"description" form:"description"`
	Quantity     int      `json:"quantity" form:"quantity" validate:"gte=0"`
	Available    *int     `json:"available" form:"available"`
	Category     string   `json:"category" form:"category" validate:"required"`
	Transmission string   `json:"transmission" form:"transmission" validate:"required"`
	Seats        int      `json:"seats" form:"seats" validate:"required,gt=0"`
	Features     []string `json:"features" form:"features"`
}
