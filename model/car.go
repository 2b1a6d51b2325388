package model

type Car struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Model        string   `json:"model"`
	Image        string   `json:"image"`
	PricePerHour float64  `json:"price_per_hour"`
	Description  string   `json:"description"`
	Quantity     int      `json:"quantity"`
	Available    int      `json:"available"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	Seats        int      `json:"seats"`
	Features     []string `json:"features"`
}
