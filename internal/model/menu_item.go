package model

type MenuItem struct {
	BaseModel
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    *string `json:"category"`
	Available   bool    `json:"available"`
}
