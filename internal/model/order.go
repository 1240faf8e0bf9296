package model

const (
	OrderStatusOpen = "open"

	// TaxRate is applied to the order subtotal.
	TaxRate = "0.07"
)

// OrderLine snapshots the menu item's title and price at order time.
type OrderLine struct {
	MenuItemID string  `json:"menu_item_id" bson:"menu_item_id"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	Price      float64 `json:"price" bson:"price"`
	Title      string  `json:"title" bson:"title"`
}

type Order struct {
	BaseModel
	StaffID  *string     `json:"staff_id"`
	Items    []OrderLine `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Total    float64     `json:"total"`
	Status   string      `json:"status"`
	Note     *string     `json:"note"`
}
