package model

const DefaultUnit = "unit"

// InventoryItem is keyed by SKU; at most one record exists per SKU.
type InventoryItem struct {
	BaseModel
	SKU          string   `json:"sku"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	ReorderLevel *float64 `json:"reorder_level"`
}
