package models

type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "IN_STOCK"
	InventoryStatusLowStock   InventoryStatus = "LOW_STOCK"
	InventoryStatusOutOfStock InventoryStatus = "OUT_OF_STOCK"
)

// InventoryItem is a catalog document keyed by its SKU.
type InventoryItem struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	InventoryStatus InventoryStatus `json:"inventory_status"`
	Rating          float64         `json:"rating"`
	ImageURL        string          `json:"image_url"`
}

type SaveInventoryResponse struct {
	Message string `json:"message"`
	Saved   int    `json:"saved"`
}
