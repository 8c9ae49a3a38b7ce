package models

// Cart is the raw per-user document: item id -> quantity.
type Cart struct {
	UserID string         `json:"user_id"`
	Items  map[string]int `json:"items"`
}

type CartLine struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// EnrichedCart is computed on every read; it is never stored.
type EnrichedCart struct {
	UserID     string     `json:"user_id"`
	Items      []CartLine `json:"items"`
	TotalPrice float64    `json:"total_price"`
}

type AddItemRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=1000"`
}

type RemoveItemRequest struct {
	UserID string `json:"user_id" validate:"required"`
	ItemID string `json:"item_id" validate:"required"`
}

type ClearCartRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type CartMutationResponse struct {
	Message string `json:"message"`
	Cart    *Cart  `json:"cart"`
}
