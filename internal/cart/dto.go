package cart

// Line is one cart row as the front end renders it.
type Line struct {
	ID                int64   `json:"id"`
	InventoryID       int64   `json:"inventoryId"`
	Quantity          int     `json:"quantity"`
	Price             float64 `json:"price"`
	Name              string  `json:"name"`
	Image             string  `json:"image"`
	InventoryQuantity int     `json:"inventoryQuantity"`
}

// Cart is the full cart view with its computed total.
type Cart struct {
	CartItems []Line  `json:"cartItems"`
	Total     float64 `json:"total"`
}

func toLine(r LineRecord) Line {
	return Line{
		ID:                r.ID,
		InventoryID:       r.InventoryID,
		Quantity:          r.Quantity,
		Price:             r.Price.Round(2).InexactFloat64(),
		Name:              r.Name,
		Image:             r.Image,
		InventoryQuantity: r.InventoryQuantity,
	}
}
