package cart

// addRequest is the POST /api/cart body.
type addRequest struct {
	InventoryID *int64 `json:"inventoryId" validate:"required,min=1"`
	Quantity    *int   `json:"quantity" validate:"required,min=1"`
}

// updateRequest is the PUT /api/cart/{cartId} body; zero or less removes the line.
type updateRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
