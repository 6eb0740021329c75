package inventory

import (
	"github.com/angelmondragon/guitarshop-backend/internal/inventory"
	"github.com/shopspring/decimal"
)

// itemRequest is the body for both POST and PUT; every field must be present.
type itemRequest struct {
	Name        string           `json:"name" validate:"required,notblank"`
	Image       string           `json:"image" validate:"required,notblank"`
	Description string           `json:"description" validate:"required,notblank"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
}

func (req itemRequest) toInput() inventory.ItemInput {
	return inventory.ItemInput{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
	}
}
