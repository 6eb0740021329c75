package inventory

import (
	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Item is the public shape of an inventory row.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ItemInput carries the validated fields for create and update.
type ItemInput struct {
	Name        string
	Image       string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

func toItem(m models.InventoryItem) Item {
	return Item{
		ID:          m.ID,
		Name:        m.Name,
		Image:       m.Image,
		Description: m.Description,
		Price:       m.Price.Round(2).InexactFloat64(),
		Quantity:    m.Quantity,
	}
}

func (in ItemInput) toModel() models.InventoryItem {
	return models.InventoryItem{
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Quantity:    in.Quantity,
	}
}
