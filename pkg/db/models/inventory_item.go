package models

import "github.com/shopspring/decimal"

// InventoryItem is a sellable product row; Quantity is the available stock that
// caps every cart line referencing it.
type InventoryItem struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;not null"`
	Image       string          `gorm:"column:image;not null"`
	Description string          `gorm:"column:description;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
