package models

// CartLine is one cart entry. InventoryID is a plain column, not a foreign key:
// at most one line per inventory id is kept by the cart service.
type CartLine struct {
	ID          int64 `gorm:"column:id;primaryKey;autoIncrement"`
	InventoryID int64 `gorm:"column:inventory_id;not null;index"`
	Quantity    int   `gorm:"column:quantity;not null"`
}

func (CartLine) TableName() string {
	return "cart"
}
