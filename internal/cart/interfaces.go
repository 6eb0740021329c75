package cart

import (
	"context"

	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	"gorm.io/gorm"
)

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	ListLines(ctx context.Context) ([]LineRecord, error)
	FindStock(ctx context.Context, inventoryID int64) (*StockRecord, error)
	FindLineStock(ctx context.Context, lineID int64) (*LineStockRecord, error)
	InsertLine(ctx context.Context, line *models.CartLine) error
	IncrementQuantity(ctx context.Context, inventoryID int64, delta int) error
	SetQuantity(ctx context.Context, lineID int64, quantity int) error
	DeleteLine(ctx context.Context, lineID int64) (int64, error)
	DeleteAll(ctx context.Context) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}
