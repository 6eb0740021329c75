package cart

import (
	"context"

	"github.com/angelmondragon/guitarshop-backend/internal/repo"
	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LineRecord is a cart row joined with the inventory columns the cart view shows.
type LineRecord struct {
	ID                int64
	InventoryID       int64
	Quantity          int
	Price             decimal.Decimal
	Name              string
	Image             string
	InventoryQuantity int
}

// StockRecord pairs an inventory row's available quantity with the cart line
// that references it, if any.
type StockRecord struct {
	InventoryID       int64
	InventoryQuantity int
	CartID            *int64
	CartQuantity      *int
}

// LineStockRecord is the available quantity behind an existing cart line.
type LineStockRecord struct {
	ID                int64
	Quantity          int
	InventoryQuantity int
}

const listLinesQuery = `
SELECT cart.id,
       cart.inventory_id,
       cart.quantity,
       inventory.price,
       inventory.name,
       inventory.image,
       inventory.quantity AS inventory_quantity
FROM cart
INNER JOIN inventory ON cart.inventory_id = inventory.id
ORDER BY cart.id ASC`

const stockQuery = `
SELECT inventory.id AS inventory_id,
       inventory.quantity AS inventory_quantity,
       cart.id AS cart_id,
       cart.quantity AS cart_quantity
FROM inventory
LEFT JOIN cart ON cart.inventory_id = inventory.id
WHERE inventory.id = ?
ORDER BY cart.id ASC
LIMIT 1`

const lineStockQuery = `
SELECT cart.id,
       cart.quantity,
       inventory.quantity AS inventory_quantity
FROM cart
INNER JOIN inventory ON cart.inventory_id = inventory.id
WHERE cart.id = ?`

// Repository exposes persistence operations for cart lines.
type Repository struct {
	repo.Base
}

// NewRepository constructs a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) CartRepository {
	return &Repository{Base: r.Bind(tx)}
}

// ListLines returns every line whose inventory row still exists, in cart id order.
func (r *Repository) ListLines(ctx context.Context) ([]LineRecord, error) {
	var lines []LineRecord
	if err := r.DB(ctx).Raw(listLinesQuery).Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindStock returns gorm.ErrRecordNotFound when the inventory row is absent.
func (r *Repository) FindStock(ctx context.Context, inventoryID int64) (*StockRecord, error) {
	var rows []StockRecord
	if err := r.DB(ctx).Raw(stockQuery, inventoryID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// FindLineStock returns gorm.ErrRecordNotFound when the line, or the inventory
// row it points at, is absent.
func (r *Repository) FindLineStock(ctx context.Context, lineID int64) (*LineStockRecord, error) {
	var rows []LineStockRecord
	if err := r.DB(ctx).Raw(lineStockQuery, lineID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *Repository) InsertLine(ctx context.Context, line *models.CartLine) error {
	return r.DB(ctx).Create(line).Error
}

func (r *Repository) IncrementQuantity(ctx context.Context, inventoryID int64, delta int) error {
	return r.DB(ctx).
		Model(&models.CartLine{}).
		Where("inventory_id = ?", inventoryID).
		Update("quantity", gorm.Expr("quantity + ?", delta)).
		Error
}

func (r *Repository) SetQuantity(ctx context.Context, lineID int64, quantity int) error {
	return r.DB(ctx).
		Model(&models.CartLine{}).
		Where("id = ?", lineID).
		Update("quantity", quantity).
		Error
}

// DeleteLine reports the rows removed so callers can detect a missing line.
func (r *Repository) DeleteLine(ctx context.Context, lineID int64) (int64, error) {
	res := r.DB(ctx).Where("id = ?", lineID).Delete(&models.CartLine{})
	return res.RowsAffected, res.Error
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.DB(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.CartLine{}).
		Error
}
