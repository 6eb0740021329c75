package inventory

import (
	"context"

	"github.com/angelmondragon/guitarshop-backend/internal/repo"
	"github.com/angelmondragon/guitarshop-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository issues single statements against the inventory table.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// List returns every item ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.DB(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns gorm.ErrRecordNotFound when no row matches.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.DB(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts the item and fills in its store-assigned id.
func (r *Repository) Create(ctx context.Context, item *models.InventoryItem) error {
	return r.DB(ctx).Create(item).Error
}

// Update overwrites every mutable column of row id and reports the rows affected.
func (r *Repository) Update(ctx context.Context, id int64, item models.InventoryItem) (int64, error) {
	res := r.DB(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        item.Name,
			"image":       item.Image,
			"description": item.Description,
			"price":       item.Price,
			"quantity":    item.Quantity,
		})
	return res.RowsAffected, res.Error
}

// Delete removes row id and reports the rows affected.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.InventoryItem{})
	return res.RowsAffected, res.Error
}
