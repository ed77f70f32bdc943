package repository

import (
	"context"

	"inventory-tracker/internal/domain/entity"
)

type InventoryHistoryRepository interface {
	Create(ctx context.Context, entry *entity.InventoryHistory) error
	// FindByProductID returns the entries for a product, newest first.
	FindByProductID(ctx context.Context, productID uint) ([]entity.InventoryHistory, error)
}
