package repository

import (
	"context"

	"inventory-tracker/internal/domain/entity"
	domainRepo "inventory-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type inventoryHistoryRepository struct {
	db *gorm.DB
}

func NewInventoryHistoryRepository(db *gorm.DB) domainRepo.InventoryHistoryRepository {
	return &inventoryHistoryRepository{db: db}
}

func (r *inventoryHistoryRepository) Create(ctx context.Context, entry *entity.InventoryHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *inventoryHistoryRepository) FindByProductID(ctx context.Context, productID uint) ([]entity.InventoryHistory, error) {
	var entries []entity.InventoryHistory
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("change_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
