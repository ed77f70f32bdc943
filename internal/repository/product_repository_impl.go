package repository

import (
	"context"
	"errors"
	"fmt"

	"inventory-tracker/internal/domain/entity"
	domainRepo "inventory-tracker/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) CreateIfNameAbsent(ctx context.Context, product *entity.Product) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(product)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	sort := filter.Sort
	if sort == "" {
		sort = "id"
	}
	order := filter.Order
	if order != "desc" {
		order = "asc"
	}

	var products []entity.Product
	if err := query.Order(fmt.Sprintf("%s %s", sort, order)).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByNameExcluding(ctx context.Context, name string, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("name = ? AND id != ?", name, id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) (int64, error) {
	// Select forces zero values (empty strings, stock 0) to be written,
	// since the update is a full-field replacement.
	res := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Select("name", "unit", "category", "brand", "stock", "status", "image").
		Updates(product)
	return res.RowsAffected, res.Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	return res.RowsAffected, res.Error
}
