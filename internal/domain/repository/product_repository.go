package repository

import (
	"context"

	"inventory-tracker/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// CreateIfNameAbsent inserts the product only when no row with the
	// same name exists, as a single conditional insert. Returns false
	// when the name was already taken.
	CreateIfNameAbsent(ctx context.Context, product *entity.Product) (bool, error)
	FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	// FindByNameExcluding looks up a product by name while ignoring the
	// row with the given id. Used by the update path to detect a name
	// collision with a different product.
	FindByNameExcluding(ctx context.Context, name string, id uint) (*entity.Product, error)
	// Update overwrites all mutable fields and reports rows affected.
	Update(ctx context.Context, product *entity.Product) (int64, error)
	// Delete removes the product and reports rows affected. History
	// rows go with it via the foreign key cascade.
	Delete(ctx context.Context, id uint) (int64, error)
}
