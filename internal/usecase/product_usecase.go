package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-tracker/internal/converter"
	"inventory-tracker/internal/delivery/dto"
	"inventory-tracker/internal/domain/entity"
	"inventory-tracker/internal/domain/repository"
	"inventory-tracker/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateName   = errors.New("product name already exists")
)

// allowedSortColumns is the fixed allow-list for the list endpoint.
// Anything else silently falls back to id.
var allowedSortColumns = map[string]bool{
	"id":       true,
	"name":     true,
	"stock":    true,
	"category": true,
	"brand":    true,
}

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context, query *dto.ListProductsQuery) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*dto.UpdateProductResult, error)
	Delete(ctx context.Context, id uint) error
	GetHistory(ctx context.Context, id uint) ([]dto.HistoryResponse, error)
}

type productUsecase struct {
	log            *logrus.Logger
	productRepo    repository.ProductRepository
	historyRepo    repository.InventoryHistoryRepository
	historyService service.HistoryService
}

func NewProductUsecase(
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	historyRepo repository.InventoryHistoryRepository,
	historyService service.HistoryService,
) ProductUsecase {
	return &productUsecase{
		log:            log,
		productRepo:    productRepo,
		historyRepo:    historyRepo,
		historyService: historyService,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to check product name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	product := &entity.Product{
		Name:     name,
		Unit:     req.Unit,
		Category: req.Category,
		Brand:    req.Brand,
		Stock:    *req.Stock,
		Status:   req.Status,
		Image:    req.Image,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		// The unique index backstops the pre-check above.
		if isDuplicateNameError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetAll(ctx context.Context, query *dto.ListProductsQuery) ([]dto.ProductResponse, error) {
	sort := query.Sort
	if !allowedSortColumns[sort] {
		sort = "id"
	}
	// Text columns sort case-insensitively, matching the UI's table view.
	switch sort {
	case "name", "category", "brand":
		sort = "LOWER(" + sort + ")"
	}

	order := strings.ToLower(query.Order)
	if order != "desc" {
		order = "asc"
	}

	products, err := u.productRepo.FindAll(ctx, entity.ProductFilter{
		Search:   query.Search,
		Category: query.Category,
		Sort:     sort,
		Order:    order,
	})
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

// Update replaces all fields of the target product. Checks run in a
// fixed order: name uniqueness against other products, then existence.
// A stock transition additionally appends a history entry; a failure
// there is logged and swallowed, never rolling back the update.
func (u *productUsecase) Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*dto.UpdateProductResult, error) {
	name := strings.TrimSpace(req.Name)

	taken, err := u.productRepo.FindByNameExcluding(ctx, name, id)
	if err != nil {
		u.log.Warnf("Failed to check name uniqueness: %+v", err)
		return nil, err
	}
	if taken != nil {
		return nil, ErrDuplicateName
	}

	current, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to fetch product for update: %+v", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrProductNotFound
	}
	oldStock := current.Stock
	newStock := *req.Stock

	product := &entity.Product{
		ID:       id,
		Name:     name,
		Unit:     req.Unit,
		Category: req.Category,
		Brand:    req.Brand,
		Stock:    newStock,
		Status:   req.Status,
		Image:    req.Image,
	}

	affected, err := u.productRepo.Update(ctx, product)
	if err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		if isDuplicateNameError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	if oldStock != newStock {
		if err := u.historyService.RecordStockChange(ctx, id, oldStock, newStock); err != nil {
			// Non-fatal: the product row is already updated.
			u.log.Warnf("Failed to record stock change for product %d: %+v", id, err)
		}
	}

	return &dto.UpdateProductResult{
		Changed: affected > 0,
		Changes: affected,
	}, nil
}

func (u *productUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.productRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete product: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	// History rows are removed by the foreign key cascade.
	return nil
}

func (u *productUsecase) GetHistory(ctx context.Context, id uint) ([]dto.HistoryResponse, error) {
	entries, err := u.historyRepo.FindByProductID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to fetch inventory history: %+v", err)
		return nil, err
	}

	return converter.HistoriesToResponses(entries), nil
}

// isDuplicateNameError checks if the error is the PostgreSQL unique
// constraint violation on the product name index
func isDuplicateNameError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), "name") {
			return true
		}
	}
	return false
}
