package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"

	"inventory-tracker/internal/domain/entity"
	"inventory-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrNothingToExport = errors.New("no products to export")

var exportHeader = []string{"name", "unit", "category", "brand", "stock", "status"}

type ExportUsecase interface {
	Export(ctx context.Context) ([]byte, error)
}

type exportUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewExportUsecase(log *logrus.Logger, productRepo repository.ProductRepository) ExportUsecase {
	return &exportUsecase{
		log:         log,
		productRepo: productRepo,
	}
}

// Export serializes the whole store, ordered by name, as CSV text.
// An empty store is a distinct condition rather than an empty file.
func (u *exportUsecase) Export(ctx context.Context) ([]byte, error) {
	products, err := u.productRepo.FindAll(ctx, entity.ProductFilter{
		Sort:  "LOWER(name)",
		Order: "asc",
	})
	if err != nil {
		u.log.Warnf("Failed to fetch products for export: %+v", err)
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNothingToExport
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, p := range products {
		row := []string{p.Name, p.Unit, p.Category, p.Brand, strconv.Itoa(p.Stock), p.Status}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
