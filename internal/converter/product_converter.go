package converter

import (
	"inventory-tracker/internal/delivery/dto"
	"inventory-tracker/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Unit:     product.Unit,
		Category: product.Category,
		Brand:    product.Brand,
		Stock:    product.Stock,
		Status:   product.Status,
		Image:    product.Image,
	}
}

// ProductsToResponses converts a slice of Product entities to slice of ProductResponse DTOs
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToResponse(&product)
	}
	return responses
}
