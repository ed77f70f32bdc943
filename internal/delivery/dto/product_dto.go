package dto

import "time"

// Request DTOs

type CreateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    *int   `json:"stock" validate:"required,gte=0"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

type UpdateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    *int   `json:"stock" validate:"required,gte=0"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

// ListProductsQuery carries the raw query parameters for the product
// listing; sort and order are sanitized in the usecase.
type ListProductsQuery struct {
	Search   string
	Category string
	Sort     string
	Order    string
}

// Response DTOs

type ProductResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    int    `json:"stock"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

type HistoryResponse struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"product_id"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	ChangeDate  time.Time `json:"change_date"`
	UserInfo    string    `json:"user_info"`
}

// UpdateProductResult reports whether the update touched a row.
type UpdateProductResult struct {
	Changed bool  `json:"changed"`
	Changes int64 `json:"changes"`
}
