package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"inventory-tracker/internal/delivery/dto"
	"inventory-tracker/internal/usecase"
	"inventory-tracker/pkg/response"
	"inventory-tracker/pkg/validator"

	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

func productID(r *http.Request) (uint, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// GetAll handles listing products with search, category filter and sorting
// GET /api/products?search=&category=&sort=&order=
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &dto.ListProductsQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		Order:    q.Get("order"),
	}

	products, err := h.productUsecase.GetAll(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Error fetching products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// GetByID handles getting a product by ID
// GET /api/products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			response.NotFound(w, "Product not found.")
		default:
			response.InternalServerError(w, "Error fetching product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// Create handles adding a new product
// POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateName):
			response.Error(w, http.StatusBadRequest, "Product name already exists.", nil)
		default:
			response.InternalServerError(w, "Error adding product")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Product added successfully.", product)
}

// Update handles replacing all fields of a product, tracking stock changes
// PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateName):
			response.Error(w, http.StatusBadRequest, "Product name already exists for another product.", nil)
		case errors.Is(err, usecase.ErrProductNotFound):
			response.NotFound(w, "Product not found.")
		default:
			response.InternalServerError(w, "Error updating product")
		}
		return
	}

	message := "Product updated successfully."
	if !result.Changed {
		message = "No changes made."
	}
	response.Success(w, http.StatusOK, message, result)
}

// Delete handles removing a product; its history goes with it
// DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	err = h.productUsecase.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			response.NotFound(w, "Product not found.")
		default:
			response.InternalServerError(w, "Error deleting product")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product deleted successfully.", nil)
}

// GetHistory handles listing stock-change history for a product, newest first
// GET /api/products/{id}/history
func (h *ProductHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	entries, err := h.productUsecase.GetHistory(r.Context(), id)
	if err != nil {
		response.InternalServerError(w, "Error fetching inventory history")
		return
	}

	response.Success(w, http.StatusOK, "Inventory history retrieved successfully", entries)
}
