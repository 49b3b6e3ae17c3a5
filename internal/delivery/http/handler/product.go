package handler

import (
	"errors"
	"net/http"

	"github.com/kavehsh/shopping_system/internal/delivery/http/request"
	"github.com/kavehsh/shopping_system/internal/delivery/http/response"
	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
	"github.com/kavehsh/shopping_system/internal/usecase/product"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *product.Service
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *product.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Code   int     `json:"code" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Brand  string  `json:"brand" validate:"required"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
	Price  float64 `json:"price" validate:"required,gt=0"`
}

// UpdatePriceRequest represents the request body for a price change
type UpdatePriceRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// Create handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a product with a unique code and a strictly positive price
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product details"
// @Success 201 {object} map[string]interface{} "Product created"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Product code already taken"
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prod, err := domain.NewProduct(req.Name, req.Code, req.Price, req.Brand, req.Weight)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.service.Create(r.Context(), prod); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, prod)
}

// GetByCode handles GET /api/v1/products/{code}
// @Summary Get a product by code
// @Tags Products
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product code"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{code} [get]
func (h *ProductHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product code")
		return
	}

	prod, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, prod)
}

// List handles GET /api/v1/products
// @Summary List all products
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{} "Products ordered by code"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, products)
}

// UpdatePrice handles PUT /api/v1/products/{code}/price
// @Summary Reassign a product's price
// @Description Set a new strictly positive price; purchase totals follow the current price
// @Tags Products
// @Accept json
// @Produce json
// @Param code path int true "Product code"
// @Param price body UpdatePriceRequest true "New price"
// @Success 200 {object} map[string]interface{} "Product with updated price"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{code}/price [put]
func (h *ProductHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product code")
		return
	}

	var req UpdatePriceRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prod, err := h.service.UpdatePrice(r.Context(), code, req.Price)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, prod)
}

// Delete handles DELETE /api/v1/products/{code}
// @Summary Remove a product
// @Description Remove a product and every purchase record referencing it
// @Tags Products
// @Produce json
// @Param code path int true "Product code"
// @Success 204 "Product removed"
// @Failure 400 {object} map[string]string "Invalid product code"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{code} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product code")
		return
	}

	if err := h.service.Remove(r.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError maps service errors to HTTP responses
func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrDuplicateKey):
		response.Error(w, http.StatusConflict, "Product code already taken")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in product handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
