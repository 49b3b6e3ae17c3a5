package handler

import (
	"errors"
	"net/http"

	"github.com/kavehsh/shopping_system/internal/delivery/http/request"
	"github.com/kavehsh/shopping_system/internal/delivery/http/response"
	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
	"github.com/kavehsh/shopping_system/internal/usecase/customer"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	service *customer.Service
	logger  *logger.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service *customer.Service, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  log,
	}
}

// CreateCustomerRequest represents the request body for registering a customer
type CreateCustomerRequest struct {
	CustomerID   int    `json:"customer_id" validate:"required"`
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	NationalCode int64  `json:"national_code" validate:"required"`
	Gender       string `json:"gender" validate:"required"`
	BirthYear    int    `json:"birth_year" validate:"required"`
	Province     string `json:"province" validate:"required"`
	City         string `json:"city" validate:"required"`
}

// Create handles POST /api/v1/customers
// @Summary Register a new customer
// @Description Register a customer with a unique customer ID
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body CreateCustomerRequest true "Customer details"
// @Success 201 {object} map[string]interface{} "Customer registered"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Customer ID already taken"
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid gender")
		return
	}

	cust := &domain.Customer{
		CustomerID:   req.CustomerID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NationalCode: req.NationalCode,
		Gender:       gender,
		BirthYear:    req.BirthYear,
		Province:     req.Province,
		City:         req.City,
	}

	if err := h.service.Register(r.Context(), cust); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, cust)
}

// GetByID handles GET /api/v1/customers/{id}
// @Summary Get a customer by ID
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{} "Customer details"
// @Failure 400 {object} map[string]string "Invalid customer ID"
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	cust, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, cust)
}

// GetByNationalCode handles GET /api/v1/customers/by-national-code/{code}
// @Summary Find a customer by national code
// @Description Returns the first customer carrying the national code; national codes are not unique
// @Tags Customers
// @Produce json
// @Param code path int true "National code"
// @Success 200 {object} map[string]interface{} "Customer details"
// @Failure 400 {object} map[string]string "Invalid national code"
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/by-national-code/{code} [get]
func (h *CustomerHandler) GetByNationalCode(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetInt64Param(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid national code")
		return
	}

	cust, err := h.service.GetByNationalCode(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, cust)
}

// List handles GET /api/v1/customers
// @Summary List all customers
// @Tags Customers
// @Produce json
// @Success 200 {object} map[string]interface{} "Customers ordered by ID"
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, customers)
}

// Delete handles DELETE /api/v1/customers/{id}
// @Summary Remove a customer
// @Description Remove a customer and every purchase record referencing it
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 204 "Customer removed"
// @Failure 400 {object} map[string]string "Invalid customer ID"
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError maps service errors to HTTP responses
func (h *CustomerHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, domain.ErrDuplicateKey):
		response.Error(w, http.StatusConflict, "Customer ID already taken")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in customer handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
