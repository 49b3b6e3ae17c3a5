package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/kavehsh/shopping_system/internal/delivery/http/request"
	"github.com/kavehsh/shopping_system/internal/delivery/http/response"
	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
	"github.com/kavehsh/shopping_system/internal/usecase/purchase"
)

// PurchaseHandler handles HTTP requests for purchases and the aggregation
// reports derived from them
type PurchaseHandler struct {
	service *purchase.Service
	logger  *logger.Logger
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(service *purchase.Service, log *logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		logger:  log,
	}
}

// BuyRequest represents the request body for recording a purchase
type BuyRequest struct {
	CustomerID  int        `json:"customer_id" validate:"required"`
	ProductCode int        `json:"product_code" validate:"required"`
	DealerCode  int        `json:"dealer_code" validate:"required"`
	Quantity    int        `json:"quantity" validate:"required,gt=0"`
	BuyTime     *time.Time `json:"buy_time,omitempty"`
}

// Buy handles POST /api/v1/purchases
// @Summary Record a purchase
// @Description Record that a customer bought a product from a dealer; at most one record may exist per triple
// @Tags Purchases
// @Accept json
// @Produce json
// @Param purchase body BuyRequest true "Purchase details"
// @Success 201 {object} map[string]interface{} "Purchase recorded"
// @Failure 400 {object} map[string]string "Invalid request body or quantity"
// @Failure 404 {object} map[string]string "Referenced customer, product or dealer not found"
// @Failure 409 {object} map[string]string "Purchase already recorded for this triple"
// @Router /purchases [post]
func (h *PurchaseHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req BuyRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var buyTime time.Time
	if req.BuyTime != nil {
		buyTime = *req.BuyTime
	}

	p, err := h.service.Buy(r.Context(), req.CustomerID, req.ProductCode, req.DealerCode, req.Quantity, buyTime)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, p)
}

// GetByKey handles GET /api/v1/purchases/{customerID}/{productCode}/{dealerCode}
// @Summary Get a purchase record
// @Description Retrieve the purchase record for a (customer, product, dealer) triple
// @Tags Purchases
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param productCode path int true "Product code"
// @Param dealerCode path int true "Dealer code"
// @Success 200 {object} map[string]interface{} "Purchase record"
// @Failure 404 {object} map[string]string "No purchase recorded for this triple"
// @Router /purchases/{customerID}/{productCode}/{dealerCode} [get]
func (h *PurchaseHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	customerID, err := request.GetIntParam(r, "customerID")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}
	productCode, err := request.GetIntParam(r, "productCode")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product code")
		return
	}
	dealerCode, err := request.GetIntParam(r, "dealerCode")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dealer code")
		return
	}

	p, err := h.service.Get(r.Context(), domain.PurchaseKey{
		CustomerID:  customerID,
		ProductCode: productCode,
		DealerCode:  dealerCode,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, p)
}

// TotalByCustomer handles GET /api/v1/customers/{id}/total
// @Summary Total spend of a customer
// @Description Sum of quantity times current product price over the customer's purchases
// @Tags Reports
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{} "Total amount"
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{id}/total [get]
func (h *PurchaseHandler) TotalByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	total, err := h.service.TotalPurchaseAmount(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"customer_id": id,
		"total":       total,
	})
}

// ProductsByCustomer handles GET /api/v1/customers/{id}/products
// @Summary Products a customer bought
// @Description Purchase creation order, repeats kept when distinct dealers supplied the same product
// @Tags Reports
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{} "Products"
// @Failure 404 {object} map[string]string "Customer not found"
// @Router /customers/{id}/products [get]
func (h *PurchaseHandler) ProductsByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIntParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	products, err := h.service.PurchasedProducts(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, products)
}

// CustomersByProduct handles GET /api/v1/products/{code}/customers
// @Summary Customers who bought a product
// @Tags Reports
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {object} map[string]interface{} "Customers, repeats kept"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{code}/customers [get]
func (h *PurchaseHandler) CustomersByProduct(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product code")
		return
	}

	customers, err := h.service.ProductCustomers(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, customers)
}

// SalesByProduct handles GET /api/v1/products/{code}/sales
// @Summary Quantity sold of a product
// @Tags Reports
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {object} map[string]interface{} "Quantity sum"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{code}/sales [get]
func (h *PurchaseHandler) SalesByProduct(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product code")
		return
	}

	total, err := h.service.ProductTotalSales(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"product_code": code,
		"total_sales":  total,
	})
}

// DealerCountByProduct handles GET /api/v1/products/{code}/dealer-count
// @Summary Distinct dealers carrying a product
// @Tags Reports
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {object} map[string]interface{} "Distinct dealer count"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{code}/dealer-count [get]
func (h *PurchaseHandler) DealerCountByProduct(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product code")
		return
	}

	count, err := h.service.ProductDealerCount(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"product_code": code,
		"dealer_count": count,
	})
}

// ProductsByDealer handles GET /api/v1/dealers/{code}/products
// @Summary Distinct products a dealer sold
// @Tags Reports
// @Produce json
// @Param code path int true "Dealer code"
// @Success 200 {object} map[string]interface{} "Products, deduplicated, first-seen order"
// @Failure 404 {object} map[string]string "Dealer not found"
// @Router /dealers/{code}/products [get]
func (h *PurchaseHandler) ProductsByDealer(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dealer code")
		return
	}

	products, err := h.service.DealerProducts(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, products)
}

// DealerSalesReport handles GET /api/v1/dealers/sales
// @Summary Quantity sum per dealer
// @Description One entry per dealer keyed by dealer code, zero for dealers without purchases
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Dealer code to quantity sum"
// @Router /dealers/sales [get]
func (h *PurchaseHandler) DealerSalesReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.DealerTotalSales(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, report)
}

// handleError maps service errors to HTTP responses
func (h *PurchaseHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateKey):
		response.Error(w, http.StatusConflict, "Purchase already recorded for this triple")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in purchase handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
