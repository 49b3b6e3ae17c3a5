package handler

import (
	"errors"
	"net/http"

	"github.com/kavehsh/shopping_system/internal/delivery/http/request"
	"github.com/kavehsh/shopping_system/internal/delivery/http/response"
	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
	"github.com/kavehsh/shopping_system/internal/usecase/dealer"
)

// DealerHandler handles HTTP requests for dealers
type DealerHandler struct {
	service *dealer.Service
	logger  *logger.Logger
}

// NewDealerHandler creates a new dealer handler
func NewDealerHandler(service *dealer.Service, log *logger.Logger) *DealerHandler {
	return &DealerHandler{
		service: service,
		logger:  log,
	}
}

// CreateDealerRequest represents the request body for registering a dealer
type CreateDealerRequest struct {
	Code            int    `json:"code" validate:"required"`
	Name            string `json:"name" validate:"required"`
	EstablishedYear int    `json:"established_year" validate:"required"`
	OwnerFirstName  string `json:"owner_first_name" validate:"required"`
	OwnerLastName   string `json:"owner_last_name" validate:"required"`
	Province        string `json:"province" validate:"required"`
	City            string `json:"city" validate:"required"`
}

// Create handles POST /api/v1/dealers
// @Summary Register a new dealer
// @Description Register a dealer with a unique code
// @Tags Dealers
// @Accept json
// @Produce json
// @Param dealer body CreateDealerRequest true "Dealer details"
// @Success 201 {object} map[string]interface{} "Dealer registered"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Dealer code already taken"
// @Router /dealers [post]
func (h *DealerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDealerRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	d := &domain.Dealer{
		Code:            req.Code,
		Name:            req.Name,
		EstablishedYear: req.EstablishedYear,
		OwnerFirstName:  req.OwnerFirstName,
		OwnerLastName:   req.OwnerLastName,
		Province:        req.Province,
		City:            req.City,
	}

	if err := h.service.Register(r.Context(), d); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, d)
}

// GetByCode handles GET /api/v1/dealers/{code}
// @Summary Get a dealer by code
// @Tags Dealers
// @Produce json
// @Param code path int true "Dealer code"
// @Success 200 {object} map[string]interface{} "Dealer details"
// @Failure 400 {object} map[string]string "Invalid dealer code"
// @Failure 404 {object} map[string]string "Dealer not found"
// @Router /dealers/{code} [get]
func (h *DealerHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dealer code")
		return
	}

	d, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, d)
}

// List handles GET /api/v1/dealers
// @Summary List all dealers
// @Tags Dealers
// @Produce json
// @Success 200 {object} map[string]interface{} "Dealers ordered by code"
// @Router /dealers [get]
func (h *DealerHandler) List(w http.ResponseWriter, r *http.Request) {
	dealers, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, dealers)
}

// Delete handles DELETE /api/v1/dealers/{code}
// @Summary Remove a dealer
// @Description Remove a dealer and every purchase record referencing it
// @Tags Dealers
// @Produce json
// @Param code path int true "Dealer code"
// @Success 204 "Dealer removed"
// @Failure 400 {object} map[string]string "Invalid dealer code"
// @Failure 404 {object} map[string]string "Dealer not found"
// @Router /dealers/{code} [delete]
func (h *DealerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code, err := request.GetIntParam(r, "code")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid dealer code")
		return
	}

	if err := h.service.Remove(r.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError maps service errors to HTTP responses
func (h *DealerHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Dealer not found")
	case errors.Is(err, domain.ErrDuplicateKey):
		response.Error(w, http.StatusConflict, "Dealer code already taken")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in dealer handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
