package product

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
)

// Service handles product business logic
type Service struct {
	store    domain.ProductStore
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new product service
func NewService(store domain.ProductStore, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		logger:   log,
	}
}

// Create adds a new product to the catalog
func (s *Service) Create(ctx context.Context, product *domain.Product) error {
	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.store.AddProduct(ctx, product); err != nil {
		s.logger.Error("Failed to add product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_code": product.Code,
		"name":         product.Name,
		"price":        product.Price,
	}).Info("Product created successfully")

	return nil
}

// GetByCode retrieves a product by code
func (s *Service) GetByCode(ctx context.Context, code int) (*domain.Product, error) {
	product, err := s.store.ProductByCode(ctx, code)
	if err != nil {
		s.logger.Debugf("Product lookup failed for %d: %v", code, err)
		return nil, err
	}
	return product, nil
}

// List retrieves all products
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}
	return products, nil
}

// UpdatePrice reassigns a product's price
func (s *Service) UpdatePrice(ctx context.Context, code int, price float64) (*domain.Product, error) {
	product, err := s.store.UpdateProductPrice(ctx, code, price)
	if err != nil {
		s.logger.Debugf("Failed to update price of product %d: %v", code, err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_code": code,
		"price":        price,
	}).Info("Product price updated successfully")

	return product, nil
}

// Remove deletes a product together with its purchase records
func (s *Service) Remove(ctx context.Context, code int) error {
	if err := s.store.RemoveProduct(ctx, code); err != nil {
		s.logger.Debugf("Failed to remove product %d: %v", code, err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_code": code,
	}).Info("Product removed successfully")

	return nil
}
