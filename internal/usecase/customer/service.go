package customer

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
)

// Service handles customer business logic
type Service struct {
	store    domain.CustomerStore
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new customer service
func NewService(store domain.CustomerStore, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		logger:   log,
	}
}

// Register adds a new customer to the store
func (s *Service) Register(ctx context.Context, customer *domain.Customer) error {
	if err := s.validate.Struct(customer); err != nil {
		s.logger.Error("Customer validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.store.AddCustomer(ctx, customer); err != nil {
		s.logger.Error("Failed to add customer", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"customer_id": customer.CustomerID,
		"full_name":   customer.FullName(),
	}).Info("Customer registered successfully")

	return nil
}

// GetByID retrieves a customer by ID
func (s *Service) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.store.CustomerByID(ctx, id)
	if err != nil {
		s.logger.Debugf("Customer lookup failed for %d: %v", id, err)
		return nil, err
	}
	return customer, nil
}

// GetByNationalCode retrieves the first customer with the given national code
func (s *Service) GetByNationalCode(ctx context.Context, code int64) (*domain.Customer, error) {
	customer, err := s.store.CustomerByNationalCode(ctx, code)
	if err != nil {
		s.logger.Debugf("Customer lookup failed for national code %d: %v", code, err)
		return nil, err
	}
	return customer, nil
}

// List retrieves all customers
func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		s.logger.Error("Failed to list customers", err)
		return nil, err
	}
	return customers, nil
}

// Remove deletes a customer together with its purchase records
func (s *Service) Remove(ctx context.Context, id int) error {
	if err := s.store.RemoveCustomer(ctx, id); err != nil {
		s.logger.Debugf("Failed to remove customer %d: %v", id, err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"customer_id": id,
	}).Info("Customer removed successfully")

	return nil
}
