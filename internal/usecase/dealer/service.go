package dealer

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
)

// Service handles dealer business logic
type Service struct {
	store    domain.DealerStore
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new dealer service
func NewService(store domain.DealerStore, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		logger:   log,
	}
}

// Register adds a new dealer to the store
func (s *Service) Register(ctx context.Context, dealer *domain.Dealer) error {
	if err := s.validate.Struct(dealer); err != nil {
		s.logger.Error("Dealer validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.store.AddDealer(ctx, dealer); err != nil {
		s.logger.Error("Failed to add dealer", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"dealer_code": dealer.Code,
		"name":        dealer.Name,
	}).Info("Dealer registered successfully")

	return nil
}

// GetByCode retrieves a dealer by code
func (s *Service) GetByCode(ctx context.Context, code int) (*domain.Dealer, error) {
	dealer, err := s.store.DealerByCode(ctx, code)
	if err != nil {
		s.logger.Debugf("Dealer lookup failed for %d: %v", code, err)
		return nil, err
	}
	return dealer, nil
}

// List retrieves all dealers
func (s *Service) List(ctx context.Context) ([]*domain.Dealer, error) {
	dealers, err := s.store.Dealers(ctx)
	if err != nil {
		s.logger.Error("Failed to list dealers", err)
		return nil, err
	}
	return dealers, nil
}

// Remove deletes a dealer together with its purchase records
func (s *Service) Remove(ctx context.Context, code int) error {
	if err := s.store.RemoveDealer(ctx, code); err != nil {
		s.logger.Debugf("Failed to remove dealer %d: %v", code, err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"dealer_code": code,
	}).Info("Dealer removed successfully")

	return nil
}
