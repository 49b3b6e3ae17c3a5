package purchase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// PurchaseEvent represents an event emitted when a purchase is recorded
type PurchaseEvent struct {
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	CustomerID  int       `json:"customer_id"`
	ProductCode int       `json:"product_code"`
	DealerCode  int       `json:"dealer_code"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
}

// Service handles the buy operation and the aggregation queries over
// purchase records
type Service struct {
	store     domain.PurchaseStore
	publisher EventPublisher
	subject   string
	logger    *logger.Logger
}

// NewService creates a new purchase service
func NewService(store domain.PurchaseStore, publisher EventPublisher, subject string, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		subject:   subject,
		logger:    log,
	}
}

// Buy records that a customer bought a quantity of a product from a dealer.
// A zero buyTime defaults to the current time.
func (s *Service) Buy(ctx context.Context, customerID, productCode, dealerCode, quantity int, buyTime time.Time) (*domain.Purchase, error) {
	purchase, err := s.store.AddPurchase(ctx, customerID, productCode, dealerCode, quantity, buyTime)
	if err != nil {
		s.logger.Debugf("Failed to record purchase %d/%d/%d: %v", customerID, productCode, dealerCode, err)
		return nil, err
	}

	s.publishEvent(purchase)

	s.logger.WithFields(map[string]interface{}{
		"customer_id":  customerID,
		"product_code": productCode,
		"dealer_code":  dealerCode,
		"quantity":     quantity,
	}).Info("Purchase recorded successfully")

	return purchase, nil
}

// Get retrieves the purchase record for a (customer, product, dealer) triple
func (s *Service) Get(ctx context.Context, key domain.PurchaseKey) (*domain.Purchase, error) {
	purchase, err := s.store.PurchaseByKey(ctx, key)
	if err != nil {
		s.logger.Debugf("Purchase lookup failed for %d/%d/%d: %v", key.CustomerID, key.ProductCode, key.DealerCode, err)
		return nil, err
	}
	return purchase, nil
}

// TotalPurchaseAmount returns the customer's spend across all purchase
// records at current product prices
func (s *Service) TotalPurchaseAmount(ctx context.Context, customerID int) (float64, error) {
	return s.store.TotalPurchaseAmount(ctx, customerID)
}

// PurchasedProducts returns the products a customer bought, repeats kept
func (s *Service) PurchasedProducts(ctx context.Context, customerID int) ([]*domain.Product, error) {
	return s.store.PurchasedProducts(ctx, customerID)
}

// ProductCustomers returns the customers who bought a product, repeats kept
func (s *Service) ProductCustomers(ctx context.Context, productCode int) ([]*domain.Customer, error) {
	return s.store.ProductCustomers(ctx, productCode)
}

// DealerProducts returns the distinct products a dealer sold
func (s *Service) DealerProducts(ctx context.Context, dealerCode int) ([]*domain.Product, error) {
	return s.store.DealerProducts(ctx, dealerCode)
}

// ProductTotalSales returns the quantity sum over a product's purchases
func (s *Service) ProductTotalSales(ctx context.Context, productCode int) (int, error) {
	return s.store.ProductTotalSales(ctx, productCode)
}

// ProductDealerCount returns how many distinct dealers sold a product
func (s *Service) ProductDealerCount(ctx context.Context, productCode int) (int, error) {
	return s.store.ProductDealerCount(ctx, productCode)
}

// DealerTotalSales returns the quantity sum per dealer for all dealers
func (s *Service) DealerTotalSales(ctx context.Context) (map[int]int, error) {
	return s.store.DealerTotalSales(ctx)
}

// publishEvent publishes a purchase event (non-blocking)
func (s *Service) publishEvent(purchase *domain.Purchase) {
	if s.publisher == nil {
		return
	}

	event := PurchaseEvent{
		EventType:   "purchase.created",
		Timestamp:   time.Now(),
		CustomerID:  purchase.Customer.CustomerID,
		ProductCode: purchase.Product.Code,
		DealerCode:  purchase.Dealer.Code,
		Quantity:    purchase.Quantity,
		TotalPrice:  purchase.TotalPrice(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal purchase event %d/%d/%d", event.CustomerID, event.ProductCode, event.DealerCode)
		return
	}

	// Publish in background to avoid blocking
	go func() {
		if err := s.publisher.Publish(context.Background(), s.subject, data); err != nil {
			s.logger.Errorf(err, "Failed to publish purchase event %d/%d/%d", event.CustomerID, event.ProductCode, event.DealerCode)
		}
	}()
}
