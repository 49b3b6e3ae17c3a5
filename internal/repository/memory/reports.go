package memory

import (
	"context"
	"fmt"

	"github.com/kavehsh/shopping_system/internal/domain"
)

// Aggregation queries over the purchase collection. Every keyed query fails
// with ErrNotFound when the subject key is absent, which keeps "unknown
// customer" distinguishable from "customer with no purchases".

// TotalPurchaseAmount sums quantity times current product price over the
// customer's purchase records
func (s *Store) TotalPurchaseAmount(_ context.Context, customerID int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.customers[customerID]; !ok {
		return 0, fmt.Errorf("%w: customer %d", domain.ErrNotFound, customerID)
	}

	var total float64
	for _, purchase := range s.order {
		if purchase.Customer.CustomerID == customerID {
			total += purchase.TotalPrice()
		}
	}
	return total, nil
}

// PurchasedProducts lists the products a customer bought, in purchase
// creation order, with repeats kept when distinct dealers supplied the
// same product
func (s *Store) PurchasedProducts(_ context.Context, customerID int) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, customerID)
	}

	products := []*domain.Product{}
	for _, purchase := range s.order {
		if purchase.Customer.CustomerID == customerID {
			products = append(products, cloneProduct(purchase.Product))
		}
	}
	return products, nil
}

// ProductCustomers lists the customers who bought a product, with repeats
// kept when the same customer bought via multiple dealers
func (s *Store) ProductCustomers(_ context.Context, productCode int) ([]*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.products[productCode]; !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, productCode)
	}

	customers := []*domain.Customer{}
	for _, purchase := range s.order {
		if purchase.Product.Code == productCode {
			customers = append(customers, cloneCustomer(purchase.Customer))
		}
	}
	return customers, nil
}

// DealerProducts lists the distinct products a dealer sold, first-seen
// order preserved
func (s *Store) DealerProducts(_ context.Context, dealerCode int) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.dealers[dealerCode]; !ok {
		return nil, fmt.Errorf("%w: dealer %d", domain.ErrNotFound, dealerCode)
	}

	seen := make(map[int]bool)
	products := []*domain.Product{}
	for _, purchase := range s.order {
		if purchase.Dealer.Code != dealerCode || seen[purchase.Product.Code] {
			continue
		}
		seen[purchase.Product.Code] = true
		products = append(products, cloneProduct(purchase.Product))
	}
	return products, nil
}

// ProductTotalSales sums quantities over a product's purchase records
func (s *Store) ProductTotalSales(_ context.Context, productCode int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.products[productCode]; !ok {
		return 0, fmt.Errorf("%w: product %d", domain.ErrNotFound, productCode)
	}

	total := 0
	for _, purchase := range s.order {
		if purchase.Product.Code == productCode {
			total += purchase.Quantity
		}
	}
	return total, nil
}

// ProductDealerCount counts the distinct dealers who sold a product
func (s *Store) ProductDealerCount(_ context.Context, productCode int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.products[productCode]; !ok {
		return 0, fmt.Errorf("%w: product %d", domain.ErrNotFound, productCode)
	}

	dealers := make(map[int]bool)
	for _, purchase := range s.order {
		if purchase.Product.Code == productCode {
			dealers[purchase.Dealer.Code] = true
		}
	}
	return len(dealers), nil
}

// DealerTotalSales reports the quantity sum per dealer, keyed by dealer
// code, with an entry for every dealer including those without purchases
func (s *Store) DealerTotalSales(_ context.Context) (map[int]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := make(map[int]int, len(s.dealers))
	for code := range s.dealers {
		report[code] = 0
	}
	for _, purchase := range s.order {
		report[purchase.Dealer.Code] += purchase.Quantity
	}
	return report, nil
}
