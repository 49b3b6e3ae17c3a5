// Package memory implements the shopping system store as in-process indexed
// maps. One Store owns all four collections behind a single RWMutex, so a
// removal and its cascade over purchase records are observed as one
// operation by every other caller. Reads return snapshot copies taken under
// the lock; only the store's own entities alias each other, so purchase
// totals stay live while callers never share memory with the store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kavehsh/shopping_system/internal/domain"
)

// Store holds customers, products, dealers and the purchase records linking
// them. Entities are indexed by their identity key; purchase records keep an
// insertion-ordered slice alongside the index so query results preserve
// creation order across cascades.
type Store struct {
	mu sync.RWMutex

	customers map[int]*domain.Customer
	products  map[int]*domain.Product
	dealers   map[int]*domain.Dealer

	purchases map[domain.PurchaseKey]*domain.Purchase
	order     []*domain.Purchase
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		customers: make(map[int]*domain.Customer),
		products:  make(map[int]*domain.Product),
		dealers:   make(map[int]*domain.Dealer),
		purchases: make(map[domain.PurchaseKey]*domain.Purchase),
	}
}

// AddCustomer inserts a new customer
func (s *Store) AddCustomer(_ context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customer.CustomerID]; ok {
		return fmt.Errorf("%w: customer %d", domain.ErrDuplicateKey, customer.CustomerID)
	}
	s.customers[customer.CustomerID] = cloneCustomer(customer)
	return nil
}

// CustomerByID retrieves a customer by its ID
func (s *Store) CustomerByID(_ context.Context, id int) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	return cloneCustomer(customer), nil
}

// CustomerByNationalCode retrieves the first customer with the given
// national code. National codes are not unique, so this is a scan.
func (s *Store) CustomerByNationalCode(_ context.Context, code int64) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *domain.Customer
	for _, customer := range s.customers {
		if customer.NationalCode != code {
			continue
		}
		if found == nil || customer.CustomerID < found.CustomerID {
			found = customer
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: national code %d", domain.ErrNotFound, code)
	}
	return cloneCustomer(found), nil
}

// Customers retrieves all customers ordered by ID
func (s *Store) Customers(_ context.Context) ([]*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]*domain.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		customers = append(customers, cloneCustomer(customer))
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CustomerID < customers[j].CustomerID
	})
	return customers, nil
}

// RemoveCustomer deletes a customer and cascades over its purchase records
func (s *Store) RemoveCustomer(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	delete(s.customers, id)
	s.dropPurchases(func(p *domain.Purchase) bool {
		return p.Customer.CustomerID == id
	})
	return nil
}

// AddProduct inserts a new product
func (s *Store) AddProduct(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.Code]; ok {
		return fmt.Errorf("%w: product %d", domain.ErrDuplicateKey, product.Code)
	}
	s.products[product.Code] = cloneProduct(product)
	return nil
}

// ProductByCode retrieves a product by its code
func (s *Store) ProductByCode(_ context.Context, code int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[code]
	if !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, code)
	}
	return cloneProduct(product), nil
}

// Products retrieves all products ordered by code
func (s *Store) Products(_ context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*domain.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, cloneProduct(product))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Code < products[j].Code
	})
	return products, nil
}

// UpdateProductPrice reassigns a product's price under the store lock, so
// purchase totals never observe a half-applied change
func (s *Store) UpdateProductPrice(_ context.Context, code int, price float64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[code]
	if !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, code)
	}
	if err := product.SetPrice(price); err != nil {
		return nil, err
	}
	return cloneProduct(product), nil
}

// RemoveProduct deletes a product and cascades over its purchase records
func (s *Store) RemoveProduct(_ context.Context, code int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[code]; !ok {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, code)
	}
	delete(s.products, code)
	s.dropPurchases(func(p *domain.Purchase) bool {
		return p.Product.Code == code
	})
	return nil
}

// AddDealer inserts a new dealer
func (s *Store) AddDealer(_ context.Context, dealer *domain.Dealer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dealers[dealer.Code]; ok {
		return fmt.Errorf("%w: dealer %d", domain.ErrDuplicateKey, dealer.Code)
	}
	s.dealers[dealer.Code] = cloneDealer(dealer)
	return nil
}

// DealerByCode retrieves a dealer by its code
func (s *Store) DealerByCode(_ context.Context, code int) (*domain.Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dealer, ok := s.dealers[code]
	if !ok {
		return nil, fmt.Errorf("%w: dealer %d", domain.ErrNotFound, code)
	}
	return cloneDealer(dealer), nil
}

// Dealers retrieves all dealers ordered by code
func (s *Store) Dealers(_ context.Context) ([]*domain.Dealer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dealers := make([]*domain.Dealer, 0, len(s.dealers))
	for _, dealer := range s.dealers {
		dealers = append(dealers, cloneDealer(dealer))
	}
	sort.Slice(dealers, func(i, j int) bool {
		return dealers[i].Code < dealers[j].Code
	})
	return dealers, nil
}

// RemoveDealer deletes a dealer and cascades over its purchase records
func (s *Store) RemoveDealer(_ context.Context, code int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dealers[code]; !ok {
		return fmt.Errorf("%w: dealer %d", domain.ErrNotFound, code)
	}
	delete(s.dealers, code)
	s.dropPurchases(func(p *domain.Purchase) bool {
		return p.Dealer.Code == code
	})
	return nil
}

// AddPurchase records that a customer bought a product from a dealer. All
// three references must exist; the (customer, product, dealer) triple must
// be new; the quantity must be strictly positive. A failed add leaves the
// store untouched.
func (s *Store) AddPurchase(_ context.Context, customerID, productCode, dealerCode, quantity int, buyTime time.Time) (*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", domain.ErrNotFound, customerID)
	}
	product, ok := s.products[productCode]
	if !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, productCode)
	}
	dealer, ok := s.dealers[dealerCode]
	if !ok {
		return nil, fmt.Errorf("%w: dealer %d", domain.ErrNotFound, dealerCode)
	}

	key := domain.PurchaseKey{CustomerID: customerID, ProductCode: productCode, DealerCode: dealerCode}
	if _, ok := s.purchases[key]; ok {
		return nil, fmt.Errorf("%w: purchase %d/%d/%d", domain.ErrDuplicateKey, customerID, productCode, dealerCode)
	}

	purchase, err := domain.NewPurchase(customer, product, dealer, quantity, buyTime)
	if err != nil {
		return nil, err
	}

	s.purchases[key] = purchase
	s.order = append(s.order, purchase)
	return clonePurchase(purchase), nil
}

// PurchaseByKey retrieves the purchase record for a triple
func (s *Store) PurchaseByKey(_ context.Context, key domain.PurchaseKey) (*domain.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	purchase, ok := s.purchases[key]
	if !ok {
		return nil, fmt.Errorf("%w: purchase %d/%d/%d", domain.ErrNotFound, key.CustomerID, key.ProductCode, key.DealerCode)
	}
	return clonePurchase(purchase), nil
}

// dropPurchases removes every purchase record matching the predicate from
// both the index and the ordered slice. Callers must hold the write lock.
func (s *Store) dropPurchases(match func(*domain.Purchase) bool) {
	kept := s.order[:0]
	for _, purchase := range s.order {
		if match(purchase) {
			delete(s.purchases, purchase.Key())
			continue
		}
		kept = append(kept, purchase)
	}
	for i := len(kept); i < len(s.order); i++ {
		s.order[i] = nil
	}
	s.order = kept
}

// Clone helpers detach returned entities from store state. UpdateProductPrice
// mutates stored products in place, so handing out the stored pointers would
// let callers read Price outside the lock. Callers must hold at least the
// read lock.

func cloneCustomer(c *domain.Customer) *domain.Customer {
	cp := *c
	return &cp
}

func cloneProduct(p *domain.Product) *domain.Product {
	cp := *p
	return &cp
}

func cloneDealer(d *domain.Dealer) *domain.Dealer {
	cp := *d
	return &cp
}

func clonePurchase(p *domain.Purchase) *domain.Purchase {
	return &domain.Purchase{
		Customer: cloneCustomer(p.Customer),
		Product:  cloneProduct(p.Product),
		Dealer:   cloneDealer(p.Dealer),
		Quantity: p.Quantity,
		BuyTime:  p.BuyTime,
	}
}
