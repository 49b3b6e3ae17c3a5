package domain

import (
	"context"
	"fmt"
	"time"
)

// PurchaseKey is the composite identity of a purchase record: at most one
// record may exist per (customer, product, dealer) triple.
type PurchaseKey struct {
	CustomerID  int `json:"customer_id"`
	ProductCode int `json:"product_code"`
	DealerCode  int `json:"dealer_code"`
}

// Purchase links one customer, one product and one dealer with a quantity
// and a buy time. It holds entity references rather than copied fields, so
// TotalPrice follows the referenced product's price; the store keeps its
// records pointed at the stored entities and totals track price updates.
type Purchase struct {
	Customer *Customer `json:"customer" validate:"required"`
	Product  *Product  `json:"product" validate:"required"`
	Dealer   *Dealer   `json:"dealer" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
	BuyTime  time.Time `json:"buy_time"`
}

// NewPurchase builds a purchase record, rejecting a non-positive quantity.
// A zero buyTime defaults to the current time.
func NewPurchase(customer *Customer, product *Product, dealer *Dealer, quantity int, buyTime time.Time) (*Purchase, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: purchase quantity should be greater than zero", ErrInvalidInput)
	}
	if buyTime.IsZero() {
		buyTime = time.Now()
	}
	return &Purchase{
		Customer: customer,
		Product:  product,
		Dealer:   dealer,
		Quantity: quantity,
		BuyTime:  buyTime,
	}, nil
}

// Key returns the composite identity of the record
func (p *Purchase) Key() PurchaseKey {
	return PurchaseKey{
		CustomerID:  p.Customer.CustomerID,
		ProductCode: p.Product.Code,
		DealerCode:  p.Dealer.Code,
	}
}

// SetQuantity reassigns the quantity, keeping the strictly-positive invariant
func (p *Purchase) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: purchase quantity should be greater than zero", ErrInvalidInput)
	}
	p.Quantity = quantity
	return nil
}

// TotalPrice is quantity times the product's current price, recomputed on
// every call rather than cached at buy time.
func (p *Purchase) TotalPrice() float64 {
	return float64(p.Quantity) * p.Product.Price
}

// PurchaseStore defines the interface for purchase data access and the
// aggregation queries built over the purchase collection. Purchase records
// are created through AddPurchase and destroyed only by the cascade of a
// customer, product or dealer removal.
type PurchaseStore interface {
	// AddPurchase records that a customer bought a product from a dealer.
	// ErrNotFound if any referenced entity is absent, ErrInvalidInput for a
	// non-positive quantity, ErrDuplicateKey if the triple already exists.
	// A zero buyTime defaults to the current time.
	AddPurchase(ctx context.Context, customerID, productCode, dealerCode, quantity int, buyTime time.Time) (*Purchase, error)

	// PurchaseByKey retrieves the purchase record for a triple
	PurchaseByKey(ctx context.Context, key PurchaseKey) (*Purchase, error)

	// TotalPurchaseAmount sums quantity times current product price over the
	// customer's purchase records; 0 for a customer with no purchases
	TotalPurchaseAmount(ctx context.Context, customerID int) (float64, error)

	// PurchasedProducts lists the products a customer bought in purchase
	// creation order, keeping repeats when distinct dealers supplied the
	// same product
	PurchasedProducts(ctx context.Context, customerID int) ([]*Product, error)

	// ProductCustomers lists the customers who bought a product, keeping
	// repeats when the same customer bought via multiple dealers
	ProductCustomers(ctx context.Context, productCode int) ([]*Customer, error)

	// DealerProducts lists the distinct products a dealer sold, first-seen
	// order preserved
	DealerProducts(ctx context.Context, dealerCode int) ([]*Product, error)

	// ProductTotalSales sums quantities over a product's purchase records
	ProductTotalSales(ctx context.Context, productCode int) (int, error)

	// ProductDealerCount counts the distinct dealers who sold a product
	ProductDealerCount(ctx context.Context, productCode int) (int, error)

	// DealerTotalSales reports the quantity sum per dealer, keyed by dealer
	// code, with an entry for every dealer in the store
	DealerTotalSales(ctx context.Context) (map[int]int, error)
}
