package domain

import (
	"context"
	"fmt"
)

// Product represents a product in the catalog. Code is the identity; every
// attribute except Price is immutable after creation.
type Product struct {
	Code   int     `json:"code" validate:"required"`
	Name   string  `json:"name" validate:"required,min=1,max=255"`
	Brand  string  `json:"brand" validate:"required,min=1,max=255"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
	Price  float64 `json:"price" validate:"required,gt=0"`
}

// NewProduct builds a product, rejecting non-positive price or weight
func NewProduct(name string, code int, price float64, brand string, weight float64) (*Product, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: product price should be greater than zero", ErrInvalidInput)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: product weight should be greater than zero", ErrInvalidInput)
	}
	return &Product{
		Code:   code,
		Name:   name,
		Brand:  brand,
		Weight: weight,
		Price:  price,
	}, nil
}

// SetPrice reassigns the price, keeping the strictly-positive invariant.
// Purchase totals are derived from the current price, so existing purchase
// records observe the new value immediately.
func (p *Product) SetPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: product price should be greater than zero", ErrInvalidInput)
	}
	p.Price = price
	return nil
}

// ProductStore defines the interface for product data access
type ProductStore interface {
	// AddProduct inserts a new product; ErrDuplicateKey if the code is taken
	AddProduct(ctx context.Context, product *Product) error

	// ProductByCode retrieves a product by its code
	ProductByCode(ctx context.Context, code int) (*Product, error)

	// Products retrieves all products ordered by code
	Products(ctx context.Context) ([]*Product, error)

	// UpdateProductPrice reassigns a product's price; ErrInvalidInput if the
	// price is not strictly positive, ErrNotFound if the code is unknown
	UpdateProductPrice(ctx context.Context, code int, price float64) (*Product, error)

	// RemoveProduct deletes a product and every purchase record that
	// references it; ErrNotFound if the code is unknown
	RemoveProduct(ctx context.Context, code int) error
}
