package domain

import "context"

// Dealer represents a dealer shop. Code is the identity; dealers are
// immutable after creation.
type Dealer struct {
	Code            int    `json:"code" validate:"required"`
	Name            string `json:"name" validate:"required,min=1,max=255"`
	EstablishedYear int    `json:"established_year" validate:"required,gt=0"`
	OwnerFirstName  string `json:"owner_first_name" validate:"required,min=1,max=100"`
	OwnerLastName   string `json:"owner_last_name" validate:"required,min=1,max=100"`
	Province        string `json:"province" validate:"required"`
	City            string `json:"city" validate:"required"`
}

// OwnerFullName returns the owner's first and last name joined
func (d *Dealer) OwnerFullName() string {
	return d.OwnerFirstName + " " + d.OwnerLastName
}

// DealerStore defines the interface for dealer data access
type DealerStore interface {
	// AddDealer inserts a new dealer; ErrDuplicateKey if the code is taken
	AddDealer(ctx context.Context, dealer *Dealer) error

	// DealerByCode retrieves a dealer by its code
	DealerByCode(ctx context.Context, code int) (*Dealer, error)

	// Dealers retrieves all dealers ordered by code
	Dealers(ctx context.Context) ([]*Dealer, error)

	// RemoveDealer deletes a dealer and every purchase record that
	// references it; ErrNotFound if the code is unknown
	RemoveDealer(ctx context.Context, code int) error
}
