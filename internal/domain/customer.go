package domain

import (
	"context"
	"fmt"
	"strings"
)

// Gender is a customer's gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender converts raw user input into a Gender value
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, s)
	}
}

// Customer represents a registered customer. Customers are immutable after
// creation; CustomerID is the identity.
type Customer struct {
	CustomerID   int    `json:"customer_id" validate:"required"`
	FirstName    string `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string `json:"last_name" validate:"required,min=1,max=100"`
	NationalCode int64  `json:"national_code" validate:"required,gt=0"`
	Gender       Gender `json:"gender" validate:"required,oneof=male female"`
	BirthYear    int    `json:"birth_year" validate:"required,gt=0"`
	Province     string `json:"province" validate:"required"`
	City         string `json:"city" validate:"required"`
}

// FullName returns the customer's first and last name joined
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CustomerStore defines the interface for customer data access
type CustomerStore interface {
	// AddCustomer inserts a new customer; ErrDuplicateKey if the ID is taken
	AddCustomer(ctx context.Context, customer *Customer) error

	// CustomerByID retrieves a customer by its ID
	CustomerByID(ctx context.Context, id int) (*Customer, error)

	// CustomerByNationalCode retrieves the first customer with the given
	// national code. The national code is not a uniqueness key: duplicates
	// are allowed at creation time and this lookup returns the first match.
	CustomerByNationalCode(ctx context.Context, code int64) (*Customer, error)

	// Customers retrieves all customers ordered by ID
	Customers(ctx context.Context) ([]*Customer, error)

	// RemoveCustomer deletes a customer and every purchase record that
	// references it; ErrNotFound if the ID is unknown
	RemoveCustomer(ctx context.Context, id int) error
}
