package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavehsh/shopping_system/internal/domain"
)

func testCustomer(id int) *domain.Customer {
	return &domain.Customer{
		CustomerID:   id,
		FirstName:    "Sara",
		LastName:     "Ahmadi",
		NationalCode: int64(1000000000 + id),
		Gender:       domain.GenderFemale,
		BirthYear:    1990,
		Province:     "Tehran",
		City:         "Tehran",
	}
}

func testProduct(code int, price float64) *domain.Product {
	return &domain.Product{
		Code:   code,
		Name:   "Milk",
		Brand:  "Kalleh",
		Weight: 1.0,
		Price:  price,
	}
}

func testDealer(code int) *domain.Dealer {
	return &domain.Dealer{
		Code:            code,
		Name:            "City Market",
		EstablishedYear: 2005,
		OwnerFirstName:  "Reza",
		OwnerLastName:   "Karimi",
		Province:        "Tehran",
		City:            "Tehran",
	}
}

// seed inserts a customer, product and dealer with the given keys
func seed(t *testing.T, s *Store, customerID, productCode, dealerCode int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.AddCustomer(ctx, testCustomer(customerID)))
	require.NoError(t, s.AddProduct(ctx, testProduct(productCode, 5.0)))
	require.NoError(t, s.AddDealer(ctx, testDealer(dealerCode)))
}

func TestStore_AddCustomer_Duplicate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.AddCustomer(ctx, testCustomer(1)))

	err := s.AddCustomer(ctx, testCustomer(1))
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	customers, err := s.Customers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestStore_AddProduct_Duplicate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first := testProduct(10, 5.0)
	require.NoError(t, s.AddProduct(ctx, first))

	err := s.AddProduct(ctx, testProduct(10, 7.5))
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	got, err := s.ProductByCode(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, 5.0, got.Price)
}

func TestStore_AddDealer_Duplicate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.AddDealer(ctx, testDealer(100)))

	err := s.AddDealer(ctx, testDealer(100))
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestStore_Lookup_NotFound(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CustomerByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.ProductByCode(ctx, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.DealerByCode(ctx, 100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_CustomerByNationalCode(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first := testCustomer(1)
	second := testCustomer(2)
	// National codes are not a uniqueness key: duplicates are accepted
	second.NationalCode = first.NationalCode
	require.NoError(t, s.AddCustomer(ctx, first))
	require.NoError(t, s.AddCustomer(ctx, second))

	got, err := s.CustomerByNationalCode(ctx, first.NationalCode)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = s.CustomerByNationalCode(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Remove_NotFound(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	assert.ErrorIs(t, s.RemoveCustomer(ctx, 2), domain.ErrNotFound)
	assert.ErrorIs(t, s.RemoveProduct(ctx, 11), domain.ErrNotFound)
	assert.ErrorIs(t, s.RemoveDealer(ctx, 101), domain.ErrNotFound)

	// Collections are untouched by a failed remove
	customers, _ := s.Customers(ctx)
	products, _ := s.Products(ctx)
	dealers, _ := s.Dealers(ctx)
	assert.Len(t, customers, 1)
	assert.Len(t, products, 1)
	assert.Len(t, dealers, 1)
}

func TestStore_AddPurchase(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	p, err := s.AddPurchase(ctx, 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Quantity)
	assert.False(t, p.BuyTime.IsZero())

	got, err := s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 1, ProductCode: 10, DealerCode: 100})
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestStore_AddPurchase_ExplicitBuyTime(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	buyTime := time.Date(2024, 3, 21, 15, 0, 0, 0, time.UTC)
	p, err := s.AddPurchase(ctx, 1, 10, 100, 2, buyTime)
	require.NoError(t, err)
	assert.Equal(t, buyTime, p.BuyTime)
}

func TestStore_AddPurchase_DuplicateKeepsOriginal(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	_, err := s.AddPurchase(ctx, 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)

	_, err = s.AddPurchase(ctx, 1, 10, 100, 7, time.Time{})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	got, err := s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 1, ProductCode: 10, DealerCode: 100})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestStore_AddPurchase_MissingReference(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	cases := []struct {
		name       string
		customerID int
		product    int
		dealer     int
	}{
		{"unknown customer", 2, 10, 100},
		{"unknown product", 1, 11, 100},
		{"unknown dealer", 1, 10, 101},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddPurchase(ctx, tc.customerID, tc.product, tc.dealer, 1, time.Time{})
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}

	// Nothing was inserted by the failed adds
	products, err := s.PurchasedProducts(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestStore_AddPurchase_InvalidQuantity(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	_, err := s.AddPurchase(ctx, 1, 10, 100, 0, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.AddPurchase(ctx, 1, 10, 100, -2, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 1, ProductCode: 10, DealerCode: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RemoveCustomer_Cascade(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)
	require.NoError(t, s.AddCustomer(ctx, testCustomer(2)))
	require.NoError(t, s.AddProduct(ctx, testProduct(11, 2.0)))

	_, err := s.AddPurchase(ctx, 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)
	_, err = s.AddPurchase(ctx, 1, 11, 100, 1, time.Time{})
	require.NoError(t, err)
	_, err = s.AddPurchase(ctx, 2, 10, 100, 5, time.Time{})
	require.NoError(t, err)

	require.NoError(t, s.RemoveCustomer(ctx, 1))

	_, err = s.CustomerByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Customer 1's records are gone, customer 2's are untouched
	_, err = s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 1, ProductCode: 10, DealerCode: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 1, ProductCode: 11, DealerCode: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	remaining, err := s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 2, ProductCode: 10, DealerCode: 100})
	require.NoError(t, err)
	assert.Equal(t, 5, remaining.Quantity)
}

func TestStore_RemoveProduct_Cascade(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)
	require.NoError(t, s.AddProduct(ctx, testProduct(11, 2.0)))

	_, err := s.AddPurchase(ctx, 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)
	_, err = s.AddPurchase(ctx, 1, 11, 100, 4, time.Time{})
	require.NoError(t, err)

	require.NoError(t, s.RemoveProduct(ctx, 10))

	_, err = s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 1, ProductCode: 10, DealerCode: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	products, err := s.PurchasedProducts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 11, products[0].Code)
}

func TestStore_RemoveDealer_Cascade(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)
	require.NoError(t, s.AddDealer(ctx, testDealer(101)))

	_, err := s.AddPurchase(ctx, 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)
	_, err = s.AddPurchase(ctx, 1, 10, 101, 4, time.Time{})
	require.NoError(t, err)

	require.NoError(t, s.RemoveDealer(ctx, 100))

	_, err = s.DealerByCode(ctx, 100)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	total, err := s.ProductTotalSales(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestStore_UpdateProductPrice(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.AddProduct(ctx, testProduct(10, 5.0)))

	updated, err := s.UpdateProductPrice(ctx, 10, 8.5)
	require.NoError(t, err)
	assert.Equal(t, 8.5, updated.Price)

	_, err = s.UpdateProductPrice(ctx, 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := s.ProductByCode(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 8.5, got.Price)

	_, err = s.UpdateProductPrice(ctx, 11, 2.0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ReadsReturnSnapshots(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	before, err := s.ProductByCode(ctx, 10)
	require.NoError(t, err)

	p, err := s.AddPurchase(ctx, 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)

	_, err = s.UpdateProductPrice(ctx, 10, 10.0)
	require.NoError(t, err)

	// Entities fetched before the update keep the price they were read at
	assert.Equal(t, 5.0, before.Price)
	assert.Equal(t, 15.0, p.TotalPrice())

	// Fresh reads and store-side totals observe the new price
	after, err := s.ProductByCode(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, after.Price)

	total, err := s.TotalPurchaseAmount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, total)

	// Mutating a returned entity does not leak back into the store
	after.Price = 99.0
	got, err := s.ProductByCode(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Price)
}

func TestStore_ConcurrentPriceUpdateAndReads(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, 1, 10, 100)

	_, err := s.AddPurchase(ctx, 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_, err := s.UpdateProductPrice(ctx, 10, float64(i+1))
			assert.NoError(t, err)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			product, err := s.ProductByCode(ctx, 10)
			assert.NoError(t, err)
			_ = product.Price

			purchase, err := s.PurchaseByKey(ctx, domain.PurchaseKey{CustomerID: 1, ProductCode: 10, DealerCode: 100})
			assert.NoError(t, err)
			_ = purchase.TotalPrice()
		}
	}()

	wg.Wait()

	product, err := s.ProductByCode(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 200.0, product.Price)
}
