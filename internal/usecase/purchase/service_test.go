package purchase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
)

// MockPurchaseStore is a mock implementation of domain.PurchaseStore
type MockPurchaseStore struct {
	mock.Mock
}

func (m *MockPurchaseStore) AddPurchase(ctx context.Context, customerID, productCode, dealerCode, quantity int, buyTime time.Time) (*domain.Purchase, error) {
	args := m.Called(ctx, customerID, productCode, dealerCode, quantity, buyTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseStore) PurchaseByKey(ctx context.Context, key domain.PurchaseKey) (*domain.Purchase, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseStore) TotalPurchaseAmount(ctx context.Context, customerID int) (float64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPurchaseStore) PurchasedProducts(ctx context.Context, customerID int) ([]*domain.Product, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockPurchaseStore) ProductCustomers(ctx context.Context, productCode int) ([]*domain.Customer, error) {
	args := m.Called(ctx, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}

func (m *MockPurchaseStore) DealerProducts(ctx context.Context, dealerCode int) ([]*domain.Product, error) {
	args := m.Called(ctx, dealerCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockPurchaseStore) ProductTotalSales(ctx context.Context, productCode int) (int, error) {
	args := m.Called(ctx, productCode)
	return args.Int(0), args.Error(1)
}

func (m *MockPurchaseStore) ProductDealerCount(ctx context.Context, productCode int) (int, error) {
	args := m.Called(ctx, productCode)
	return args.Int(0), args.Error(1)
}

func (m *MockPurchaseStore) DealerTotalSales(ctx context.Context) (map[int]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

// capturePublisher records published payloads on a channel
type capturePublisher struct {
	published chan []byte
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{published: make(chan []byte, 1)}
}

func (p *capturePublisher) Publish(_ context.Context, _ string, data []byte) error {
	p.published <- data
	return nil
}

func testPurchase() *domain.Purchase {
	return &domain.Purchase{
		Customer: &domain.Customer{CustomerID: 1, FirstName: "Sara", LastName: "Ahmadi"},
		Product:  &domain.Product{Code: 10, Name: "Milk", Price: 5.0},
		Dealer:   &domain.Dealer{Code: 100, Name: "City Market"},
		Quantity: 3,
		BuyTime:  time.Now(),
	}
}

func TestService_Buy_Success(t *testing.T) {
	mockStore := new(MockPurchaseStore)
	publisher := newCapturePublisher()
	log := logger.New("test")
	service := NewService(mockStore, publisher, "shop.events", log)

	expected := testPurchase()
	mockStore.On("AddPurchase", mock.Anything, 1, 10, 100, 3, time.Time{}).Return(expected, nil)

	p, err := service.Buy(context.Background(), 1, 10, 100, 3, time.Time{})

	require.NoError(t, err)
	assert.Equal(t, expected, p)
	mockStore.AssertExpectations(t)

	select {
	case data := <-publisher.published:
		var event PurchaseEvent
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "purchase.created", event.EventType)
		assert.Equal(t, 1, event.CustomerID)
		assert.Equal(t, 10, event.ProductCode)
		assert.Equal(t, 100, event.DealerCode)
		assert.Equal(t, 15.0, event.TotalPrice)
	case <-time.After(time.Second):
		t.Fatal("expected a purchase event to be published")
	}
}

func TestService_Buy_StoreError(t *testing.T) {
	mockStore := new(MockPurchaseStore)
	publisher := newCapturePublisher()
	log := logger.New("test")
	service := NewService(mockStore, publisher, "shop.events", log)

	mockStore.On("AddPurchase", mock.Anything, 1, 10, 100, 3, time.Time{}).Return(nil, domain.ErrDuplicateKey)

	p, err := service.Buy(context.Background(), 1, 10, 100, 3, time.Time{})

	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Nil(t, p)
	assert.Empty(t, publisher.published)
	mockStore.AssertExpectations(t)
}

func TestService_Buy_NilPublisher(t *testing.T) {
	mockStore := new(MockPurchaseStore)
	log := logger.New("test")
	service := NewService(mockStore, nil, "shop.events", log)

	mockStore.On("AddPurchase", mock.Anything, 1, 10, 100, 3, time.Time{}).Return(testPurchase(), nil)

	_, err := service.Buy(context.Background(), 1, 10, 100, 3, time.Time{})
	require.NoError(t, err)
}

func TestService_TotalPurchaseAmount(t *testing.T) {
	mockStore := new(MockPurchaseStore)
	log := logger.New("test")
	service := NewService(mockStore, nil, "shop.events", log)

	mockStore.On("TotalPurchaseAmount", mock.Anything, 1).Return(15.0, nil)

	total, err := service.TotalPurchaseAmount(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 15.0, total)
	mockStore.AssertExpectations(t)
}

func TestService_TotalPurchaseAmount_NotFound(t *testing.T) {
	mockStore := new(MockPurchaseStore)
	log := logger.New("test")
	service := NewService(mockStore, nil, "shop.events", log)

	mockStore.On("TotalPurchaseAmount", mock.Anything, 2).Return(0.0, domain.ErrNotFound)

	_, err := service.TotalPurchaseAmount(context.Background(), 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockStore.AssertExpectations(t)
}

func TestService_DealerTotalSales(t *testing.T) {
	mockStore := new(MockPurchaseStore)
	log := logger.New("test")
	service := NewService(mockStore, nil, "shop.events", log)

	expected := map[int]int{100: 3, 101: 0}
	mockStore.On("DealerTotalSales", mock.Anything).Return(expected, nil)

	report, err := service.DealerTotalSales(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, report)
	mockStore.AssertExpectations(t)
}
