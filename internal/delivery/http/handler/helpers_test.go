package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kavehsh/shopping_system/internal/config"
	httpDelivery "github.com/kavehsh/shopping_system/internal/delivery/http"
	"github.com/kavehsh/shopping_system/internal/delivery/http/handler"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
	"github.com/kavehsh/shopping_system/internal/repository/memory"
	"github.com/kavehsh/shopping_system/internal/usecase/customer"
	"github.com/kavehsh/shopping_system/internal/usecase/dealer"
	"github.com/kavehsh/shopping_system/internal/usecase/product"
	"github.com/kavehsh/shopping_system/internal/usecase/purchase"
)

// newTestHandler wires the full router over a fresh in-memory store
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Env: "test",
		Server: config.ServerConfig{
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
	log := logger.New("test")
	store := memory.NewStore()

	customerService := customer.NewService(store, log)
	productService := product.NewService(store, log)
	dealerService := dealer.NewService(store, log)
	purchaseService := purchase.NewService(store, nil, "shop.events", log)

	router := httpDelivery.NewRouter(
		handler.NewCustomerHandler(customerService, log),
		handler.NewProductHandler(productService, log),
		handler.NewDealerHandler(dealerService, log),
		handler.NewPurchaseHandler(purchaseService, log),
		cfg,
		log,
	)
	return router.Setup()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedScenario(t *testing.T, h http.Handler) {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/customers", map[string]interface{}{
		"customer_id": 1, "first_name": "Sara", "last_name": "Ahmadi",
		"national_code": 1234567890, "gender": "female", "birth_year": 1990,
		"province": "Tehran", "city": "Tehran",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"code": 10, "name": "Milk", "brand": "Kalleh", "weight": 1.0, "price": 5.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/dealers", map[string]interface{}{
		"code": 100, "name": "City Market", "established_year": 2005,
		"owner_first_name": "Reza", "owner_last_name": "Karimi",
		"province": "Tehran", "city": "Tehran",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}
