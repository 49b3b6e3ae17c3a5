package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kavehsh/shopping_system/internal/config"
	"github.com/kavehsh/shopping_system/internal/delivery/http/handler"
	"github.com/kavehsh/shopping_system/internal/delivery/http/middleware"
	"github.com/kavehsh/shopping_system/internal/delivery/http/response"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	customerHandler *handler.CustomerHandler
	productHandler  *handler.ProductHandler
	dealerHandler   *handler.DealerHandler
	purchaseHandler *handler.PurchaseHandler
	logger          *logger.Logger
	cfg             *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	dealerHandler *handler.DealerHandler,
	purchaseHandler *handler.PurchaseHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		customerHandler: customerHandler,
		productHandler:  productHandler,
		dealerHandler:   dealerHandler,
		purchaseHandler: purchaseHandler,
		logger:          log,
		cfg:             cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Timeout(rt.cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", rt.customerHandler.Create)
			r.Get("/", rt.customerHandler.List)
			r.Get("/by-national-code/{code}", rt.customerHandler.GetByNationalCode)
			r.Get("/{id}", rt.customerHandler.GetByID)
			r.Delete("/{id}", rt.customerHandler.Delete)
			r.Get("/{id}/total", rt.purchaseHandler.TotalByCustomer)
			r.Get("/{id}/products", rt.purchaseHandler.ProductsByCustomer)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", rt.productHandler.Create)
			r.Get("/", rt.productHandler.List)
			r.Get("/{code}", rt.productHandler.GetByCode)
			r.Put("/{code}/price", rt.productHandler.UpdatePrice)
			r.Delete("/{code}", rt.productHandler.Delete)
			r.Get("/{code}/customers", rt.purchaseHandler.CustomersByProduct)
			r.Get("/{code}/sales", rt.purchaseHandler.SalesByProduct)
			r.Get("/{code}/dealer-count", rt.purchaseHandler.DealerCountByProduct)
		})

		r.Route("/dealers", func(r chi.Router) {
			r.Post("/", rt.dealerHandler.Create)
			r.Get("/", rt.dealerHandler.List)
			r.Get("/sales", rt.purchaseHandler.DealerSalesReport)
			r.Get("/{code}", rt.dealerHandler.GetByCode)
			r.Delete("/{code}", rt.dealerHandler.Delete)
			r.Get("/{code}/products", rt.purchaseHandler.ProductsByDealer)
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Post("/", rt.purchaseHandler.Buy)
			r.Get("/{customerID}/{productCode}/{dealerCode}", rt.purchaseHandler.GetByKey)
		})
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
