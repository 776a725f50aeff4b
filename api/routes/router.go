package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/threadline/storefront-backend/api/controllers"
	"github.com/threadline/storefront-backend/api/middleware"
	cartsvc "github.com/threadline/storefront-backend/internal/cart"
	"github.com/threadline/storefront-backend/internal/catalog"
	checkoutsvc "github.com/threadline/storefront-backend/internal/checkout"
	orderssvc "github.com/threadline/storefront-backend/internal/orders"
	"github.com/threadline/storefront-backend/pkg/config"
	"github.com/threadline/storefront-backend/pkg/db"
	"github.com/threadline/storefront-backend/pkg/logger"
	"github.com/threadline/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	metricsReg *prometheus.Registry,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	ordersService orderssvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if metricsReg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsReg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Cart, logg))

		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/products/{productId}", controllers.GetProduct(catalogService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/add", controllers.CartAdd(cartService, logg))
			r.Post("/remove", controllers.CartRemove(cartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(checkoutService, logg))
		r.Get("/orders/{orderNumber}", controllers.OrderFetch(ordersService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.AdminAuth(cfg.AdminJWT, logg))

		r.Patch("/orders/{orderNumber}/status", controllers.AdminOrderStatusUpdate(ordersService, logg))
	})

	return r
}
