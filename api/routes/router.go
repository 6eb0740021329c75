package routes

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/guitarshop-backend/api/controllers"
	cartcontrollers "github.com/angelmondragon/guitarshop-backend/api/controllers/cart"
	inventorycontrollers "github.com/angelmondragon/guitarshop-backend/api/controllers/inventory"
	"github.com/angelmondragon/guitarshop-backend/api/middleware"
	"github.com/angelmondragon/guitarshop-backend/internal/cart"
	"github.com/angelmondragon/guitarshop-backend/internal/inventory"
	"github.com/angelmondragon/guitarshop-backend/pkg/config"
	"github.com/angelmondragon/guitarshop-backend/pkg/db"
	"github.com/angelmondragon/guitarshop-backend/pkg/logger"
	"github.com/angelmondragon/guitarshop-backend/pkg/metrics"
	"github.com/angelmondragon/guitarshop-backend/pkg/redis"
	"github.com/angelmondragon/guitarshop-backend/web"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	inventoryService inventory.Service,
	cartService cart.Service,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	static fs.FS,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	// a nil *redis.Client must not leak into the interfaces below
	readiness := map[string]controllers.Pinger{"database": dbP}
	var idempotencyStore redis.IdempotencyStore
	if redisClient != nil {
		readiness["redis"] = redisClient
		idempotencyStore = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, cfg.Redis.IdempotencyTTL, logg))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", inventorycontrollers.InventoryList(inventoryService, logg))
			r.Post("/", inventorycontrollers.InventoryCreate(inventoryService, logg))
			r.Get("/{id}", inventorycontrollers.InventoryGet(inventoryService, logg))
			r.Put("/{id}", inventorycontrollers.InventoryUpdate(inventoryService, logg))
			r.Delete("/{id}", inventorycontrollers.InventoryDelete(inventoryService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(cartService, logg))
			r.Post("/", cartcontrollers.CartAdd(cartService, logg))
			r.Delete("/", cartcontrollers.CartEmpty(cartService, logg))
			r.Put("/{cartId}", cartcontrollers.CartUpdate(cartService, logg))
			r.Delete("/{cartId}", cartcontrollers.CartRemove(cartService, logg))
		})
	})

	if static != nil {
		r.Handle("/images/*", web.Images(static))
		r.Handle("/*", http.FileServer(http.FS(static)))
	}

	return r
}
