package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the route owners of the API
type Handlers struct {
	Cars      *CarHandler
	Favorites *FavoriteHandler
	Health    *HealthHandler
	Metrics   *Metrics
}

func NewHandlers(cars *CarHandler, favorites *FavoriteHandler, health *HealthHandler, metrics *Metrics) *Handlers {
	return &Handlers{Cars: cars, Favorites: favorites, Health: health, Metrics: metrics}
}

// NewRouter builds the mux router with every route registered. metricsHandler
// serves /metrics when non-nil.
func NewRouter(h *Handlers, metricsHandler http.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(h.Metrics.Middleware)

	h.Health.RegisterRoutes(router)
	h.Cars.RegisterRoutes(router)
	h.Favorites.RegisterRoutes(router)
	RegisterSwaggerDocs(router)

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Message: "Route not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
	})
	return router
}
