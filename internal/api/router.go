package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/imagestore"
	"github.com/erazemk/tastelog/internal/store"
)

// NewRouter creates the API router with all endpoints registered. The
// database handle and image store are shared by every handler.
func NewRouter(database *db.DB, images *imagestore.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(LoggingMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)

	origins := &OriginsHandler{Origins: store.NewOrigins(database)}
	beans := &BeansHandler{Beans: store.NewBeans(database)}
	shops := &ShopsHandler{Shops: store.NewShops(database)}
	drippers := &DrippersHandler{Drippers: store.NewDrippers(database)}
	filters := &FiltersHandler{Filters: store.NewFilters(database)}
	tastings := &TastingsHandler{Tastings: store.NewTastings(database)}
	imgs := &ImagesHandler{Images: images}
	health := &HealthHandler{DB: database}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Check)

		r.Get("/origins", origins.List)
		r.Post("/origins", origins.Create)

		r.Get("/bean-masters", beans.List)
		r.Post("/bean-masters", beans.Create)

		r.Get("/shops", shops.List)
		r.Post("/shops", shops.Create)

		r.Get("/drippers", drippers.List)
		r.Post("/drippers", drippers.Create)
		r.Delete("/drippers/{id}", drippers.Delete)

		r.Get("/filters", filters.List)
		r.Post("/filters", filters.Create)

		r.Get("/tastings", tastings.List)
		r.Post("/tastings", tastings.Create)

		r.Post("/uploads/{category}", imgs.Upload)
		r.Get("/images/*", imgs.Serve)
		r.Head("/images/*", imgs.Serve)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, r, apperr.NotFound("見つかりません"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusMethodNotAllowed, &apperr.Error{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "許可されていないメソッドです",
		})
	})

	return r
}
