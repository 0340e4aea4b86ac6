// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"tweetline/internal/api/handler"
	"tweetline/internal/metrics"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(socialHandler *handler.SocialHandler, collector *metrics.Collector, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))
	r.Use(collector.Middleware)

	// Plain-text acknowledgement
	r.Get("/", socialHandler.Root)

	r.Post("/sign-up", socialHandler.SignUp)

	r.Route("/tweets", func(r chi.Router) {
		r.Post("/", socialHandler.PostTweet)
		r.Get("/", socialHandler.Timeline)

		// chi allows only one wildcard name per path segment, so {id}
		// carries the author's handle on GET and a tweet id on PUT/DELETE.
		r.Get("/{id}", socialHandler.UserTimeline)
		r.Put("/{id}", socialHandler.UpdateTweet)
		r.Delete("/{id}", socialHandler.DeleteTweet)
	})

	r.Get("/users", socialHandler.ListUsers)

	// Prometheus scrape endpoint
	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	return r
}
