package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/teron131/Visual-Prompting/internal/http/handlers"
	"github.com/teron131/Visual-Prompting/internal/middleware"
)

// NewRouter wires the HTTP surface: health probe, prompt generation and the
// enum listing, behind request-id, logging, CORS and per-IP rate limiting.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Log),
		middleware.CORS(app.Config.CORSAllowedOrigins),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", app.Generate)
		r.Post("/generate-with-image", app.GenerateWithImage)
		r.Get("/enums", app.Enums)
	})

	return r
}
