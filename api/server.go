/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for the onboarding UI

ROUTE GROUPS:
  /api/differentials/*   Catalog, estimates, saved calculations, display
  /api/compensation/*    Monthly aggregation
  /api/scenarios/*       Demo data loaders
  /api/health            Liveness
  /*                     Static files (frontend)

STATIC FILE SERVING:
  Serves the built UI from web/dist/ when present, falling back to
  index.html for client-side routing.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/differentials", func(r chi.Router) {
			r.Route("/config", func(r chi.Router) {
				r.Get("/", h.ListTypeConfigs)
				r.Get("/{type}", h.GetTypeConfig)
				r.Put("/{type}", h.PutTypeConfig)
				r.Delete("/{type}", h.DeleteTypeConfig)
				r.Get("/{type}/frequency-options", h.GetFrequencyOptions)
			})
			r.Get("/types", h.ListTypes)

			r.Post("/preview", h.Preview)
			r.Post("/calculate", h.Calculate)
			r.Get("/calculations", h.ListCalculations)
			r.Get("/calculations/{id}", h.GetCalculation)
			r.Get("/calculations/{id}/monthly", h.GetCalculationMonthly)

			r.Post("/format", h.FormatDifferentials)
		})

		r.Route("/compensation", func(r chi.Router) {
			r.Post("/monthly", h.MonthlyCompensation)
		})

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
		})
	})

	staticDir := "./web/dist"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		exe, _ := os.Executable()
		staticDir = filepath.Join(filepath.Dir(exe), "web", "dist")
	}

	if _, err := os.Stat(staticDir); err == nil {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			fullPath := filepath.Join(staticDir, r.URL.Path)
			if _, err := os.Stat(fullPath); os.IsNotExist(err) {
				// SPA routing: serve index.html
				http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
				return
			}
			fileServer.ServeHTTP(w, r)
		})
	} else {
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Nurse Pay Differential Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Nurse Pay Differential Engine API</h1>
<p>The frontend is not built. Build it into <code>web/dist</code> to serve it here.</p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/differentials/config">/api/differentials/config</a> - Differential catalog</li>
<li><a href="/api/differentials/types">/api/differentials/types</a> - Types by category</li>
<li><a href="/api/differentials/calculations">/api/differentials/calculations</a> - Saved calculations</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Demo scenarios</li>
</ul>
</body>
</html>`))
		})
	}

	return r
}
