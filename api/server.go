/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, echoed in error logs
  2. RealIP:     Client address from X-Forwarded-For / X-Real-IP
  3. Logger:     Request logging
  4. Recoverer:  Panic recovery (500 instead of crash)
  5. CORS:       Cross-origin requests for the React frontend
  6. Rate limit: Per-IP token bucket on /api (off when RateLimit is 0)

ROUTE GROUPS:
  /api/employees/*      Employee records and pay computation
  /api/scenarios/*      Demo scenarios
  /healthz              Liveness
  /*                    Static files (frontend)

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

// RouterOptions configures NewRouter.
type RouterOptions struct {
	AllowedOrigins []string
	StaticDir      string // built frontend; empty or missing serves an index page

	// RateLimit is requests per second per client IP on /api; 0 disables.
	RateLimit float64
	RateBurst int
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		if opts.RateLimit > 0 {
			r.Use(rateLimitByIP(opts.RateLimit, opts.RateBurst))
		}

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
			r.Post("/{id}/compute-pay", h.ComputePay)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
		})
	})

	mountStatic(r, opts.StaticDir)
	return r
}

// mountStatic serves the built React app, falling back to index.html for
// client-side routes.
func mountStatic(r chi.Router, staticDir string) {
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err != nil {
			staticDir = ""
		}
	}

	if staticDir == "" {
		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Payroll Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Payroll Engine API</h1>
<p>The frontend is not built. Set SERVER_STATIC_DIR to the built app.</p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/employees">/api/employees</a> - List employees</li>
<li><a href="/api/scenarios">/api/scenarios</a> - List demo scenarios</li>
</ul>
</body>
</html>`))
		})
		return
	}

	fileServer := http.FileServer(http.Dir(staticDir))
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		fullPath := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			// SPA routing: serve index.html
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
