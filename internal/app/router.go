package app

import (
	"net/http"

	"github.com/heartmarshall/applytrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/applytrack-backend/internal/transport/rest"
)

// newRouter assembles the HTTP routes. Everything under /api requires an
// authenticated user; auth and health endpoints are open.
func newRouter(
	health *rest.HealthHandler,
	auth *rest.AuthHandler,
	apps *rest.ApplicationHandler,
	analytics *rest.AnalyticsHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("POST /auth/refresh", auth.Refresh)
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireUser(h)
	}

	mux.Handle("POST /api/applications", protected(apps.Create))
	mux.Handle("GET /api/applications", protected(apps.List))
	mux.Handle("GET /api/applications/{id}", protected(apps.Get))
	mux.Handle("PUT /api/applications/{id}", protected(apps.Update))
	mux.Handle("DELETE /api/applications/{id}", protected(apps.Delete))
	mux.Handle("POST /api/applications/{id}/status", protected(apps.ChangeStatus))

	mux.Handle("GET /api/analytics", protected(analytics.GetReport))

	return mux
}
