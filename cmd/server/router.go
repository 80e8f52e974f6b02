package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskpulse/internal/api"
	apiMiddleware "github.com/phrazzld/taskpulse/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewCORS(app.config.CORS.AllowedOrigins))

	summaryHandler := api.NewSummaryHandler(app.summary, app.logger)

	r.Get("/task-summary", summaryHandler.GetTaskSummary)
	r.Get("/health", api.Health)

	return r
}
