package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskpulse/internal/api"
	apiMiddleware "github.com/phrazzld/taskpulse/internal/api/middleware"
)

// setupRouter creates the control API router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewCORS(app.config.CORS.AllowedOrigins))

	reminderHandler := api.NewReminderHandler(app.engine, app.logger)

	r.Post("/add_task", reminderHandler.AddTask)
	r.Get("/get_tasks", reminderHandler.GetTasks)
	r.Get("/status", reminderHandler.GetStatus)
	r.Get("/health", api.Health)

	return r
}
