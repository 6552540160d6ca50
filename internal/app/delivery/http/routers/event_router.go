package routers

import (
	"medplan-service/internal/app/delivery/http/controllers"
	"medplan-service/internal/app/delivery/http/middlewares"
	"medplan-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachEventRoutes(router chi.Router, middlewares *middlewares.Middlewares, eventController *controllers.EventController) {
	router.With(middlewares.Authenticate).Post("/", eventController.CreateEvent)
	router.With(middlewares.Authenticate).Delete("/{eventID}", eventController.CancelEvent)
}

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController, eventController *controllers.EventController) {
	router.With(middlewares.Authenticate).Get("/{staffID}/events", eventController.GetEventsByStaff)
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRole(models.RoleAdministrator),
	).Put("/{staffID}/active", authController.SetStaffActive)
}
