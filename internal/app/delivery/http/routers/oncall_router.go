package routers

import (
	"medplan-service/internal/app/delivery/http/controllers"
	"medplan-service/internal/app/delivery/http/middlewares"
	"medplan-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachOnCallRoutes(router chi.Router, middlewares *middlewares.Middlewares, onCallController *controllers.OnCallController) {
	router.With(middlewares.Authenticate).Get("/", onCallController.GetOnCallStaff)
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRole(models.RoleAdministrator),
	).Put("/{staffID}", onCallController.AddOnCallStaff)
	router.With(
		middlewares.Authenticate,
		middlewares.RequireRole(models.RoleAdministrator),
	).Delete("/{staffID}", onCallController.RemoveOnCallStaff)
}
