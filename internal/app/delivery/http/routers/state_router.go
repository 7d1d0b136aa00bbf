package routers

import (
	"family-health-service/internal/app/delivery/http/controllers"
	"family-health-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStateRoutes(router chi.Router, middlewares *middlewares.Middlewares, stateController *controllers.StateController) {
	router.Get("/", stateController.GetState)
	router.Put("/selected-member", stateController.SelectMember)
	router.Put("/active-tab", stateController.SetActiveTab)
	router.Put("/language", stateController.SetLanguage)
	router.Post("/navigate", stateController.NavigateToDetail)
}

func attachSyncRoutes(router chi.Router, middlewares *middlewares.Middlewares, stateController *controllers.StateController) {
	router.Post("/", stateController.TriggerSync)
	router.Post("/refetch", stateController.Refetch)
}
