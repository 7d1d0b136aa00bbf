package routers

import (
	"family-health-service/internal/app/delivery/http/controllers"
	"family-health-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachGrowthLogRoutes(router chi.Router, middlewares *middlewares.Middlewares, growthLogController *controllers.GrowthLogController) {
	router.Get("/", growthLogController.FindAll)
	router.Post("/", growthLogController.CreateGrowthLog)
	router.Put("/{log_id}", growthLogController.UpdateGrowthLog)
	router.Delete("/{log_id}", growthLogController.DeleteGrowthLog)
}

func attachVitalLogRoutes(router chi.Router, middlewares *middlewares.Middlewares, vitalLogController *controllers.VitalLogController) {
	router.Get("/", vitalLogController.FindAll)
	router.Post("/", vitalLogController.CreateVitalLog)
	router.Put("/{log_id}", vitalLogController.UpdateVitalLog)
	router.Delete("/{log_id}", vitalLogController.DeleteVitalLog)
}

func attachHomeCareRoutes(router chi.Router, middlewares *middlewares.Middlewares, homeCareController *controllers.HomeCareController) {
	router.Get("/", homeCareController.FindAll)
	router.Post("/", homeCareController.CreateHomeCareLog)
	router.Put("/{log_id}", homeCareController.UpdateHomeCareLog)
	router.Delete("/{log_id}", homeCareController.DeleteHomeCareLog)
	router.Post("/{log_id}/close", homeCareController.CloseHomeCareLog)
	router.Post("/{log_id}/entries", homeCareController.AddEntry)
	router.Put("/{log_id}/entries/{entry_id}", homeCareController.UpdateEntry)
	router.Delete("/{log_id}/entries/{entry_id}", homeCareController.RemoveEntry)
}
