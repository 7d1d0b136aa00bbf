package routers

import (
	"family-health-service/internal/app/delivery/http/controllers"
	"family-health-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachViewRoutes(router chi.Router, middlewares *middlewares.Middlewares, viewController *controllers.ViewController) {
	router.Get("/vitals/latest", viewController.GetLatestVital)
	router.Get("/growth-chart", viewController.GetGrowthChart)
	router.Get("/media", viewController.GetMediaVault)
	router.Get("/kids", viewController.GetKidsView)
	router.Get("/profile", viewController.GetProfile)
}

func attachInsightRoutes(router chi.Router, middlewares *middlewares.Middlewares, insightController *controllers.InsightController) {
	router.Get("/member", insightController.GetMemberInsights)
	router.Get("/report", insightController.GetFamilyReport)
	router.Post("/analyze-record", insightController.AnalyzeRecord)
	router.Get("/vaccination-schedule", insightController.GetVaccinationSchedule)
}

func attachUploadRoutes(router chi.Router, middlewares *middlewares.Middlewares, uploadController *controllers.UploadController) {
	router.Post("/", uploadController.UploadFile)
}
