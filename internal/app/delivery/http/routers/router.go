package routers

import (
	"fmt"
	"strings"

	"family-health-service/internal/app/config"
	"family-health-service/internal/app/delivery/http/controllers"
	"family-health-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *controllers.Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.CorsAllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachRoutes(r, middlewares, controllers)
		})
	})
}

func attachRoutes(r chi.Router, middlewares *middlewares.Middlewares, controllers *controllers.Controllers) {
	r.Route("/state", func(r chi.Router) {
		attachStateRoutes(r, middlewares, controllers.State)
	})

	r.Route("/sync", func(r chi.Router) {
		attachSyncRoutes(r, middlewares, controllers.State)
	})

	r.Route("/members", func(r chi.Router) {
		attachMemberRoutes(r, middlewares, controllers.Member)
	})

	r.Route("/contacts", func(r chi.Router) {
		attachContactRoutes(r, middlewares, controllers.Contact)
	})

	r.Route("/records", func(r chi.Router) {
		attachMedicalRecordRoutes(r, middlewares, controllers.MedicalRecord)
	})

	r.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, middlewares, controllers.Appointment)
	})

	r.Route("/medications", func(r chi.Router) {
		attachMedicationRoutes(r, middlewares, controllers.Medication)
	})

	r.Route("/growth-logs", func(r chi.Router) {
		attachGrowthLogRoutes(r, middlewares, controllers.GrowthLog)
	})

	r.Route("/vital-logs", func(r chi.Router) {
		attachVitalLogRoutes(r, middlewares, controllers.VitalLog)
	})

	r.Route("/home-care-logs", func(r chi.Router) {
		attachHomeCareRoutes(r, middlewares, controllers.HomeCare)
	})

	r.Route("/notes", func(r chi.Router) {
		attachCaregiverNoteRoutes(r, middlewares, controllers.CaregiverNote)
	})

	r.Get("/dashboard", controllers.View.GetDashboard)

	r.Route("/views", func(r chi.Router) {
		attachViewRoutes(r, middlewares, controllers.View)
	})

	r.Route("/insights", func(r chi.Router) {
		attachInsightRoutes(r, middlewares, controllers.Insight)
	})

	r.Route("/uploads", func(r chi.Router) {
		attachUploadRoutes(r, middlewares, controllers.Upload)
	})
}

func allowedOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
