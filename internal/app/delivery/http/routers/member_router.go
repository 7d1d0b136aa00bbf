package routers

import (
	"family-health-service/internal/app/delivery/http/controllers"
	"family-health-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMemberRoutes(router chi.Router, middlewares *middlewares.Middlewares, memberController *controllers.MemberController) {
	router.Get("/", memberController.FindAll)
	router.Post("/", memberController.CreateMember)
	router.Put("/{member_id}", memberController.UpdateMember)
	router.Delete("/{member_id}", memberController.DeleteMember)
}

func attachContactRoutes(router chi.Router, middlewares *middlewares.Middlewares, contactController *controllers.ContactController) {
	router.Get("/", contactController.FindAll)
	router.Post("/", contactController.CreateContact)
	router.Put("/{contact_id}", contactController.UpdateContact)
	router.Delete("/{contact_id}", contactController.DeleteContact)
}
