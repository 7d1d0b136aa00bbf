package controllers

import (
	"net/http"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/services/core/views"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
	"family-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
}

func NewAppointmentController(logger *zap.Logger, store contracts.HouseholdStore) *AppointmentController {
	return &AppointmentController{
		Log:   logger,
		Store: store,
	}
}

// FindAll returns the current member's schedule, earliest first.
func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "AppointmentController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	appointments := views.AppointmentSchedule(views.FilterByMember(ctrl.Store.Snapshot().Appointments, member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityAppointment), appointments)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	const operation = "AppointmentController.CreateAppointment"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertAppointment)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	appointment := ctrl.Store.AddAppointment(r.Context(), utils.BuildAppointment(request, "", member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityAppointment), appointment)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	const operation = "AppointmentController.UpdateAppointment"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertAppointment)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindAppointment(chi.URLParam(r, constvars.URLParamAppointmentID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}

	appointment, err := ctrl.Store.UpdateAppointment(r.Context(), utils.BuildAppointment(request, existing.ID, existing.MemberID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityAppointment), appointment)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	const operation = "AppointmentController.DeleteAppointment"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteAppointment(r.Context(), chi.URLParam(r, constvars.URLParamAppointmentID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityAppointment), nil)
}
