package controllers

import (
	"net/http"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/services/core/views"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
	"family-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CaregiverNoteController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
	now   func() time.Time
}

func NewCaregiverNoteController(logger *zap.Logger, store contracts.HouseholdStore) *CaregiverNoteController {
	return &CaregiverNoteController{
		Log:   logger,
		Store: store,
		now:   time.Now,
	}
}

func (ctrl *CaregiverNoteController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "CaregiverNoteController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	notes := views.NotesNewestFirst(views.FilterByMember(ctrl.Store.Snapshot().Notes, member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityCaregiverNote), notes)
}

func (ctrl *CaregiverNoteController) CreateCaregiverNote(w http.ResponseWriter, r *http.Request) {
	const operation = "CaregiverNoteController.CreateCaregiverNote"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertCaregiverNote)
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

	note := ctrl.Store.AddCaregiverNote(r.Context(), utils.BuildCaregiverNote(request, "", member.ID, ctrl.now()))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityCaregiverNote), note)
}

func (ctrl *CaregiverNoteController) UpdateCaregiverNote(w http.ResponseWriter, r *http.Request) {
	const operation = "CaregiverNoteController.UpdateCaregiverNote"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertCaregiverNote)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindCaregiverNote(chi.URLParam(r, constvars.URLParamNoteID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	if request.DateTime == "" {
		request.DateTime = existing.DateTime
	}

	note, err := ctrl.Store.UpdateCaregiverNote(r.Context(), utils.BuildCaregiverNote(request, existing.ID, existing.MemberID, ctrl.now()))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityCaregiverNote), note)
}

func (ctrl *CaregiverNoteController) DeleteCaregiverNote(w http.ResponseWriter, r *http.Request) {
	const operation = "CaregiverNoteController.DeleteCaregiverNote"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteCaregiverNote(r.Context(), chi.URLParam(r, constvars.URLParamNoteID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityCaregiverNote), nil)
}
