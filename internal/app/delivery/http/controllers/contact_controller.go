package controllers

import (
	"net/http"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
	"family-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContactController serves the household-wide emergency contacts; they
// belong to no member.
type ContactController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
}

func NewContactController(logger *zap.Logger, store contracts.HouseholdStore) *ContactController {
	return &ContactController{
		Log:   logger,
		Store: store,
	}
}

func (ctrl *ContactController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "ContactController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityContact), ctrl.Store.Snapshot().Contacts)
}

func (ctrl *ContactController) CreateContact(w http.ResponseWriter, r *http.Request) {
	const operation = "ContactController.CreateContact"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertContact)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeUpsertContactRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	contact := ctrl.Store.AddContact(r.Context(), utils.BuildHealthContact(request, ""))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityContact), contact)
}

func (ctrl *ContactController) UpdateContact(w http.ResponseWriter, r *http.Request) {
	const operation = "ContactController.UpdateContact"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertContact)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeUpsertContactRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	contactID := chi.URLParam(r, constvars.URLParamContactID)
	contact, err := ctrl.Store.UpdateContact(r.Context(), utils.BuildHealthContact(request, contactID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityContact), contact)
}

func (ctrl *ContactController) DeleteContact(w http.ResponseWriter, r *http.Request) {
	const operation = "ContactController.DeleteContact"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteContact(r.Context(), chi.URLParam(r, constvars.URLParamContactID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityContact), nil)
}
