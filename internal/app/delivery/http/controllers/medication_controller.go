package controllers

import (
	"net/http"
	"strings"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/services/core/views"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
	"family-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicationController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
}

func NewMedicationController(logger *zap.Logger, store contracts.HouseholdStore) *MedicationController {
	return &MedicationController{
		Log:   logger,
		Store: store,
	}
}

func (ctrl *MedicationController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicationController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	search := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSearch))
	meds := views.SearchMedications(views.FilterByMember(ctrl.Store.Snapshot().Meds, member.ID), search)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityMedication), meds)
}

func (ctrl *MedicationController) CreateMedication(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicationController.CreateMedication"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertMedication)
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

	medication := ctrl.Store.AddMedication(r.Context(), utils.BuildMedication(request, nil, member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityMedication), medication)
}

func (ctrl *MedicationController) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicationController.UpdateMedication"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertMedication)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindMedication(chi.URLParam(r, constvars.URLParamMedicationID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}

	medication, err := ctrl.Store.UpdateMedication(r.Context(), utils.BuildMedication(request, &existing, existing.MemberID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityMedication), medication)
}

func (ctrl *MedicationController) RescheduleMedication(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicationController.RescheduleMedication"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.RescheduleMedication)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	medication, err := ctrl.Store.RescheduleMedication(r.Context(), chi.URLParam(r, constvars.URLParamMedicationID), request.NextTime)
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.RescheduleMedSuccessMessage, medication)
}

func (ctrl *MedicationController) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicationController.DeleteMedication"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteMedication(r.Context(), chi.URLParam(r, constvars.URLParamMedicationID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityMedication), nil)
}
