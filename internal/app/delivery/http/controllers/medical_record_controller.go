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

type MedicalRecordController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
}

func NewMedicalRecordController(logger *zap.Logger, store contracts.HouseholdStore) *MedicalRecordController {
	return &MedicalRecordController{
		Log:   logger,
		Store: store,
	}
}

// FindAll lists the current member's records, newest first, optionally
// narrowed by the search query.
func (ctrl *MedicalRecordController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicalRecordController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	search := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSearch))
	records := views.SearchRecords(views.FilterByMember(ctrl.Store.Snapshot().Records, member.ID), search)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityMedicalRecord), records)
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicalRecordController.CreateMedicalRecord"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertMedicalRecord)
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

	record := ctrl.Store.AddMedicalRecord(r.Context(), utils.BuildMedicalRecord(request, "", member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityMedicalRecord), record)
}

func (ctrl *MedicalRecordController) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicalRecordController.UpdateMedicalRecord"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertMedicalRecord)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindMedicalRecord(chi.URLParam(r, constvars.URLParamRecordID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}

	record, err := ctrl.Store.UpdateMedicalRecord(r.Context(), utils.BuildMedicalRecord(request, existing.ID, existing.MemberID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityMedicalRecord), record)
}

func (ctrl *MedicalRecordController) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	const operation = "MedicalRecordController.DeleteMedicalRecord"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteMedicalRecord(r.Context(), chi.URLParam(r, constvars.URLParamRecordID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityMedicalRecord), nil)
}
