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

// HomeCareController serves home-care episodes and their entries. Every
// entry change answers with the whole rewritten log.
type HomeCareController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
	now   func() time.Time
}

func NewHomeCareController(logger *zap.Logger, store contracts.HouseholdStore) *HomeCareController {
	return &HomeCareController{
		Log:   logger,
		Store: store,
		now:   time.Now,
	}
}

func (ctrl *HomeCareController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	logs := views.FilterByMember(ctrl.Store.Snapshot().HomeCareLogs, member.ID)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityHomeCareLog), logs)
}

func (ctrl *HomeCareController) CreateHomeCareLog(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.CreateHomeCareLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertHomeCareLog)
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

	log := ctrl.Store.AddHomeCareLog(r.Context(), utils.BuildHomeCareLog(request, nil, member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityHomeCareLog), log)
}

func (ctrl *HomeCareController) UpdateHomeCareLog(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.UpdateHomeCareLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertHomeCareLog)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindHomeCareLog(chi.URLParam(r, constvars.URLParamLogID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}

	log, err := ctrl.Store.UpdateHomeCareLog(r.Context(), utils.BuildHomeCareLog(request, &existing, existing.MemberID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityHomeCareLog), log)
}

func (ctrl *HomeCareController) DeleteHomeCareLog(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.DeleteHomeCareLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteHomeCareLog(r.Context(), chi.URLParam(r, constvars.URLParamLogID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityHomeCareLog), nil)
}

func (ctrl *HomeCareController) CloseHomeCareLog(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.CloseHomeCareLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	log, err := ctrl.Store.CloseHomeCareLog(r.Context(), chi.URLParam(r, constvars.URLParamLogID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.CloseHomeCareSuccessMessage, log)
}

func (ctrl *HomeCareController) AddEntry(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.AddEntry"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertHomeCareEntry)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	entry := utils.BuildHomeCareEntry(request, nil, ctrl.now())
	log, err := ctrl.Store.AddHomeCareEntry(r.Context(), chi.URLParam(r, constvars.URLParamLogID), entry)
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityHomeCareEntry), log)
}

func (ctrl *HomeCareController) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.UpdateEntry"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertHomeCareEntry)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	logID := chi.URLParam(r, constvars.URLParamLogID)
	existing, err := ctrl.Store.FindHomeCareEntry(logID, chi.URLParam(r, constvars.URLParamEntryID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}

	log, err := ctrl.Store.UpdateHomeCareEntry(r.Context(), logID, utils.BuildHomeCareEntry(request, &existing, ctrl.now()))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityHomeCareEntry), log)
}

func (ctrl *HomeCareController) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	const operation = "HomeCareController.RemoveEntry"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	log, err := ctrl.Store.RemoveHomeCareEntry(r.Context(), chi.URLParam(r, constvars.URLParamLogID), chi.URLParam(r, constvars.URLParamEntryID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityHomeCareEntry), log)
}
