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

type GrowthLogController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
}

func NewGrowthLogController(logger *zap.Logger, store contracts.HouseholdStore) *GrowthLogController {
	return &GrowthLogController{
		Log:   logger,
		Store: store,
	}
}

func (ctrl *GrowthLogController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "GrowthLogController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	growthLogs := views.FilterByMember(ctrl.Store.Snapshot().GrowthLogs, member.ID)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityGrowthLog), growthLogs)
}

func (ctrl *GrowthLogController) CreateGrowthLog(w http.ResponseWriter, r *http.Request) {
	const operation = "GrowthLogController.CreateGrowthLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertGrowthLog)
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

	growthLog := ctrl.Store.AddGrowthLog(r.Context(), utils.BuildGrowthLog(request, "", member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityGrowthLog), growthLog)
}

func (ctrl *GrowthLogController) UpdateGrowthLog(w http.ResponseWriter, r *http.Request) {
	const operation = "GrowthLogController.UpdateGrowthLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertGrowthLog)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindGrowthLog(chi.URLParam(r, constvars.URLParamLogID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}

	growthLog, err := ctrl.Store.UpdateGrowthLog(r.Context(), utils.BuildGrowthLog(request, existing.ID, existing.MemberID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityGrowthLog), growthLog)
}

func (ctrl *GrowthLogController) DeleteGrowthLog(w http.ResponseWriter, r *http.Request) {
	const operation = "GrowthLogController.DeleteGrowthLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteGrowthLog(r.Context(), chi.URLParam(r, constvars.URLParamLogID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityGrowthLog), nil)
}
