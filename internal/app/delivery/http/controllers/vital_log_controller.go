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

type VitalLogController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
	now   func() time.Time
}

func NewVitalLogController(logger *zap.Logger, store contracts.HouseholdStore) *VitalLogController {
	return &VitalLogController{
		Log:   logger,
		Store: store,
		now:   time.Now,
	}
}

// FindAll returns the current member's vital history, newest first.
func (ctrl *VitalLogController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "VitalLogController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	vitalLogs := views.VitalLogsNewestFirst(views.FilterByMember(ctrl.Store.Snapshot().VitalLogs, member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityVitalLog), vitalLogs)
}

func (ctrl *VitalLogController) CreateVitalLog(w http.ResponseWriter, r *http.Request) {
	const operation = "VitalLogController.CreateVitalLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertVitalLog)
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

	vitalLog := ctrl.Store.AddVitalLog(r.Context(), utils.BuildVitalLog(request, "", member.ID, ctrl.now()))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityVitalLog), vitalLog)
}

func (ctrl *VitalLogController) UpdateVitalLog(w http.ResponseWriter, r *http.Request) {
	const operation = "VitalLogController.UpdateVitalLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertVitalLog)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindVitalLog(chi.URLParam(r, constvars.URLParamLogID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	if request.DateTime == "" {
		request.DateTime = existing.DateTime
	}

	vitalLog, err := ctrl.Store.UpdateVitalLog(r.Context(), utils.BuildVitalLog(request, existing.ID, existing.MemberID, ctrl.now()))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityVitalLog), vitalLog)
}

func (ctrl *VitalLogController) DeleteVitalLog(w http.ResponseWriter, r *http.Request) {
	const operation = "VitalLogController.DeleteVitalLog"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteVitalLog(r.Context(), chi.URLParam(r, constvars.URLParamLogID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityVitalLog), nil)
}
