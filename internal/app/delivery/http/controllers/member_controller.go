package controllers

import (
	"net/http"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
	"family-health-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MemberController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
	now   func() time.Time
}

func NewMemberController(logger *zap.Logger, store contracts.HouseholdStore) *MemberController {
	return &MemberController{
		Log:   logger,
		Store: store,
		now:   time.Now,
	}
}

func (ctrl *MemberController) FindAll(w http.ResponseWriter, r *http.Request) {
	const operation = "MemberController.FindAll"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	members := ctrl.Store.Snapshot().Members
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.FindEntitiesSuccessMessage, constvars.EntityMember), members)
}

func (ctrl *MemberController) CreateMember(w http.ResponseWriter, r *http.Request) {
	const operation = "MemberController.CreateMember"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertMember)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeUpsertMemberRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	member := ctrl.Store.AddMember(r.Context(), utils.BuildFamilyMember(request, nil, ctrl.now()))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusCreated, entityMessage(constvars.CreateEntitySuccessMessage, constvars.EntityMember), member)
}

func (ctrl *MemberController) UpdateMember(w http.ResponseWriter, r *http.Request) {
	const operation = "MemberController.UpdateMember"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpsertMember)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeUpsertMemberRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	existing, err := ctrl.Store.FindMember(chi.URLParam(r, constvars.URLParamMemberID))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}

	member, err := ctrl.Store.UpdateMember(r.Context(), utils.BuildFamilyMember(request, &existing, ctrl.now()))
	if err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.UpdateEntitySuccessMessage, constvars.EntityMember), member)
}

func (ctrl *MemberController) DeleteMember(w http.ResponseWriter, r *http.Request) {
	const operation = "MemberController.DeleteMember"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteMember(r.Context(), chi.URLParam(r, constvars.URLParamMemberID)); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, entityMessage(constvars.DeleteEntitySuccessMessage, constvars.EntityMember), nil)
}
