package controllers

import (
	"net/http"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
	"family-health-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type StateController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
}

func NewStateController(logger *zap.Logger, store contracts.HouseholdStore) *StateController {
	return &StateController{
		Log:   logger,
		Store: store,
	}
}

func (ctrl *StateController) currentState() responses.State {
	state := responses.State{
		UI:   ctrl.Store.UIState(),
		Sync: ctrl.Store.SyncStatus(),
	}
	if member, err := ctrl.Store.CurrentMember(); err == nil {
		state.CurrentMember = &member
	}
	return state
}

func (ctrl *StateController) GetState(w http.ResponseWriter, r *http.Request) {
	const operation = "StateController.GetState"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetStateSuccessMessage, ctrl.currentState())
}

func (ctrl *StateController) SelectMember(w http.ResponseWriter, r *http.Request) {
	const operation = "StateController.SelectMember"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.SelectMember)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	if err := ctrl.Store.SelectMember(r.Context(), request.MemberID); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.UpdateStateSuccessMessage, ctrl.currentState())
}

func (ctrl *StateController) SetActiveTab(w http.ResponseWriter, r *http.Request) {
	const operation = "StateController.SetActiveTab"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.SetActiveTab)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctrl.Store.SetActiveTab(r.Context(), request.Tab)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.UpdateStateSuccessMessage, ctrl.currentState())
}

func (ctrl *StateController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	const operation = "StateController.SetLanguage"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.SetLanguage)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctrl.Store.SetLanguage(r.Context(), request.Language)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.UpdateStateSuccessMessage, ctrl.currentState())
}

func (ctrl *StateController) NavigateToDetail(w http.ResponseWriter, r *http.Request) {
	const operation = "StateController.NavigateToDetail"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.NavigateToDetail)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	if err := ctrl.Store.NavigateToDetail(r.Context(), request.Tab, request.MemberID, request.ItemID); err != nil {
		respondError(ctrl.Log, w, operation, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.UpdateStateSuccessMessage, ctrl.currentState())
}

// TriggerSync pushes the current snapshot as-is. A sync already in flight
// means this request is dropped; the response still reports the status.
func (ctrl *StateController) TriggerSync(w http.ResponseWriter, r *http.Request) {
	const operation = "StateController.TriggerSync"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	started := ctrl.Store.TriggerSync(r.Context(), models.SyncOverrides{})
	ctrl.Log.Info(operation+" sync requested",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("started", started),
	)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusAccepted, constvars.SyncRequestedSuccessMessage, ctrl.currentState())
}

func (ctrl *StateController) Refetch(w http.ResponseWriter, r *http.Request) {
	const operation = "StateController.Refetch"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	source := ctrl.Store.Hydrate(r.Context())
	ctrl.Log.Info(operation+" hydration finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHydrateSourceKey, source),
	)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.RefetchSuccessMessage, ctrl.currentState())
}
