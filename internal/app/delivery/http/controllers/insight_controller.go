package controllers

import (
	"net/http"
	"time"

	"family-health-service/internal/app/contracts"
	"family-health-service/internal/app/services/core/views"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
	"family-health-service/internal/pkg/dto/responses"
	"family-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// InsightController answers in the language currently set in the UI state.
// Insight failures never become error responses; the client already
// degrades them to empty cards or a fixed message.
type InsightController struct {
	Log      *zap.Logger
	Store    contracts.HouseholdStore
	Client   contracts.InsightClient
	Reporter contracts.InsightReporter
	now      func() time.Time
}

func NewInsightController(logger *zap.Logger, store contracts.HouseholdStore, client contracts.InsightClient, reporter contracts.InsightReporter) *InsightController {
	return &InsightController{
		Log:      logger,
		Store:    store,
		Client:   client,
		Reporter: reporter,
		now:      time.Now,
	}
}

func (ctrl *InsightController) GetMemberInsights(w http.ResponseWriter, r *http.Request) {
	const operation = "InsightController.GetMemberInsights"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	growthLogs := views.FilterByMember(ctrl.Store.Snapshot().GrowthLogs, member.ID)
	insights := ctrl.Client.HealthInsights(r.Context(), member, ctrl.Store.UIState().Language, growthLogs)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetInsightsSuccessMessage, insights)
}

func (ctrl *InsightController) GetFamilyReport(w http.ResponseWriter, r *http.Request) {
	const operation = "InsightController.GetFamilyReport"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	report := ctrl.Reporter.FamilyReport(r.Context(), ctrl.Store.Snapshot().Members, ctrl.Store.UIState().Language)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetInsightsSuccessMessage, report)
}

func (ctrl *InsightController) AnalyzeRecord(w http.ResponseWriter, r *http.Request) {
	const operation = "InsightController.AnalyzeRecord"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.AnalyzeRecord)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	analysis := ctrl.Client.AnalyzeMedicalRecord(r.Context(), request.Content, ctrl.Store.UIState().Language)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.AnalyzeRecordSuccessMessage, responses.RecordAnalysis{
		Analysis: analysis,
	})
}

func (ctrl *InsightController) GetVaccinationSchedule(w http.ResponseWriter, r *http.Request) {
	const operation = "InsightController.GetVaccinationSchedule"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	ageInMonths, _ := utils.AgeInMonths(member.BirthDate, ctrl.now())
	ctrl.Log.Debug(operation+" resolved member age",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAgeInMonthsKey, ageInMonths),
	)

	summary := ctrl.Client.VaccinationSchedule(r.Context(), ageInMonths, ctrl.Store.UIState().Language)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetInsightsSuccessMessage, responses.VaccinationSchedule{
		AgeInMonths: ageInMonths,
		Summary:     summary,
		Reference:   constvars.VaccinationScheduleIDAI,
	})
}
