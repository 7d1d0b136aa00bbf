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

// ViewController exposes the read-only projections. Everything except the
// dashboard is scoped to the selected member.
type ViewController struct {
	Log   *zap.Logger
	Store contracts.HouseholdStore
	now   func() time.Time
}

func NewViewController(logger *zap.Logger, store contracts.HouseholdStore) *ViewController {
	return &ViewController{
		Log:   logger,
		Store: store,
		now:   time.Now,
	}
}

func (ctrl *ViewController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	const operation = "ViewController.GetDashboard"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	snapshot := ctrl.Store.Snapshot()
	appointments, meds := views.Dashboard(snapshot.Members, snapshot.Appointments, snapshot.Meds, ctrl.now())
	response := responses.Dashboard{
		Members:              snapshot.Members,
		UpcomingAppointments: appointments,
		MedicationReminders:  meds,
	}
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetDashboardSuccessMessage, response)
}

func (ctrl *ViewController) GetLatestVital(w http.ResponseWriter, r *http.Request) {
	const operation = "ViewController.GetLatestVital"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	reading := views.LatestVital(views.FilterByMember(ctrl.Store.Snapshot().VitalLogs, member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetViewSuccessMessage, reading)
}

func (ctrl *ViewController) GetGrowthChart(w http.ResponseWriter, r *http.Request) {
	const operation = "ViewController.GetGrowthChart"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	series := views.GrowthChart(views.FilterByMember(ctrl.Store.Snapshot().GrowthLogs, member.ID))
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetViewSuccessMessage, series)
}

func (ctrl *ViewController) GetMediaVault(w http.ResponseWriter, r *http.Request) {
	const operation = "ViewController.GetMediaVault"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	query := &requests.MediaQuery{
		Search:   r.URL.Query().Get(constvars.URLQueryParamSearch),
		Category: r.URL.Query().Get(constvars.URLQueryParamCategory),
	}
	utils.SanitizeMediaQuery(query)
	if !validateRequest(ctrl.Log, w, operation, requestID, query) {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	snapshot := ctrl.Store.Snapshot()
	stream := views.MediaVault(
		views.FilterByMember(snapshot.Records, member.ID),
		views.FilterByMember(snapshot.Meds, member.ID),
		views.FilterByMember(snapshot.HomeCareLogs, member.ID),
	)
	items := views.FilterMedia(stream, query.Search, query.Category)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetViewSuccessMessage, responses.MediaVault{
		Items: items,
		Total: len(stream),
	})
}

func (ctrl *ViewController) GetKidsView(w http.ResponseWriter, r *http.Request) {
	const operation = "ViewController.GetKidsView"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	ageInMonths, _ := utils.AgeInMonths(member.BirthDate, ctrl.now())
	growthLogs := views.FilterByMember(ctrl.Store.Snapshot().GrowthLogs, member.ID)
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetViewSuccessMessage, responses.KidsView{
		Member:              member,
		AgeInMonths:         ageInMonths,
		GrowthLogs:          growthLogs,
		GrowthSeries:        views.GrowthChart(growthLogs),
		VaccinationSchedule: constvars.VaccinationScheduleIDAI,
	})
}

func (ctrl *ViewController) GetProfile(w http.ResponseWriter, r *http.Request) {
	const operation = "ViewController.GetProfile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	member, ok := currentMember(ctrl.Log, w, ctrl.Store, operation, requestID)
	if !ok {
		return
	}

	snapshot := ctrl.Store.Snapshot()
	vitalLogs := views.FilterByMember(snapshot.VitalLogs, member.ID)
	ageInYears, _ := utils.AgeInYears(member.BirthDate, ctrl.now())
	respondSuccess(ctrl.Log, w, operation, requestID, constvars.StatusOK, constvars.GetViewSuccessMessage, responses.Profile{
		Member:      member,
		AgeInYears:  ageInYears,
		AgeCategory: views.AgeCategory(member),
		LatestVital: views.LatestVital(vitalLogs),
		VitalLogs:   views.VitalLogsNewestFirst(vitalLogs),
		Records:     views.SearchRecords(views.FilterByMember(snapshot.Records, member.ID), ""),
		Notes:       views.NotesNewestFirst(views.FilterByMember(snapshot.Notes, member.ID)),
	})
}
