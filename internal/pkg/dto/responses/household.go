package responses

import (
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
)

type State struct {
	UI            models.UIState       `json:"ui"`
	Sync          models.SyncStatus    `json:"sync"`
	CurrentMember *models.FamilyMember `json:"currentMember"`
}

type Dashboard struct {
	Members              []models.FamilyMember         `json:"members"`
	UpcomingAppointments []models.DashboardAppointment `json:"upcomingAppointments"`
	MedicationReminders  []models.DashboardMedication  `json:"medicationReminders"`
}

type MediaVault struct {
	Items []models.MediaItem `json:"items"`
	Total int                `json:"total"`
}

type KidsView struct {
	Member              models.FamilyMember              `json:"member"`
	AgeInMonths         int                              `json:"ageInMonths"`
	GrowthLogs          []models.GrowthLog               `json:"growthLogs"`
	GrowthSeries        models.GrowthSeries              `json:"growthSeries"`
	VaccinationSchedule []constvars.VaccinationMilestone `json:"vaccinationSchedule"`
}

type Profile struct {
	Member      models.FamilyMember    `json:"member"`
	AgeInYears  int                    `json:"ageInYears"`
	AgeCategory string                 `json:"ageCategory"`
	LatestVital models.VitalReading    `json:"latestVital"`
	VitalLogs   []models.VitalLog      `json:"vitalLogs"`
	Records     []models.MedicalRecord `json:"records"`
	Notes       []models.CaregiverNote `json:"notes"`
}

type VaccinationSchedule struct {
	AgeInMonths int                              `json:"ageInMonths"`
	Summary     string                           `json:"summary"`
	Reference   []constvars.VaccinationMilestone `json:"reference"`
}

type RecordAnalysis struct {
	Analysis string `json:"analysis"`
}
