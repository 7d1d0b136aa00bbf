package contracts

import (
	"context"

	"family-health-service/internal/app/models"
)

// HouseholdStore is the single owner of the household state. Mutations
// update local state immediately and then request a background sync.
type HouseholdStore interface {
	Hydrate(ctx context.Context) string
	TriggerSync(ctx context.Context, overrides models.SyncOverrides) bool
	WaitForSync()

	Snapshot() models.Snapshot
	UIState() models.UIState
	SyncStatus() models.SyncStatus
	CurrentMember() (models.FamilyMember, error)
	SelectMember(ctx context.Context, memberID string) error
	SetActiveTab(ctx context.Context, tab string)
	SetLanguage(ctx context.Context, language string)
	NavigateToDetail(ctx context.Context, tab, memberID, itemID string) error

	AddMember(ctx context.Context, member models.FamilyMember) models.FamilyMember
	UpdateMember(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error)
	DeleteMember(ctx context.Context, id string) error
	FindMember(id string) (models.FamilyMember, error)

	AddMedicalRecord(ctx context.Context, medicalRecord models.MedicalRecord) models.MedicalRecord
	UpdateMedicalRecord(ctx context.Context, medicalRecord models.MedicalRecord) (models.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, id string) error
	FindMedicalRecord(id string) (models.MedicalRecord, error)

	AddAppointment(ctx context.Context, appointment models.Appointment) models.Appointment
	UpdateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	FindAppointment(id string) (models.Appointment, error)

	AddMedication(ctx context.Context, medication models.Medication) models.Medication
	UpdateMedication(ctx context.Context, medication models.Medication) (models.Medication, error)
	DeleteMedication(ctx context.Context, id string) error
	FindMedication(id string) (models.Medication, error)

	AddGrowthLog(ctx context.Context, growthLog models.GrowthLog) models.GrowthLog
	UpdateGrowthLog(ctx context.Context, growthLog models.GrowthLog) (models.GrowthLog, error)
	DeleteGrowthLog(ctx context.Context, id string) error
	FindGrowthLog(id string) (models.GrowthLog, error)

	AddVitalLog(ctx context.Context, vitalLog models.VitalLog) models.VitalLog
	UpdateVitalLog(ctx context.Context, vitalLog models.VitalLog) (models.VitalLog, error)
	DeleteVitalLog(ctx context.Context, id string) error
	FindVitalLog(id string) (models.VitalLog, error)

	AddHomeCareLog(ctx context.Context, homeCareLog models.HomeCareLog) models.HomeCareLog
	UpdateHomeCareLog(ctx context.Context, homeCareLog models.HomeCareLog) (models.HomeCareLog, error)
	DeleteHomeCareLog(ctx context.Context, id string) error
	FindHomeCareLog(id string) (models.HomeCareLog, error)

	AddCaregiverNote(ctx context.Context, caregiverNote models.CaregiverNote) models.CaregiverNote
	UpdateCaregiverNote(ctx context.Context, caregiverNote models.CaregiverNote) (models.CaregiverNote, error)
	DeleteCaregiverNote(ctx context.Context, id string) error
	FindCaregiverNote(id string) (models.CaregiverNote, error)

	AddContact(ctx context.Context, contact models.HealthContact) models.HealthContact
	UpdateContact(ctx context.Context, contact models.HealthContact) (models.HealthContact, error)
	DeleteContact(ctx context.Context, id string) error
	FindContact(id string) (models.HealthContact, error)

	RescheduleMedication(ctx context.Context, id, nextTime string) (models.Medication, error)
	AddHomeCareEntry(ctx context.Context, logID string, entry models.HomeCareEntry) (models.HomeCareLog, error)
	UpdateHomeCareEntry(ctx context.Context, logID string, entry models.HomeCareEntry) (models.HomeCareLog, error)
	RemoveHomeCareEntry(ctx context.Context, logID, entryID string) (models.HomeCareLog, error)
	FindHomeCareEntry(logID, entryID string) (models.HomeCareEntry, error)
	CloseHomeCareLog(ctx context.Context, logID string) (models.HomeCareLog, error)
}
