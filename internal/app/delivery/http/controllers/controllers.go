package controllers

import (
	"family-health-service/internal/app/contracts"

	"go.uber.org/zap"
)

// Controllers bundles every HTTP controller built on one household store.
type Controllers struct {
	State         *StateController
	Member        *MemberController
	Contact       *ContactController
	MedicalRecord *MedicalRecordController
	Appointment   *AppointmentController
	Medication    *MedicationController
	GrowthLog     *GrowthLogController
	VitalLog      *VitalLogController
	HomeCare      *HomeCareController
	CaregiverNote *CaregiverNoteController
	View          *ViewController
	Insight       *InsightController
	Upload        *UploadController
}

func NewControllers(
	logger *zap.Logger,
	store contracts.HouseholdStore,
	insightClient contracts.InsightClient,
	insightReporter contracts.InsightReporter,
	uploader contracts.FileUploader,
	uploadMaxBytes int64,
) *Controllers {
	return &Controllers{
		State:         NewStateController(logger, store),
		Member:        NewMemberController(logger, store),
		Contact:       NewContactController(logger, store),
		MedicalRecord: NewMedicalRecordController(logger, store),
		Appointment:   NewAppointmentController(logger, store),
		Medication:    NewMedicationController(logger, store),
		GrowthLog:     NewGrowthLogController(logger, store),
		VitalLog:      NewVitalLogController(logger, store),
		HomeCare:      NewHomeCareController(logger, store),
		CaregiverNote: NewCaregiverNoteController(logger, store),
		View:          NewViewController(logger, store),
		Insight:       NewInsightController(logger, store, insightClient, insightReporter),
		Upload:        NewUploadController(logger, uploader, uploadMaxBytes),
	}
}
