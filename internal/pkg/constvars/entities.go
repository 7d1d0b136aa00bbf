package constvars

// Entity labels used in success messages.
const (
	EntityMember        = "member"
	EntityMedicalRecord = "medical record"
	EntityAppointment   = "appointment"
	EntityMedication    = "medication"
	EntityGrowthLog     = "growth log"
	EntityVitalLog      = "vital log"
	EntityHomeCareLog   = "home care log"
	EntityHomeCareEntry = "home care entry"
	EntityCaregiverNote = "caregiver note"
	EntityContact       = "contact"
)
