package constvars

const (
	URLParamMemberID      = "member_id"
	URLParamRecordID      = "record_id"
	URLParamAppointmentID = "appointment_id"
	URLParamMedicationID  = "medication_id"
	URLParamLogID         = "log_id"
	URLParamEntryID       = "entry_id"
	URLParamNoteID        = "note_id"
	URLParamContactID     = "contact_id"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamCategory = "category"
)

const (
	FormFieldFile = "file"
)
