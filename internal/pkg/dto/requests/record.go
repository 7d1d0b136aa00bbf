package requests

type FileAttachment struct {
	URL  string `json:"url" validate:"required"`
	Name string `json:"name"`
}

type VitalSigns struct {
	Temperature *float64 `json:"temperature" validate:"omitempty,gt=0"`
	Systolic    *float64 `json:"systolic" validate:"omitempty,gt=0"`
	Diastolic   *float64 `json:"diastolic" validate:"omitempty,gt=0"`
	HeartRate   *float64 `json:"heartRate" validate:"omitempty,gt=0"`
	Oxygen      *float64 `json:"oxygen" validate:"omitempty,gt=0,lte=100"`
}

type UpsertMedicalRecord struct {
	Title       string           `json:"title" validate:"required"`
	DateTime    string           `json:"dateTime" validate:"required,datetime_value"`
	Type        string           `json:"type" validate:"required,record_type"`
	Description string           `json:"description"`
	Diagnosis   string           `json:"diagnosis"`
	Saran       string           `json:"saran"`
	Obat        string           `json:"obat"`
	DoctorName  string           `json:"doctorName"`
	Facility    string           `json:"facility"`
	Files       []FileAttachment `json:"files" validate:"dive"`
	VitalSigns
}

type UpsertAppointment struct {
	Title    string `json:"title" validate:"required"`
	DateTime string `json:"dateTime" validate:"required,datetime_value"`
	Doctor   string `json:"doctor"`
	Location string `json:"location"`
	Reminded bool   `json:"reminded"`
}

type UpsertMedication struct {
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
	NextTime     string `json:"nextTime" validate:"omitempty,datetime_value"`
	Active       *bool  `json:"active"`
	FileURL      string `json:"fileUrl"`
	FileName     string `json:"fileName"`
}

type RescheduleMedication struct {
	NextTime string `json:"nextTime" validate:"required,datetime_value"`
}

type UpsertGrowthLog struct {
	DateTime          string   `json:"dateTime" validate:"required,datetime_value"`
	Weight            *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height            *float64 `json:"height" validate:"omitempty,gt=0"`
	HeadCircumference *float64 `json:"headCircumference" validate:"omitempty,gt=0"`
}

type UpsertVitalLog struct {
	DateTime string `json:"dateTime" validate:"omitempty,datetime_value"`
	VitalSigns
}

type UpsertHomeCareLog struct {
	Title  string `json:"title" validate:"required"`
	Active *bool  `json:"active"`
}

type UpsertHomeCareEntry struct {
	DateTime string           `json:"dateTime" validate:"omitempty,datetime_value"`
	Symptom  string           `json:"symptom" validate:"required"`
	Note     string           `json:"note"`
	Files    []FileAttachment `json:"files" validate:"dive"`
	VitalSigns
}

type UpsertCaregiverNote struct {
	Text     string `json:"text" validate:"required"`
	Type     string `json:"type" validate:"required,note_type"`
	DateTime string `json:"dateTime" validate:"omitempty,datetime_value"`
}
