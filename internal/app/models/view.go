package models

// VitalReading is a display projection; unavailable fields hold "--".
type VitalReading struct {
	Available   bool   `json:"available"`
	DateTime    string `json:"dateTime"`
	HeartRate   string `json:"heartRate"`
	Systolic    string `json:"systolic"`
	Diastolic   string `json:"diastolic"`
	Temperature string `json:"temperature"`
	Oxygen      string `json:"oxygen"`
}

// GrowthSeries exposes weight and height as parallel series on one date axis.
// A nil point is a gap in that series only.
type GrowthSeries struct {
	Dates  []string   `json:"dates"`
	Weight []*float64 `json:"weight"`
	Height []*float64 `json:"height"`
}

type DashboardAppointment struct {
	Appointment
	MemberName string `json:"memberName"`
}

type DashboardMedication struct {
	Medication
	MemberName string `json:"memberName"`
}
