package models

// VitalSigns is flattened into every record kind that carries a reading.
type VitalSigns struct {
	Temperature *float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Systolic    *float64 `json:"systolic,omitempty" bson:"systolic,omitempty"`
	Diastolic   *float64 `json:"diastolic,omitempty" bson:"diastolic,omitempty"`
	HeartRate   *float64 `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	Oxygen      *float64 `json:"oxygen,omitempty" bson:"oxygen,omitempty"`
}

type MedicalRecord struct {
	ID          string           `json:"id" bson:"id"`
	MemberID    string           `json:"memberId" bson:"memberId"`
	Title       string           `json:"title" bson:"title"`
	DateTime    string           `json:"dateTime" bson:"dateTime"`
	Type        string           `json:"type" bson:"type"`
	Description string           `json:"description" bson:"description"`
	Diagnosis   string           `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Saran       string           `json:"saran,omitempty" bson:"saran,omitempty"`
	Obat        string           `json:"obat,omitempty" bson:"obat,omitempty"`
	DoctorName  string           `json:"doctorName,omitempty" bson:"doctorName,omitempty"`
	Facility    string           `json:"facility,omitempty" bson:"facility,omitempty"`
	Files       []FileAttachment `json:"files" bson:"files"`
	VitalSigns  `bson:",inline"`
}

func (r MedicalRecord) GetID() string       { return r.ID }
func (r MedicalRecord) GetMemberID() string { return r.MemberID }

func (r MedicalRecord) Clone() MedicalRecord {
	r.Files = cloneSlice(r.Files)
	return r
}

type Appointment struct {
	ID       string `json:"id" bson:"id"`
	MemberID string `json:"memberId" bson:"memberId"`
	Title    string `json:"title" bson:"title"`
	DateTime string `json:"dateTime" bson:"dateTime"`
	Doctor   string `json:"doctor" bson:"doctor"`
	Location string `json:"location" bson:"location"`
	Reminded bool   `json:"reminded" bson:"reminded"`
}

func (a Appointment) GetID() string       { return a.ID }
func (a Appointment) GetMemberID() string { return a.MemberID }
func (a Appointment) Clone() Appointment  { return a }

type Medication struct {
	ID           string `json:"id" bson:"id"`
	MemberID     string `json:"memberId" bson:"memberId"`
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Frequency    string `json:"frequency" bson:"frequency"`
	Instructions string `json:"instructions" bson:"instructions"`
	NextTime     string `json:"nextTime" bson:"nextTime"`
	Active       bool   `json:"active" bson:"active"`
	FileURL      string `json:"fileUrl,omitempty" bson:"fileUrl,omitempty"`
	FileName     string `json:"fileName,omitempty" bson:"fileName,omitempty"`
}

func (m Medication) GetID() string       { return m.ID }
func (m Medication) GetMemberID() string { return m.MemberID }
func (m Medication) Clone() Medication   { return m }

type GrowthLog struct {
	ID                string   `json:"id" bson:"id"`
	MemberID          string   `json:"memberId" bson:"memberId"`
	DateTime          string   `json:"dateTime" bson:"dateTime"`
	Weight            *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	Height            *float64 `json:"height,omitempty" bson:"height,omitempty"`
	HeadCircumference *float64 `json:"headCircumference,omitempty" bson:"headCircumference,omitempty"`
}

func (g GrowthLog) GetID() string       { return g.ID }
func (g GrowthLog) GetMemberID() string { return g.MemberID }
func (g GrowthLog) Clone() GrowthLog    { return g }

type VitalLog struct {
	ID         string `json:"id" bson:"id"`
	MemberID   string `json:"memberId" bson:"memberId"`
	DateTime   string `json:"dateTime" bson:"dateTime"`
	VitalSigns `bson:",inline"`
}

func (v VitalLog) GetID() string       { return v.ID }
func (v VitalLog) GetMemberID() string { return v.MemberID }
func (v VitalLog) Clone() VitalLog     { return v }

type HomeCareEntry struct {
	ID         string           `json:"id" bson:"id"`
	DateTime   string           `json:"dateTime" bson:"dateTime"`
	Symptom    string           `json:"symptom" bson:"symptom"`
	Note       string           `json:"note" bson:"note"`
	Files      []FileAttachment `json:"files,omitempty" bson:"files,omitempty"`
	VitalSigns `bson:",inline"`
}

func (e HomeCareEntry) GetID() string { return e.ID }

type HomeCareLog struct {
	ID       string          `json:"id" bson:"id"`
	MemberID string          `json:"memberId" bson:"memberId"`
	Title    string          `json:"title" bson:"title"`
	Entries  []HomeCareEntry `json:"entries" bson:"entries"`
	Active   bool            `json:"active" bson:"active"`
}

func (l HomeCareLog) GetID() string       { return l.ID }
func (l HomeCareLog) GetMemberID() string { return l.MemberID }

func (l HomeCareLog) Clone() HomeCareLog {
	if l.Entries == nil {
		return l
	}
	entries := make([]HomeCareEntry, len(l.Entries))
	for i, entry := range l.Entries {
		entry.Files = cloneSlice(entry.Files)
		entries[i] = entry
	}
	l.Entries = entries
	return l
}

type CaregiverNote struct {
	ID       string `json:"id" bson:"id"`
	MemberID string `json:"memberId" bson:"memberId"`
	Date     string `json:"date" bson:"date"`
	DateTime string `json:"dateTime" bson:"dateTime"`
	Text     string `json:"text" bson:"text"`
	Type     string `json:"type" bson:"type"`
}

func (n CaregiverNote) GetID() string        { return n.ID }
func (n CaregiverNote) GetMemberID() string  { return n.MemberID }
func (n CaregiverNote) Clone() CaregiverNote { return n }
