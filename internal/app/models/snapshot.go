package models

// Snapshot is the full household document exchanged with the remote store.
type Snapshot struct {
	Members      []FamilyMember  `json:"members" bson:"members"`
	Records      []MedicalRecord `json:"records" bson:"records"`
	Appointments []Appointment   `json:"appointments" bson:"appointments"`
	Meds         []Medication    `json:"meds" bson:"meds"`
	GrowthLogs   []GrowthLog     `json:"growthLogs" bson:"growthLogs"`
	VitalLogs    []VitalLog      `json:"vitalLogs" bson:"vitalLogs"`
	HomeCareLogs []HomeCareLog   `json:"homeCareLogs" bson:"homeCareLogs"`
	Notes        []CaregiverNote `json:"notes" bson:"notes"`
	Contacts     []HealthContact `json:"contacts" bson:"contacts"`
}

// Normalize replaces missing collections with empty ones.
func (s *Snapshot) Normalize() {
	if s.Members == nil {
		s.Members = []FamilyMember{}
	}
	if s.Records == nil {
		s.Records = []MedicalRecord{}
	}
	if s.Appointments == nil {
		s.Appointments = []Appointment{}
	}
	if s.Meds == nil {
		s.Meds = []Medication{}
	}
	if s.GrowthLogs == nil {
		s.GrowthLogs = []GrowthLog{}
	}
	if s.VitalLogs == nil {
		s.VitalLogs = []VitalLog{}
	}
	if s.HomeCareLogs == nil {
		s.HomeCareLogs = []HomeCareLog{}
	}
	if s.Notes == nil {
		s.Notes = []CaregiverNote{}
	}
	if s.Contacts == nil {
		s.Contacts = []HealthContact{}
	}
}

// Clone returns a deep copy so the receiver can keep changing independently.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Members:      CloneAll(s.Members),
		Records:      CloneAll(s.Records),
		Appointments: CloneAll(s.Appointments),
		Meds:         CloneAll(s.Meds),
		GrowthLogs:   CloneAll(s.GrowthLogs),
		VitalLogs:    CloneAll(s.VitalLogs),
		HomeCareLogs: CloneAll(s.HomeCareLogs),
		Notes:        CloneAll(s.Notes),
		Contacts:     CloneAll(s.Contacts),
	}
}

// SyncOverrides carries the collections a mutation just replaced. A nil field
// means "use the current collection".
type SyncOverrides struct {
	Members      *[]FamilyMember
	Records      *[]MedicalRecord
	Appointments *[]Appointment
	Meds         *[]Medication
	GrowthLogs   *[]GrowthLog
	VitalLogs    *[]VitalLog
	HomeCareLogs *[]HomeCareLog
	Notes        *[]CaregiverNote
	Contacts     *[]HealthContact
}

// MergeOver lays the overrides on top of base and returns the result.
func (o SyncOverrides) MergeOver(base Snapshot) Snapshot {
	merged := base
	if o.Members != nil {
		merged.Members = *o.Members
	}
	if o.Records != nil {
		merged.Records = *o.Records
	}
	if o.Appointments != nil {
		merged.Appointments = *o.Appointments
	}
	if o.Meds != nil {
		merged.Meds = *o.Meds
	}
	if o.GrowthLogs != nil {
		merged.GrowthLogs = *o.GrowthLogs
	}
	if o.VitalLogs != nil {
		merged.VitalLogs = *o.VitalLogs
	}
	if o.HomeCareLogs != nil {
		merged.HomeCareLogs = *o.HomeCareLogs
	}
	if o.Notes != nil {
		merged.Notes = *o.Notes
	}
	if o.Contacts != nil {
		merged.Contacts = *o.Contacts
	}
	return merged
}

// SnapshotDocument is how the snapshot is laid out in Mongo.
type SnapshotDocument struct {
	ID        string `bson:"_id"`
	Snapshot  `bson:",inline"`
	TimeModel `bson:",inline"`
}

type Identifiable interface {
	GetID() string
}

type MemberScoped interface {
	GetMemberID() string
}

type Cloneable[T any] interface {
	Clone() T
}

func CloneAll[T Cloneable[T]](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, item := range in {
		out[i] = item.Clone()
	}
	return out
}
