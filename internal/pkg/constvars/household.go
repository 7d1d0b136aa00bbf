package constvars

const (
	RelationFather      = "Father"
	RelationMother      = "Mother"
	RelationChild       = "Child"
	RelationGrandparent = "Grandparent"
	RelationOther       = "Other"
)

const (
	RecordTypeLab           = "Lab"
	RecordTypeConsultation  = "Consultation"
	RecordTypeVaccination   = "Vaccination"
	RecordTypePrescription  = "Prescription"
	RecordTypeClinicalPhoto = "Clinical Photo"
	RecordTypeImaging       = "Imaging"
	RecordTypeOther         = "Other"
)

const (
	NoteTypeMobility = "mobility"
	NoteTypeDiet     = "diet"
	NoteTypeSleep    = "sleep"
	NoteTypeGeneral  = "general"
)

const (
	ContactTypeHospital = "Hospital"
	ContactTypeClinic   = "Clinic"
	ContactTypeDoctor   = "Doctor"
	ContactTypePharmacy = "Pharmacy"
)

const (
	LanguageID = "ID"
	LanguageEN = "EN"
)

const (
	TabDashboard   = "dashboard"
	TabMembers     = "members"
	TabRecords     = "records"
	TabMedications = "meds"
	TabHomeCare    = "homecare"
	TabSchedule    = "schedule"
	TabVault       = "vault"
	TabKids        = "kids"
	TabElderly     = "elderly"
	TabContacts    = "contacts"
)

var Tabs = []string{
	TabDashboard,
	TabMembers,
	TabRecords,
	TabMedications,
	TabHomeCare,
	TabSchedule,
	TabVault,
	TabKids,
	TabElderly,
	TabContacts,
}

const (
	MediaCategoryAll           = "all"
	MediaCategoryMedicalRecord = "medical_record"
	MediaCategoryMedication    = "medication"
	MediaCategoryHomeCare      = "home_care"
)

// MediaSentinelDate replaces the timestamp of medication media so that it sorts first.
const MediaSentinelDate = "Treatment Photo"

const (
	InsightSourceAI   = "AI"
	InsightSourceWHO  = "WHO"
	InsightSourceIDAI = "IDAI"

	InsightTypeInfo    = "info"
	InsightTypeWarning = "warning"
	InsightTypeSuccess = "success"
)

const (
	AgeCategoryElderly = "elderly"
	AgeCategoryChild   = "child"
	AgeCategoryAdult   = "adult"

	ElderlyMinimumAge = 60
	ChildMaximumAge   = 12
)

const (
	DashboardUpcomingLimit = 4
	VitalUnavailable       = "--"
	PhotoPlaceholderFormat = "https://picsum.photos/seed/%s/200"
)

const (
	SyncOutcomeSuccess = "success"
	SyncOutcomeFailed  = "failed"
	SyncOutcomeSkipped = "skipped"
)

const (
	HydrateSourceRemote = "remote"
	HydrateSourceSeed   = "seed"
	HydrateSourceLocal  = "local"
)

const (
	InsightAnalyzeFailedMessage    = "Analisa gagal."
	InsightScheduleFailedMessage   = "Gagal mengambil jadwal terbaru."
	InsightAnalyzeFailedMessageEN  = "Analysis failed."
	InsightScheduleFailedMessageEN = "Failed to fetch the latest schedule."
)

// VaccinationMilestone is one row of the IDAI immunization reference table.
type VaccinationMilestone struct {
	Age      string   `json:"age"`
	Vaccines []string `json:"vaccines"`
}

var VaccinationScheduleIDAI = []VaccinationMilestone{
	{Age: "Lahir", Vaccines: []string{"Hepatitis B (HB-0)", "Polio 0"}},
	{Age: "1 Bulan", Vaccines: []string{"BCG"}},
	{Age: "2 Bulan", Vaccines: []string{"DPT-HB-Hib 1", "Polio 1", "PCV 1", "Rotavirus 1"}},
	{Age: "3 Bulan", Vaccines: []string{"DPT-HB-Hib 2", "Polio 2", "Rotavirus 2"}},
	{Age: "4 Bulan", Vaccines: []string{"DPT-HB-Hib 3", "Polio 3 (IPV 1)", "PCV 2", "Rotavirus 3 (Pentavalen)"}},
	{Age: "6 Bulan", Vaccines: []string{"PCV 3", "Influenza 1"}},
	{Age: "9 Bulan", Vaccines: []string{"MR 1"}},
	{Age: "12 Bulan", Vaccines: []string{"PCV 4 (Booster)", "Varisela 1", "Hepatitis A 1"}},
	{Age: "15 Bulan", Vaccines: []string{"DPT-HB-Hib 4 (Booster)"}},
	{Age: "18 Bulan", Vaccines: []string{"MR 2", "Polio 4"}},
	{Age: "24 Bulan", Vaccines: []string{"Hepatitis A 2", "Tifoid 1"}},
	{Age: "5-7 Tahun", Vaccines: []string{"MR 3", "DT (Booster)", "Polio 5"}},
	{Age: "10-12 Tahun", Vaccines: []string{"Td (Booster)", "HPV 1", "HPV 2 (setelah 6-12 bulan)"}},
	{Age: "18 Tahun", Vaccines: []string{"Td (Booster tiap 10 thn)"}},
}
