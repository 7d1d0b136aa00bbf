package models

// MediaItem is one entry of the unified media stream. Each source kind keeps
// only the fields that exist for it.
type MediaItem interface {
	MediaID() string
	MediaType() string
	MediaDate() string
	SearchableText() []string
}

type MedicalRecordMedia struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	ParentID    string `json:"parentId"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	URL         string `json:"url"`
	FileName    string `json:"fileName,omitempty"`
	SubCategory string `json:"subCategory"`
	Diagnosis   string `json:"diagnosis,omitempty"`
	Doctor      string `json:"doctor,omitempty"`
	SubCount    int    `json:"subCount"`
	CurrentIdx  int    `json:"currentIdx"`
}

func (m MedicalRecordMedia) MediaID() string   { return m.ID }
func (m MedicalRecordMedia) MediaType() string { return m.Type }
func (m MedicalRecordMedia) MediaDate() string { return m.Date }
func (m MedicalRecordMedia) SearchableText() []string {
	return []string{m.Title, m.Diagnosis, m.FileName}
}

type MedicationMedia struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	ParentID     string `json:"parentId"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	URL          string `json:"url"`
	FileName     string `json:"fileName,omitempty"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

func (m MedicationMedia) MediaID() string   { return m.ID }
func (m MedicationMedia) MediaType() string { return m.Type }
func (m MedicationMedia) MediaDate() string { return m.Date }
func (m MedicationMedia) SearchableText() []string {
	return []string{m.Title, m.FileName}
}

type HomeCareMedia struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	ParentID   string `json:"parentId"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	URL        string `json:"url"`
	FileName   string `json:"fileName,omitempty"`
	Note       string `json:"note,omitempty"`
	SubCount   int    `json:"subCount"`
	CurrentIdx int    `json:"currentIdx"`
}

func (m HomeCareMedia) MediaID() string   { return m.ID }
func (m HomeCareMedia) MediaType() string { return m.Type }
func (m HomeCareMedia) MediaDate() string { return m.Date }
func (m HomeCareMedia) SearchableText() []string {
	return []string{m.Title, m.FileName}
}
