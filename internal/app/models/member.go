package models

type FileAttachment struct {
	URL  string `json:"url" bson:"url"`
	Name string `json:"name" bson:"name"`
}

type AllergyDetail struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Reaction string `json:"reaction" bson:"reaction"`
	PhotoURL string `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
}

// FamilyMember flags IsElderly and IsChild are computed when the member is
// written and are never refreshed on read.
type FamilyMember struct {
	ID               string          `json:"id" bson:"id"`
	Name             string          `json:"name" bson:"name"`
	Relation         string          `json:"relation" bson:"relation"`
	BirthDate        string          `json:"birthDate" bson:"birthDate"`
	BloodType        string          `json:"bloodType" bson:"bloodType"`
	Allergies        []AllergyDetail `json:"allergies" bson:"allergies"`
	PhotoURL         string          `json:"photoUrl" bson:"photoUrl"`
	IsElderly        bool            `json:"isElderly" bson:"isElderly"`
	IsChild          bool            `json:"isChild" bson:"isChild"`
	NIK              string          `json:"nik,omitempty" bson:"nik,omitempty"`
	InsuranceNumber  string          `json:"insuranceNumber,omitempty" bson:"insuranceNumber,omitempty"`
	InsuranceCardURL string          `json:"insuranceCardUrl,omitempty" bson:"insuranceCardUrl,omitempty"`
}

func (m FamilyMember) GetID() string { return m.ID }

func (m FamilyMember) Clone() FamilyMember {
	m.Allergies = cloneSlice(m.Allergies)
	return m
}

type HealthContact struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Type     string `json:"type" bson:"type"`
	Phone    string `json:"phone" bson:"phone"`
	Address  string `json:"address" bson:"address"`
	GmapsURL string `json:"gmapsUrl,omitempty" bson:"gmapsUrl,omitempty"`
}

func (c HealthContact) GetID() string { return c.ID }

func (c HealthContact) Clone() HealthContact { return c }

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
