package requests

type Allergy struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Reaction string `json:"reaction"`
	PhotoURL string `json:"photoUrl"`
}

type UpsertMember struct {
	Name             string    `json:"name" validate:"required,max=120"`
	Relation         string    `json:"relation" validate:"required,relation"`
	BirthDate        string    `json:"birthDate" validate:"required,datetime_value"`
	BloodType        string    `json:"bloodType" validate:"max=5"`
	Allergies        []Allergy `json:"allergies"`
	PhotoURL         string    `json:"photoUrl"`
	NIK              string    `json:"nik" validate:"omitempty,numeric,max=16"`
	InsuranceNumber  string    `json:"insuranceNumber"`
	InsuranceCardURL string    `json:"insuranceCardUrl"`
}

type UpsertContact struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required,contact_type"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
	GmapsURL string `json:"gmapsUrl" validate:"omitempty,url"`
}
