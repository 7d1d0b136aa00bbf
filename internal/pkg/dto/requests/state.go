package requests

type SelectMember struct {
	MemberID string `json:"memberId" validate:"required"`
}

type SetActiveTab struct {
	Tab string `json:"tab" validate:"required,tab"`
}

type SetLanguage struct {
	Language string `json:"language" validate:"required,language"`
}

type NavigateToDetail struct {
	Tab      string `json:"tab" validate:"required,tab"`
	MemberID string `json:"memberId" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
}

type AnalyzeRecord struct {
	Content string `json:"content" validate:"required"`
}

type MediaQuery struct {
	Search   string `validate:"max=200"`
	Category string `validate:"required,media_category"`
}
