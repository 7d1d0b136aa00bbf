package models

import "time"

type UIState struct {
	SelectedMemberID string  `json:"selectedMemberId"`
	ActiveTab        string  `json:"activeTab"`
	Language         string  `json:"language"`
	InitialOpenID    *string `json:"initialOpenId"`
}

type SyncStatus struct {
	IsLoading bool       `json:"isLoading"`
	IsSyncing bool       `json:"isSyncing"`
	LastSync  *time.Time `json:"lastSync"`
}

// SyncEvent is published for every sync attempt.
type SyncEvent struct {
	EventID     string    `json:"eventId"`
	Outcome     string    `json:"outcome"`
	MemberCount int       `json:"memberCount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type UploadResult struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
}
