package models

type HealthInsight struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
	Type    string `json:"type"`
}

type MemberInsightReport struct {
	Member   FamilyMember    `json:"member"`
	Insights []HealthInsight `json:"insights"`
}
