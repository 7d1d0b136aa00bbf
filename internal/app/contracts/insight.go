package contracts

import (
	"context"

	"family-health-service/internal/app/models"
)

// InsightClient never fails: card requests degrade to an empty slice and
// prose requests to a fixed failure string.
type InsightClient interface {
	HealthInsights(ctx context.Context, member models.FamilyMember, language string, growthLogs []models.GrowthLog) []models.HealthInsight
	AnalyzeMedicalRecord(ctx context.Context, content, language string) string
	VaccinationSchedule(ctx context.Context, ageInMonths int, language string) string
}

type InsightReporter interface {
	FamilyReport(ctx context.Context, members []models.FamilyMember, language string) []models.MemberInsightReport
}
