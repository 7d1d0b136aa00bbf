package insights

import (
	"context"
	"testing"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFamilyReporter_FamilyReport(t *testing.T) {
	members := []models.FamilyMember{{ID: "1", Name: "Budi"}, {ID: "2", Name: "Siti"}}

	t.Run("One Report Per Member In Order", func(t *testing.T) {
		client := new(mockInsightClient)
		client.On("HealthInsights", mock.Anything, members[0], constvars.LanguageID, []models.GrowthLog(nil)).
			Return([]models.HealthInsight{{Title: "a"}})
		client.On("HealthInsights", mock.Anything, members[1], constvars.LanguageID, []models.GrowthLog(nil)).
			Return([]models.HealthInsight{})
		reporter := NewFamilyReporter(client, 0, zap.NewNop())

		reports := reporter.FamilyReport(context.Background(), members, constvars.LanguageID)

		require.Len(t, reports, 2)
		assert.Equal(t, "1", reports[0].Member.ID)
		assert.Len(t, reports[0].Insights, 1)
		assert.Equal(t, "2", reports[1].Member.ID)
		assert.Empty(t, reports[1].Insights)
	})

	t.Run("Cancelled Context Degrades To Empty Insights", func(t *testing.T) {
		client := new(mockInsightClient)
		reporter := NewFamilyReporter(client, 0.001, zap.NewNop())
		reporter.Limiter.Allow()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reports := reporter.FamilyReport(ctx, members, constvars.LanguageID)

		require.Len(t, reports, 2)
		assert.Empty(t, reports[0].Insights)
		assert.NotNil(t, reports[1].Insights)
		client.AssertNotCalled(t, "HealthInsights", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
