package views

import (
	"testing"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func TestFilterByMember(t *testing.T) {
	records := []models.MedicalRecord{
		{ID: "r1", MemberID: "1"},
		{ID: "r2", MemberID: "2"},
		{ID: "r3", MemberID: "1"},
	}

	t.Run("Keeps Only The Member", func(t *testing.T) {
		filtered := FilterByMember(records, "1")

		require.Len(t, filtered, 2)
		assert.Equal(t, "r1", filtered[0].ID)
		assert.Equal(t, "r3", filtered[1].ID)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := FilterByMember(records, "1")
		second := FilterByMember(records, "1")

		assert.Equal(t, first, second)
		assert.Len(t, records, 3, "input must not change")
	})

	t.Run("Orphans Are Invisible", func(t *testing.T) {
		assert.Empty(t, FilterByMember(records, "missing"))
	})
}

func TestUpcomingAppointments(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)

	t.Run("Stable For Equal Times And Excludes Past", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a", DateTime: "2024-06-02T10:00"},
			{ID: "b", DateTime: "2024-06-02T10:00"},
			{ID: "c", DateTime: "2024-05-31T10:00"},
		}

		upcoming := UpcomingAppointments(appointments, now)

		require.Len(t, upcoming, 2)
		assert.Equal(t, "a", upcoming[0].ID)
		assert.Equal(t, "b", upcoming[1].ID)
	})

	t.Run("Takes The First Four Ascending", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "5", DateTime: "2024-06-07T10:00"},
			{ID: "1", DateTime: "2024-06-03T10:00"},
			{ID: "4", DateTime: "2024-06-06T10:00"},
			{ID: "2", DateTime: "2024-06-04T10:00"},
			{ID: "3", DateTime: "2024-06-05T10:00"},
			{ID: "x", DateTime: "not a date"},
		}

		upcoming := UpcomingAppointments(appointments, now)

		require.Len(t, upcoming, 4)
		assert.Equal(t, []string{"1", "2", "3", "4"}, []string{upcoming[0].ID, upcoming[1].ID, upcoming[2].ID, upcoming[3].ID})
	})

	t.Run("Includes An Appointment Exactly Now", func(t *testing.T) {
		upcoming := UpcomingAppointments([]models.Appointment{{ID: "now", DateTime: "2024-06-01T09:00"}}, now)

		assert.Len(t, upcoming, 1)
	})
}

func TestMedicationReminders(t *testing.T) {
	meds := []models.Medication{
		{ID: "late", Active: true, NextTime: "2024-06-01T20:00"},
		{ID: "inactive", Active: false, NextTime: "2024-06-01T06:00"},
		{ID: "unscheduled", Active: true},
		{ID: "early", Active: true, NextTime: "2024-06-01T07:00"},
	}

	reminders := MedicationReminders(meds)

	require.Len(t, reminders, 2)
	assert.Equal(t, "early", reminders[0].ID)
	assert.Equal(t, "late", reminders[1].ID)
}

func TestDashboard(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)
	members := []models.FamilyMember{{ID: "1", Name: "Budi"}, {ID: "2", Name: "Siti"}}

	appointments, meds := Dashboard(
		members,
		[]models.Appointment{{ID: "a", MemberID: "2", DateTime: "2024-06-03T08:00"}},
		[]models.Medication{{ID: "m", MemberID: "1", Active: true, NextTime: "2024-06-01T12:00"}},
		now,
	)

	require.Len(t, appointments, 1)
	assert.Equal(t, "Siti", appointments[0].MemberName)
	require.Len(t, meds, 1)
	assert.Equal(t, "Budi", meds[0].MemberName)
}

func TestLatestVital(t *testing.T) {
	t.Run("No Readings", func(t *testing.T) {
		reading := LatestVital(nil)

		assert.False(t, reading.Available)
		assert.Equal(t, constvars.VitalUnavailable, reading.HeartRate)
		assert.Equal(t, constvars.VitalUnavailable, reading.Oxygen)
	})

	t.Run("Newest Reading Wins", func(t *testing.T) {
		logs := []models.VitalLog{
			{ID: "old", DateTime: "2024-05-01T08:00", VitalSigns: models.VitalSigns{HeartRate: float(70)}},
			{ID: "new", DateTime: "2024-05-03T08:00", VitalSigns: models.VitalSigns{HeartRate: float(82), Temperature: float(36.6)}},
			{ID: "mid", DateTime: "2024-05-02T08:00", VitalSigns: models.VitalSigns{HeartRate: float(75)}},
		}

		reading := LatestVital(logs)

		assert.True(t, reading.Available)
		assert.Equal(t, "2024-05-03T08:00", reading.DateTime)
		assert.Equal(t, "82", reading.HeartRate)
		assert.Equal(t, "36.6", reading.Temperature)
		assert.Equal(t, constvars.VitalUnavailable, reading.Systolic)
	})
}

func TestGrowthChart(t *testing.T) {
	logs := []models.GrowthLog{
		{ID: "2", DateTime: "2024-03-01", Weight: float(6.1)},
		{ID: "1", DateTime: "2024-02-01", Weight: float(5.2), Height: float(55)},
	}

	series := GrowthChart(logs)

	assert.Equal(t, []string{"2024-02-01", "2024-03-01"}, series.Dates)
	require.Len(t, series.Weight, 2)
	assert.Equal(t, 5.2, *series.Weight[0])
	assert.Equal(t, 6.1, *series.Weight[1])
	assert.Equal(t, 55.0, *series.Height[0])
	assert.Nil(t, series.Height[1], "missing height is a gap in that series only")
}

func TestSearchRecords(t *testing.T) {
	records := []models.MedicalRecord{
		{ID: "old", Title: "Cek Darah", DateTime: "2024-01-01"},
		{ID: "new", Title: "Kontrol", Diagnosis: "Demam berdarah", DateTime: "2024-02-01"},
		{ID: "other", Title: "Rontgen", DateTime: "2024-03-01"},
	}

	matched := SearchRecords(records, "DARAH")

	require.Len(t, matched, 2)
	assert.Equal(t, "new", matched[0].ID)
	assert.Equal(t, "old", matched[1].ID)
}

func TestAgeCategory(t *testing.T) {
	assert.Equal(t, constvars.AgeCategoryElderly, AgeCategory(models.FamilyMember{IsElderly: true}))
	assert.Equal(t, constvars.AgeCategoryChild, AgeCategory(models.FamilyMember{IsChild: true}))
	assert.Equal(t, constvars.AgeCategoryAdult, AgeCategory(models.FamilyMember{}))
}
