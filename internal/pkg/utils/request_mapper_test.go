package utils

import (
	"strings"
	"testing"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFamilyMember(t *testing.T) {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.Local)

	t.Run("Derives Age Flags At Write Time", func(t *testing.T) {
		elder := BuildFamilyMember(&requests.UpsertMember{Name: "Eyang", Relation: "Grandparent", BirthDate: "1945-01-01"}, nil, now)
		child := BuildFamilyMember(&requests.UpsertMember{Name: "Rizky", Relation: "Child", BirthDate: "2024-01-10"}, nil, now)
		adult := BuildFamilyMember(&requests.UpsertMember{Name: "Budi", Relation: "Father", BirthDate: "1980-05-15"}, nil, now)

		assert.True(t, elder.IsElderly)
		assert.False(t, elder.IsChild)
		assert.True(t, child.IsChild)
		assert.False(t, child.IsElderly)
		assert.False(t, adult.IsElderly)
		assert.False(t, adult.IsChild)
	})

	t.Run("Drops Nameless Allergies And Assigns IDs", func(t *testing.T) {
		member := BuildFamilyMember(&requests.UpsertMember{
			Name:      "Siti",
			BirthDate: "1982-11-20",
			Allergies: []requests.Allergy{
				{Name: "Debu", Reaction: "Bersin"},
				{Name: "", Reaction: "ignored"},
				{ID: "a9", Name: "Udang"},
			},
		}, nil, now)

		require.Len(t, member.Allergies, 2)
		assert.NotEmpty(t, member.Allergies[0].ID)
		assert.Equal(t, "Debu", member.Allergies[0].Name)
		assert.Equal(t, "a9", member.Allergies[1].ID)
	})

	t.Run("Generates Placeholder Photo", func(t *testing.T) {
		member := BuildFamilyMember(&requests.UpsertMember{Name: "New", BirthDate: "2000-01-01"}, nil, now)

		assert.True(t, strings.HasPrefix(member.PhotoURL, "https://picsum.photos/seed/"))
	})

	t.Run("Keeps Existing Identity And Photos", func(t *testing.T) {
		existing := &models.FamilyMember{ID: "1", PhotoURL: "https://cdn/budi.png", InsuranceCardURL: "https://cdn/card.png"}

		member := BuildFamilyMember(&requests.UpsertMember{Name: "Budi", BirthDate: "1980-05-15"}, existing, now)

		assert.Equal(t, "1", member.ID)
		assert.Equal(t, "https://cdn/budi.png", member.PhotoURL)
		assert.Equal(t, "https://cdn/card.png", member.InsuranceCardURL)
	})
}

func TestBuildHomeCareEntry(t *testing.T) {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	t.Run("New Entry Is Stamped With Now", func(t *testing.T) {
		entry := BuildHomeCareEntry(&requests.UpsertHomeCareEntry{Symptom: "Demam"}, nil, now)

		assert.Equal(t, now.Format(time.RFC3339), entry.DateTime)
		assert.Empty(t, entry.ID)
	})

	t.Run("Edited Entry Keeps Its Timestamp", func(t *testing.T) {
		existing := &models.HomeCareEntry{ID: "e1", DateTime: "2025-05-30T07:00"}

		entry := BuildHomeCareEntry(&requests.UpsertHomeCareEntry{Symptom: "Batuk", DateTime: "2025-06-01T08:00"}, existing, now)

		assert.Equal(t, "e1", entry.ID)
		assert.Equal(t, "2025-05-30T07:00", entry.DateTime)
		assert.Equal(t, "Batuk", entry.Symptom)
	})
}

func TestBuildMedication(t *testing.T) {
	t.Run("New Medication Is Active", func(t *testing.T) {
		medication := BuildMedication(&requests.UpsertMedication{Name: "Paracetamol"}, nil, "1")

		assert.True(t, medication.Active)
		assert.Equal(t, "1", medication.MemberID)
	})

	t.Run("Update Keeps Active Flag And Photo", func(t *testing.T) {
		existing := &models.Medication{ID: "m1", Active: false, FileURL: "https://cdn/pill.png", FileName: "pill.png"}

		medication := BuildMedication(&requests.UpsertMedication{Name: "Paracetamol"}, existing, "1")

		assert.Equal(t, "m1", medication.ID)
		assert.False(t, medication.Active)
		assert.Equal(t, "https://cdn/pill.png", medication.FileURL)
	})
}
