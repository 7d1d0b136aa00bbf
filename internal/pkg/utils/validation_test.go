package utils

import (
	"testing"

	"family-health-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Member", func(t *testing.T) {
		err := ValidateStruct(&requests.UpsertMember{Name: "Budi", Relation: "Father", BirthDate: "1980-05-15"})
		assert.NoError(t, err)
	})

	t.Run("Unknown Relation", func(t *testing.T) {
		err := ValidateStruct(&requests.UpsertMember{Name: "Budi", Relation: "Uncle", BirthDate: "1980-05-15"})
		assert.Error(t, err)
	})

	t.Run("Invalid Birth Date", func(t *testing.T) {
		err := ValidateStruct(&requests.UpsertMember{Name: "Budi", Relation: "Father", BirthDate: "15/05/1980"})
		assert.Error(t, err)
	})

	t.Run("Record Type With Space", func(t *testing.T) {
		err := ValidateStruct(&requests.UpsertMedicalRecord{Title: "Foto luka", DateTime: "2024-01-01T10:00", Type: "Clinical Photo"})
		assert.NoError(t, err)
	})

	t.Run("Unknown Tab", func(t *testing.T) {
		err := ValidateStruct(&requests.SetActiveTab{Tab: "settings"})
		assert.Error(t, err)
	})

	t.Run("Note Type", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.UpsertCaregiverNote{Text: "Tidur nyenyak", Type: "sleep"}))
		assert.Error(t, ValidateStruct(&requests.UpsertCaregiverNote{Text: "Tidur nyenyak", Type: "mood"}))
	})
}
