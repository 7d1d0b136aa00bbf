package utils

import (
	"strings"

	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachAllergy(input []requests.Allergy) []requests.Allergy {
	sanitized := make([]requests.Allergy, len(input))
	for i, allergy := range input {
		sanitized[i] = requests.Allergy{
			ID:       strings.TrimSpace(allergy.ID),
			Name:     strings.TrimSpace(allergy.Name),
			Reaction: strings.TrimSpace(allergy.Reaction),
			PhotoURL: strings.TrimSpace(allergy.PhotoURL),
		}
	}
	return sanitized
}

func SanitizeUpsertMemberRequest(input *requests.UpsertMember) {
	input.Name = strings.TrimSpace(input.Name)
	input.Relation = strings.TrimSpace(input.Relation)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.BloodType = strings.ToUpper(strings.TrimSpace(input.BloodType))
	input.NIK = strings.TrimSpace(input.NIK)
	input.InsuranceNumber = strings.TrimSpace(input.InsuranceNumber)
	input.PhotoURL = strings.TrimSpace(input.PhotoURL)
	input.InsuranceCardURL = strings.TrimSpace(input.InsuranceCardURL)

	input.Allergies = cleanWhiteSpaceFromEachAllergy(input.Allergies)
}

func SanitizeUpsertContactRequest(input *requests.UpsertContact) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.GmapsURL = strings.TrimSpace(input.GmapsURL)
}

func SanitizeMediaQuery(input *requests.MediaQuery) {
	input.Search = strings.TrimSpace(input.Search)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	if input.Category == "" {
		input.Category = constvars.MediaCategoryAll
	}
}
