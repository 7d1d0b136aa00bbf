package household

import (
	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
)

// seedSnapshot is the demo household used when the remote store has no
// members. It is rebuilt on every call so callers can own the result.
func seedSnapshot() models.Snapshot {
	snapshot := models.Snapshot{
		Members: []models.FamilyMember{
			{
				ID:        "1",
				Name:      "Budi Santoso",
				Relation:  constvars.RelationFather,
				BirthDate: "1980-05-15",
				BloodType: "O+",
				Allergies: []models.AllergyDetail{
					{ID: "a1", Name: "Kacang", Reaction: "Gatal parah dan pembengkakan"},
				},
				PhotoURL: "https://picsum.photos/seed/budi/200",
			},
			{
				ID:        "2",
				Name:      "Siti Aminah",
				Relation:  constvars.RelationMother,
				BirthDate: "1982-11-20",
				BloodType: "A-",
				Allergies: []models.AllergyDetail{
					{ID: "a2", Name: "Debu", Reaction: "Bersin terus-menerus"},
				},
				PhotoURL: "https://picsum.photos/seed/siti/200",
			},
			{
				ID:        "3",
				Name:      "Eyang Subur",
				Relation:  constvars.RelationGrandparent,
				BirthDate: "1945-01-01",
				BloodType: "B+",
				Allergies: []models.AllergyDetail{},
				PhotoURL:  "https://picsum.photos/seed/eyang/200",
				IsElderly: true,
			},
			{
				ID:        "4",
				Name:      "Baby Rizky",
				Relation:  constvars.RelationChild,
				BirthDate: "2024-01-10",
				BloodType: "O+",
				Allergies: []models.AllergyDetail{},
				PhotoURL:  "https://picsum.photos/seed/rizky/200",
				IsChild:   true,
			},
		},
	}
	snapshot.Normalize()
	return snapshot
}
