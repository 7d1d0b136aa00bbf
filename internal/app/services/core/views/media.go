package views

import (
	"fmt"
	"slices"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
)

// MediaVault merges the attachments of records, medications and home-care
// entries into one stream. Medication photos carry the sentinel date and
// always come first; everything else is newest first.
func MediaVault(records []models.MedicalRecord, meds []models.Medication, homeCareLogs []models.HomeCareLog) []models.MediaItem {
	stream := make([]models.MediaItem, 0)

	for _, record := range records {
		for idx, file := range record.Files {
			stream = append(stream, models.MedicalRecordMedia{
				ID:          fmt.Sprintf("rec-%s-%d", record.ID, idx),
				Type:        constvars.MediaCategoryMedicalRecord,
				ParentID:    record.ID,
				Title:       record.Title,
				Date:        record.DateTime,
				URL:         file.URL,
				FileName:    file.Name,
				SubCategory: record.Type,
				Diagnosis:   record.Diagnosis,
				Doctor:      record.DoctorName,
				SubCount:    len(record.Files),
				CurrentIdx:  idx + 1,
			})
		}
	}

	for _, medication := range meds {
		if medication.FileURL == "" {
			continue
		}
		stream = append(stream, models.MedicationMedia{
			ID:           fmt.Sprintf("med-%s", medication.ID),
			Type:         constvars.MediaCategoryMedication,
			ParentID:     medication.ID,
			Title:        medication.Name,
			Date:         constvars.MediaSentinelDate,
			URL:          medication.FileURL,
			FileName:     medication.FileName,
			Dosage:       medication.Dosage,
			Instructions: medication.Instructions,
		})
	}

	for _, log := range homeCareLogs {
		for _, entry := range log.Entries {
			for fIdx, file := range entry.Files {
				stream = append(stream, models.HomeCareMedia{
					ID:         fmt.Sprintf("hc-%s-%d", entry.ID, fIdx),
					Type:       constvars.MediaCategoryHomeCare,
					ParentID:   log.ID,
					Title:      fmt.Sprintf("%s: %s", log.Title, entry.Symptom),
					Date:       entry.DateTime,
					URL:        file.URL,
					FileName:   file.Name,
					Note:       entry.Note,
					SubCount:   len(entry.Files),
					CurrentIdx: fIdx + 1,
				})
			}
		}
	}

	slices.SortStableFunc(stream, compareMedia)
	return stream
}

func compareMedia(a, b models.MediaItem) int {
	aSentinel := a.MediaDate() == constvars.MediaSentinelDate
	bSentinel := b.MediaDate() == constvars.MediaSentinelDate
	switch {
	case aSentinel && bSentinel:
		return 0
	case aSentinel:
		return -1
	case bSentinel:
		return 1
	}
	return compareDateTimes(a.MediaDate(), b.MediaDate(), true)
}

// FilterMedia applies the free-text search and the category filter.
func FilterMedia(items []models.MediaItem, query, category string) []models.MediaItem {
	filtered := make([]models.MediaItem, 0, len(items))
	for _, item := range items {
		if category != constvars.MediaCategoryAll && item.MediaType() != category {
			continue
		}
		if !containsFold(query, item.SearchableText()...) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
