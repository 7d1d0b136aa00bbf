package household

import (
	"context"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/exceptions"
)

// RescheduleMedication changes only nextTime.
func (s *Store) RescheduleMedication(ctx context.Context, id, nextTime string) (models.Medication, error) {
	return modifyEntity(ctx, s, medsCollection, id, func(medication models.Medication) (models.Medication, error) {
		medication.NextTime = nextTime
		return medication, nil
	})
}

// Home-care entries are owned by their log: every entry change rewrites the
// entries array and republishes the whole log.

func (s *Store) AddHomeCareEntry(ctx context.Context, logID string, entry models.HomeCareEntry) (models.HomeCareLog, error) {
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	return modifyEntity(ctx, s, homeCareLogsCollection, logID, func(log models.HomeCareLog) (models.HomeCareLog, error) {
		log.Entries = appendItem(log.Entries, entry)
		return log, nil
	})
}

func (s *Store) UpdateHomeCareEntry(ctx context.Context, logID string, entry models.HomeCareEntry) (models.HomeCareLog, error) {
	return modifyEntity(ctx, s, homeCareLogsCollection, logID, func(log models.HomeCareLog) (models.HomeCareLog, error) {
		entries, ok := replaceByID(log.Entries, entry)
		if !ok {
			return log, exceptions.ErrNotFound("home care entry", entry.ID)
		}
		log.Entries = entries
		return log, nil
	})
}

func (s *Store) RemoveHomeCareEntry(ctx context.Context, logID, entryID string) (models.HomeCareLog, error) {
	return modifyEntity(ctx, s, homeCareLogsCollection, logID, func(log models.HomeCareLog) (models.HomeCareLog, error) {
		entries, ok := removeByID(log.Entries, entryID)
		if !ok {
			return log, exceptions.ErrNotFound("home care entry", entryID)
		}
		log.Entries = entries
		return log, nil
	})
}

func (s *Store) FindHomeCareEntry(logID, entryID string) (models.HomeCareEntry, error) {
	log, err := s.FindHomeCareLog(logID)
	if err != nil {
		return models.HomeCareEntry{}, err
	}
	entry, ok := findByID(log.Entries, entryID)
	if !ok {
		return models.HomeCareEntry{}, exceptions.ErrNotFound("home care entry", entryID)
	}
	return entry, nil
}

// CloseHomeCareLog marks the episode inactive and keeps its entries.
func (s *Store) CloseHomeCareLog(ctx context.Context, logID string) (models.HomeCareLog, error) {
	return modifyEntity(ctx, s, homeCareLogsCollection, logID, func(log models.HomeCareLog) (models.HomeCareLog, error) {
		log.Active = false
		return log, nil
	})
}
