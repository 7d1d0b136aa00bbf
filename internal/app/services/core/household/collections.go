package household

import (
	"context"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/exceptions"
	"family-health-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type entity[T any] interface {
	models.Identifiable
	models.Cloneable[T]
}

// collection binds one snapshot field to the generic mutation helpers.
type collection[T entity[T]] struct {
	name   string
	get    func(*models.Snapshot) []T
	set    func(*models.Snapshot, []T)
	withID func(T, string) T
}

var membersCollection = collection[models.FamilyMember]{
	name:   "member",
	get:    func(s *models.Snapshot) []models.FamilyMember { return s.Members },
	set:    func(s *models.Snapshot, v []models.FamilyMember) { s.Members = v },
	withID: func(m models.FamilyMember, id string) models.FamilyMember { m.ID = id; return m },
}

var recordsCollection = collection[models.MedicalRecord]{
	name:   "medical record",
	get:    func(s *models.Snapshot) []models.MedicalRecord { return s.Records },
	set:    func(s *models.Snapshot, v []models.MedicalRecord) { s.Records = v },
	withID: func(r models.MedicalRecord, id string) models.MedicalRecord { r.ID = id; return r },
}

var appointmentsCollection = collection[models.Appointment]{
	name:   "appointment",
	get:    func(s *models.Snapshot) []models.Appointment { return s.Appointments },
	set:    func(s *models.Snapshot, v []models.Appointment) { s.Appointments = v },
	withID: func(a models.Appointment, id string) models.Appointment { a.ID = id; return a },
}

var medsCollection = collection[models.Medication]{
	name:   "medication",
	get:    func(s *models.Snapshot) []models.Medication { return s.Meds },
	set:    func(s *models.Snapshot, v []models.Medication) { s.Meds = v },
	withID: func(m models.Medication, id string) models.Medication { m.ID = id; return m },
}

var growthLogsCollection = collection[models.GrowthLog]{
	name:   "growth log",
	get:    func(s *models.Snapshot) []models.GrowthLog { return s.GrowthLogs },
	set:    func(s *models.Snapshot, v []models.GrowthLog) { s.GrowthLogs = v },
	withID: func(g models.GrowthLog, id string) models.GrowthLog { g.ID = id; return g },
}

var vitalLogsCollection = collection[models.VitalLog]{
	name:   "vital log",
	get:    func(s *models.Snapshot) []models.VitalLog { return s.VitalLogs },
	set:    func(s *models.Snapshot, v []models.VitalLog) { s.VitalLogs = v },
	withID: func(l models.VitalLog, id string) models.VitalLog { l.ID = id; return l },
}

var homeCareLogsCollection = collection[models.HomeCareLog]{
	name:   "home care log",
	get:    func(s *models.Snapshot) []models.HomeCareLog { return s.HomeCareLogs },
	set:    func(s *models.Snapshot, v []models.HomeCareLog) { s.HomeCareLogs = v },
	withID: func(l models.HomeCareLog, id string) models.HomeCareLog { l.ID = id; return l },
}

var notesCollection = collection[models.CaregiverNote]{
	name:   "caregiver note",
	get:    func(s *models.Snapshot) []models.CaregiverNote { return s.Notes },
	set:    func(s *models.Snapshot, v []models.CaregiverNote) { s.Notes = v },
	withID: func(n models.CaregiverNote, id string) models.CaregiverNote { n.ID = id; return n },
}

var contactsCollection = collection[models.HealthContact]{
	name:   "contact",
	get:    func(s *models.Snapshot) []models.HealthContact { return s.Contacts },
	set:    func(s *models.Snapshot, v []models.HealthContact) { s.Contacts = v },
	withID: func(c models.HealthContact, id string) models.HealthContact { c.ID = id; return c },
}

type placement int

const (
	placeLast placement = iota
	placeFirst
)

func addEntity[T entity[T]](ctx context.Context, s *Store, c collection[T], item T, where placement) T {
	if item.GetID() == "" {
		item = c.withID(item, s.newID())
	}

	s.mu.Lock()
	current := c.get(&s.snapshot)
	var next []T
	if where == placeFirst {
		next = prependItem(current, item)
	} else {
		next = appendItem(current, item)
	}
	c.set(&s.snapshot, next)
	s.mu.Unlock()

	s.log.Info("householdStore.add succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCollectionKey, c.name),
		zap.String(constvars.LoggingEntityIDKey, item.GetID()),
	)
	s.TriggerSync(ctx, models.SyncOverrides{})
	return item.Clone()
}

func updateEntity[T entity[T]](ctx context.Context, s *Store, c collection[T], item T) (T, error) {
	return modifyEntity(ctx, s, c, item.GetID(), func(T) (T, error) { return item, nil })
}

// modifyEntity replaces the entity with id by whatever change returns,
// computed from the stored value under the store lock.
func modifyEntity[T entity[T]](ctx context.Context, s *Store, c collection[T], id string, change func(existing T) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	current := c.get(&s.snapshot)
	existing, ok := findByID(current, id)
	if !ok {
		s.mu.Unlock()
		return zero, exceptions.ErrNotFound(c.name, id)
	}
	updated, err := change(existing.Clone())
	if err != nil {
		s.mu.Unlock()
		return zero, err
	}
	updated = c.withID(updated, id)
	next, _ := replaceByID(current, updated)
	c.set(&s.snapshot, next)
	s.mu.Unlock()

	s.log.Info("householdStore.update succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCollectionKey, c.name),
		zap.String(constvars.LoggingEntityIDKey, id),
	)
	s.TriggerSync(ctx, models.SyncOverrides{})
	return updated.Clone(), nil
}

func deleteEntity[T entity[T]](ctx context.Context, s *Store, c collection[T], id string) error {
	s.mu.Lock()
	next, ok := removeByID(c.get(&s.snapshot), id)
	if !ok {
		s.mu.Unlock()
		return exceptions.ErrNotFound(c.name, id)
	}
	c.set(&s.snapshot, next)
	s.mu.Unlock()

	s.log.Info("householdStore.delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCollectionKey, c.name),
		zap.String(constvars.LoggingEntityIDKey, id),
	)
	s.TriggerSync(ctx, models.SyncOverrides{})
	return nil
}

func findEntity[T entity[T]](s *Store, c collection[T], id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	existing, ok := findByID(c.get(&s.snapshot), id)
	if !ok {
		var zero T
		return zero, exceptions.ErrNotFound(c.name, id)
	}
	return existing.Clone(), nil
}
