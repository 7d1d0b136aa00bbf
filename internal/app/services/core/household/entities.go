package household

import (
	"context"

	"family-health-service/internal/app/models"
)

func (s *Store) AddMember(ctx context.Context, member models.FamilyMember) models.FamilyMember {
	return addEntity(ctx, s, membersCollection, member, placeLast)
}

func (s *Store) UpdateMember(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error) {
	return updateEntity(ctx, s, membersCollection, member)
}

func (s *Store) DeleteMember(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, membersCollection, id)
}

func (s *Store) FindMember(id string) (models.FamilyMember, error) {
	return findEntity(s, membersCollection, id)
}

func (s *Store) AddMedicalRecord(ctx context.Context, medicalRecord models.MedicalRecord) models.MedicalRecord {
	return addEntity(ctx, s, recordsCollection, medicalRecord, placeLast)
}

func (s *Store) UpdateMedicalRecord(ctx context.Context, medicalRecord models.MedicalRecord) (models.MedicalRecord, error) {
	return updateEntity(ctx, s, recordsCollection, medicalRecord)
}

func (s *Store) DeleteMedicalRecord(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, recordsCollection, id)
}

func (s *Store) FindMedicalRecord(id string) (models.MedicalRecord, error) {
	return findEntity(s, recordsCollection, id)
}

func (s *Store) AddAppointment(ctx context.Context, appointment models.Appointment) models.Appointment {
	return addEntity(ctx, s, appointmentsCollection, appointment, placeLast)
}

func (s *Store) UpdateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	return updateEntity(ctx, s, appointmentsCollection, appointment)
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, appointmentsCollection, id)
}

func (s *Store) FindAppointment(id string) (models.Appointment, error) {
	return findEntity(s, appointmentsCollection, id)
}

func (s *Store) AddMedication(ctx context.Context, medication models.Medication) models.Medication {
	return addEntity(ctx, s, medsCollection, medication, placeLast)
}

func (s *Store) UpdateMedication(ctx context.Context, medication models.Medication) (models.Medication, error) {
	return updateEntity(ctx, s, medsCollection, medication)
}

func (s *Store) DeleteMedication(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, medsCollection, id)
}

func (s *Store) FindMedication(id string) (models.Medication, error) {
	return findEntity(s, medsCollection, id)
}

func (s *Store) AddGrowthLog(ctx context.Context, growthLog models.GrowthLog) models.GrowthLog {
	return addEntity(ctx, s, growthLogsCollection, growthLog, placeLast)
}

func (s *Store) UpdateGrowthLog(ctx context.Context, growthLog models.GrowthLog) (models.GrowthLog, error) {
	return updateEntity(ctx, s, growthLogsCollection, growthLog)
}

func (s *Store) DeleteGrowthLog(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, growthLogsCollection, id)
}

func (s *Store) FindGrowthLog(id string) (models.GrowthLog, error) {
	return findEntity(s, growthLogsCollection, id)
}

func (s *Store) AddVitalLog(ctx context.Context, vitalLog models.VitalLog) models.VitalLog {
	return addEntity(ctx, s, vitalLogsCollection, vitalLog, placeLast)
}

func (s *Store) UpdateVitalLog(ctx context.Context, vitalLog models.VitalLog) (models.VitalLog, error) {
	return updateEntity(ctx, s, vitalLogsCollection, vitalLog)
}

func (s *Store) DeleteVitalLog(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, vitalLogsCollection, id)
}

func (s *Store) FindVitalLog(id string) (models.VitalLog, error) {
	return findEntity(s, vitalLogsCollection, id)
}

func (s *Store) AddHomeCareLog(ctx context.Context, homeCareLog models.HomeCareLog) models.HomeCareLog {
	return addEntity(ctx, s, homeCareLogsCollection, homeCareLog, placeLast)
}

func (s *Store) UpdateHomeCareLog(ctx context.Context, homeCareLog models.HomeCareLog) (models.HomeCareLog, error) {
	return updateEntity(ctx, s, homeCareLogsCollection, homeCareLog)
}

func (s *Store) DeleteHomeCareLog(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, homeCareLogsCollection, id)
}

func (s *Store) FindHomeCareLog(id string) (models.HomeCareLog, error) {
	return findEntity(s, homeCareLogsCollection, id)
}

// AddCaregiverNote puts the new note at the head of the collection.
func (s *Store) AddCaregiverNote(ctx context.Context, caregiverNote models.CaregiverNote) models.CaregiverNote {
	return addEntity(ctx, s, notesCollection, caregiverNote, placeFirst)
}

func (s *Store) UpdateCaregiverNote(ctx context.Context, caregiverNote models.CaregiverNote) (models.CaregiverNote, error) {
	return updateEntity(ctx, s, notesCollection, caregiverNote)
}

func (s *Store) DeleteCaregiverNote(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, notesCollection, id)
}

func (s *Store) FindCaregiverNote(id string) (models.CaregiverNote, error) {
	return findEntity(s, notesCollection, id)
}

func (s *Store) AddContact(ctx context.Context, contact models.HealthContact) models.HealthContact {
	return addEntity(ctx, s, contactsCollection, contact, placeLast)
}

func (s *Store) UpdateContact(ctx context.Context, contact models.HealthContact) (models.HealthContact, error) {
	return updateEntity(ctx, s, contactsCollection, contact)
}

func (s *Store) DeleteContact(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, contactsCollection, id)
}

func (s *Store) FindContact(id string) (models.HealthContact, error) {
	return findEntity(s, contactsCollection, id)
}
