package utils

import (
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
	"family-health-service/internal/pkg/dto/requests"
)

// BuildFamilyMember derives the stored member from a form submission. The age
// flags are evaluated once, here, against now.
func BuildFamilyMember(request *requests.UpsertMember, existing *models.FamilyMember, now time.Time) models.FamilyMember {
	member := models.FamilyMember{
		Name:             request.Name,
		Relation:         request.Relation,
		BirthDate:        request.BirthDate,
		BloodType:        request.BloodType,
		PhotoURL:         request.PhotoURL,
		NIK:              request.NIK,
		InsuranceNumber:  request.InsuranceNumber,
		InsuranceCardURL: request.InsuranceCardURL,
		Allergies:        make([]models.AllergyDetail, 0, len(request.Allergies)),
	}

	if existing != nil {
		member.ID = existing.ID
		if member.PhotoURL == "" {
			member.PhotoURL = existing.PhotoURL
		}
		if member.InsuranceCardURL == "" {
			member.InsuranceCardURL = existing.InsuranceCardURL
		}
	}
	if member.PhotoURL == "" {
		member.PhotoURL = GeneratePhotoPlaceholderURL()
	}

	for _, allergy := range request.Allergies {
		if allergy.Name == "" {
			continue
		}
		id := allergy.ID
		if id == "" {
			id = GenerateID()
		}
		member.Allergies = append(member.Allergies, models.AllergyDetail{
			ID:       id,
			Name:     allergy.Name,
			Reaction: allergy.Reaction,
			PhotoURL: allergy.PhotoURL,
		})
	}

	years, _ := AgeInYears(member.BirthDate, now)
	member.IsElderly = years >= constvars.ElderlyMinimumAge
	member.IsChild = years <= constvars.ChildMaximumAge

	return member
}

func BuildHealthContact(request *requests.UpsertContact, id string) models.HealthContact {
	return models.HealthContact{
		ID:       id,
		Name:     request.Name,
		Type:     request.Type,
		Phone:    request.Phone,
		Address:  request.Address,
		GmapsURL: request.GmapsURL,
	}
}

func BuildMedicalRecord(request *requests.UpsertMedicalRecord, id, memberID string) models.MedicalRecord {
	return models.MedicalRecord{
		ID:          id,
		MemberID:    memberID,
		Title:       request.Title,
		DateTime:    request.DateTime,
		Type:        request.Type,
		Description: request.Description,
		Diagnosis:   request.Diagnosis,
		Saran:       request.Saran,
		Obat:        request.Obat,
		DoctorName:  request.DoctorName,
		Facility:    request.Facility,
		Files:       buildFileAttachments(request.Files),
		VitalSigns:  buildVitalSigns(request.VitalSigns),
	}
}

func BuildAppointment(request *requests.UpsertAppointment, id, memberID string) models.Appointment {
	return models.Appointment{
		ID:       id,
		MemberID: memberID,
		Title:    request.Title,
		DateTime: request.DateTime,
		Doctor:   request.Doctor,
		Location: request.Location,
		Reminded: request.Reminded,
	}
}

// BuildMedication defaults Active to true for new medications and keeps the
// stored value on update when the request leaves it out.
func BuildMedication(request *requests.UpsertMedication, existing *models.Medication, memberID string) models.Medication {
	medication := models.Medication{
		MemberID:     memberID,
		Name:         request.Name,
		Dosage:       request.Dosage,
		Frequency:    request.Frequency,
		Instructions: request.Instructions,
		NextTime:     request.NextTime,
		Active:       true,
		FileURL:      request.FileURL,
		FileName:     request.FileName,
	}
	if existing != nil {
		medication.ID = existing.ID
		medication.Active = existing.Active
		if medication.FileURL == "" {
			medication.FileURL = existing.FileURL
			medication.FileName = existing.FileName
		}
	}
	if request.Active != nil {
		medication.Active = *request.Active
	}
	return medication
}

func BuildGrowthLog(request *requests.UpsertGrowthLog, id, memberID string) models.GrowthLog {
	return models.GrowthLog{
		ID:                id,
		MemberID:          memberID,
		DateTime:          request.DateTime,
		Weight:            request.Weight,
		Height:            request.Height,
		HeadCircumference: request.HeadCircumference,
	}
}

func BuildVitalLog(request *requests.UpsertVitalLog, id, memberID string, now time.Time) models.VitalLog {
	dateTime := request.DateTime
	if dateTime == "" {
		dateTime = now.Format(time.RFC3339)
	}
	return models.VitalLog{
		ID:         id,
		MemberID:   memberID,
		DateTime:   dateTime,
		VitalSigns: buildVitalSigns(request.VitalSigns),
	}
}

// BuildHomeCareLog starts new logs active with no entries. Updates only
// touch the title and, when given, the active flag.
func BuildHomeCareLog(request *requests.UpsertHomeCareLog, existing *models.HomeCareLog, memberID string) models.HomeCareLog {
	log := models.HomeCareLog{
		MemberID: memberID,
		Title:    request.Title,
		Entries:  []models.HomeCareEntry{},
		Active:   true,
	}
	if existing != nil {
		log = existing.Clone()
		log.Title = request.Title
	}
	if request.Active != nil {
		log.Active = *request.Active
	}
	return log
}

// BuildHomeCareEntry stamps new entries with now and keeps the original
// timestamp of an edited entry.
func BuildHomeCareEntry(request *requests.UpsertHomeCareEntry, existing *models.HomeCareEntry, now time.Time) models.HomeCareEntry {
	entry := models.HomeCareEntry{
		DateTime:   request.DateTime,
		Symptom:    request.Symptom,
		Note:       request.Note,
		Files:      buildFileAttachments(request.Files),
		VitalSigns: buildVitalSigns(request.VitalSigns),
	}
	if existing != nil {
		entry.ID = existing.ID
		entry.DateTime = existing.DateTime
	}
	if entry.DateTime == "" {
		entry.DateTime = now.Format(time.RFC3339)
	}
	return entry
}

func BuildCaregiverNote(request *requests.UpsertCaregiverNote, id, memberID string, now time.Time) models.CaregiverNote {
	at := now
	if parsed, ok := ParseDateTime(request.DateTime); ok {
		at = parsed
	}
	return models.CaregiverNote{
		ID:       id,
		MemberID: memberID,
		Date:     FormatDate(at),
		DateTime: at.Format(time.RFC3339),
		Text:     request.Text,
		Type:     request.Type,
	}
}

func buildFileAttachments(files []requests.FileAttachment) []models.FileAttachment {
	attachments := make([]models.FileAttachment, 0, len(files))
	for _, file := range files {
		attachments = append(attachments, models.FileAttachment{URL: file.URL, Name: file.Name})
	}
	return attachments
}

func buildVitalSigns(vitals requests.VitalSigns) models.VitalSigns {
	return models.VitalSigns{
		Temperature: vitals.Temperature,
		Systolic:    vitals.Systolic,
		Diastolic:   vitals.Diastolic,
		HeartRate:   vitals.HeartRate,
		Oxygen:      vitals.Oxygen,
	}
}
