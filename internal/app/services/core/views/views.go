package views

import (
	"strconv"
	"strings"
	"time"

	"family-health-service/internal/app/models"
	"family-health-service/internal/pkg/constvars"
)

// FilterByMember keeps the items that belong to memberID. The input is not
// modified.
func FilterByMember[T models.MemberScoped](items []T, memberID string) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetMemberID() == memberID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// UpcomingAppointments returns the next appointments from now on, earliest
// first. Equal times keep their stored order.
func UpcomingAppointments(appointments []models.Appointment, now time.Time) []models.Appointment {
	upcoming := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if notBefore(appointment.DateTime, now) {
			upcoming = append(upcoming, appointment)
		}
	}
	upcoming = sortByDateTime(upcoming, func(a models.Appointment) string { return a.DateTime }, false)
	return take(upcoming, constvars.DashboardUpcomingLimit)
}

func MedicationReminders(meds []models.Medication) []models.Medication {
	reminders := make([]models.Medication, 0, len(meds))
	for _, medication := range meds {
		if medication.Active && medication.NextTime != "" {
			reminders = append(reminders, medication)
		}
	}
	reminders = sortByDateTime(reminders, func(m models.Medication) string { return m.NextTime }, false)
	return take(reminders, constvars.DashboardUpcomingLimit)
}

// Dashboard projects the household-wide reminders and labels each one with
// its member's name.
func Dashboard(members []models.FamilyMember, appointments []models.Appointment, meds []models.Medication, now time.Time) ([]models.DashboardAppointment, []models.DashboardMedication) {
	names := make(map[string]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
	}

	upcoming := UpcomingAppointments(appointments, now)
	dashboardAppointments := make([]models.DashboardAppointment, 0, len(upcoming))
	for _, appointment := range upcoming {
		dashboardAppointments = append(dashboardAppointments, models.DashboardAppointment{
			Appointment: appointment,
			MemberName:  names[appointment.MemberID],
		})
	}

	reminders := MedicationReminders(meds)
	dashboardMedications := make([]models.DashboardMedication, 0, len(reminders))
	for _, medication := range reminders {
		dashboardMedications = append(dashboardMedications, models.DashboardMedication{
			Medication: medication,
			MemberName: names[medication.MemberID],
		})
	}

	return dashboardAppointments, dashboardMedications
}

// LatestVital picks the newest reading. Every field of a missing reading,
// and every missing field of a present one, reads "--".
func LatestVital(vitalLogs []models.VitalLog) models.VitalReading {
	reading := models.VitalReading{
		HeartRate:   constvars.VitalUnavailable,
		Systolic:    constvars.VitalUnavailable,
		Diastolic:   constvars.VitalUnavailable,
		Temperature: constvars.VitalUnavailable,
		Oxygen:      constvars.VitalUnavailable,
	}
	if len(vitalLogs) == 0 {
		return reading
	}

	latest := sortByDateTime(vitalLogs, func(v models.VitalLog) string { return v.DateTime }, true)[0]
	reading.Available = true
	reading.DateTime = latest.DateTime
	reading.HeartRate = formatVital(latest.HeartRate)
	reading.Systolic = formatVital(latest.Systolic)
	reading.Diastolic = formatVital(latest.Diastolic)
	reading.Temperature = formatVital(latest.Temperature)
	reading.Oxygen = formatVital(latest.Oxygen)
	return reading
}

func formatVital(value *float64) string {
	if value == nil {
		return constvars.VitalUnavailable
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

// GrowthChart orders the logs oldest first and splits them into weight and
// height series sharing the date axis.
func GrowthChart(growthLogs []models.GrowthLog) models.GrowthSeries {
	sorted := sortByDateTime(growthLogs, func(g models.GrowthLog) string { return g.DateTime }, false)
	series := models.GrowthSeries{
		Dates:  make([]string, 0, len(sorted)),
		Weight: make([]*float64, 0, len(sorted)),
		Height: make([]*float64, 0, len(sorted)),
	}
	for _, log := range sorted {
		series.Dates = append(series.Dates, log.DateTime)
		series.Weight = append(series.Weight, log.Weight)
		series.Height = append(series.Height, log.Height)
	}
	return series
}

// SearchRecords matches title or diagnosis and lists the newest first.
func SearchRecords(records []models.MedicalRecord, query string) []models.MedicalRecord {
	matched := make([]models.MedicalRecord, 0, len(records))
	for _, record := range records {
		if containsFold(query, record.Title, record.Diagnosis) {
			matched = append(matched, record)
		}
	}
	return sortByDateTime(matched, func(r models.MedicalRecord) string { return r.DateTime }, true)
}

func SearchMedications(meds []models.Medication, query string) []models.Medication {
	matched := make([]models.Medication, 0, len(meds))
	for _, medication := range meds {
		if containsFold(query, medication.Name, medication.Instructions) {
			matched = append(matched, medication)
		}
	}
	return matched
}

func AppointmentSchedule(appointments []models.Appointment) []models.Appointment {
	return sortByDateTime(appointments, func(a models.Appointment) string { return a.DateTime }, false)
}

func NotesNewestFirst(notes []models.CaregiverNote) []models.CaregiverNote {
	return sortByDateTime(notes, func(n models.CaregiverNote) string { return n.DateTime }, true)
}

func VitalLogsNewestFirst(vitalLogs []models.VitalLog) []models.VitalLog {
	return sortByDateTime(vitalLogs, func(v models.VitalLog) string { return v.DateTime }, true)
}

// AgeCategory reads the stored flags; it does not look at the birth date.
func AgeCategory(member models.FamilyMember) string {
	switch {
	case member.IsElderly:
		return constvars.AgeCategoryElderly
	case member.IsChild:
		return constvars.AgeCategoryChild
	default:
		return constvars.AgeCategoryAdult
	}
}

func containsFold(query string, fields ...string) bool {
	needle := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
