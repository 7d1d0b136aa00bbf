package routers

import (
	"family-health-service/internal/app/delivery/http/controllers"
	"family-health-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.Get("/", medicalRecordController.FindAll)
	router.Post("/", medicalRecordController.CreateMedicalRecord)
	router.Put("/{record_id}", medicalRecordController.UpdateMedicalRecord)
	router.Delete("/{record_id}", medicalRecordController.DeleteMedicalRecord)
}

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.CreateAppointment)
	router.Put("/{appointment_id}", appointmentController.UpdateAppointment)
	router.Delete("/{appointment_id}", appointmentController.DeleteAppointment)
}

func attachMedicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicationController *controllers.MedicationController) {
	router.Get("/", medicationController.FindAll)
	router.Post("/", medicationController.CreateMedication)
	router.Put("/{medication_id}", medicationController.UpdateMedication)
	router.Put("/{medication_id}/next-time", medicationController.RescheduleMedication)
	router.Delete("/{medication_id}", medicationController.DeleteMedication)
}

func attachCaregiverNoteRoutes(router chi.Router, middlewares *middlewares.Middlewares, caregiverNoteController *controllers.CaregiverNoteController) {
	router.Get("/", caregiverNoteController.FindAll)
	router.Post("/", caregiverNoteController.CreateCaregiverNote)
	router.Put("/{note_id}", caregiverNoteController.UpdateCaregiverNote)
	router.Delete("/{note_id}", caregiverNoteController.DeleteCaregiverNote)
}
