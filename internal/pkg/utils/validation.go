package utils

import (
	"slices"

	"family-health-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("datetime_value", validateDateTimeValue)
	validate.RegisterValidation("relation", oneOfValidator(
		constvars.RelationFather,
		constvars.RelationMother,
		constvars.RelationChild,
		constvars.RelationGrandparent,
		constvars.RelationOther,
	))
	validate.RegisterValidation("record_type", oneOfValidator(
		constvars.RecordTypeLab,
		constvars.RecordTypeConsultation,
		constvars.RecordTypeVaccination,
		constvars.RecordTypePrescription,
		constvars.RecordTypeClinicalPhoto,
		constvars.RecordTypeImaging,
		constvars.RecordTypeOther,
	))
	validate.RegisterValidation("note_type", oneOfValidator(
		constvars.NoteTypeMobility,
		constvars.NoteTypeDiet,
		constvars.NoteTypeSleep,
		constvars.NoteTypeGeneral,
	))
	validate.RegisterValidation("contact_type", oneOfValidator(
		constvars.ContactTypeHospital,
		constvars.ContactTypeClinic,
		constvars.ContactTypeDoctor,
		constvars.ContactTypePharmacy,
	))
	validate.RegisterValidation("language", oneOfValidator(constvars.LanguageID, constvars.LanguageEN))
	validate.RegisterValidation("tab", oneOfValidator(constvars.Tabs...))
	validate.RegisterValidation("media_category", oneOfValidator(
		constvars.MediaCategoryAll,
		constvars.MediaCategoryMedicalRecord,
		constvars.MediaCategoryMedication,
		constvars.MediaCategoryHomeCare,
	))
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func validateDateTimeValue(fl validator.FieldLevel) bool {
	return IsDateTime(fl.Field().String())
}

func oneOfValidator(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}
