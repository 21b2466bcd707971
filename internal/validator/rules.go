package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"psychportal_backend/internal/models"
)

// registerCustomRules installs the domain specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration only fails on a bad tag name, which is a
			// programming error. Refuse to start.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-application-status': any known application status
	mustRegister("is-application-status", validateApplicationStatus)

	// 'is-decision-status': statuses a teacher may assign during assessment
	mustRegister("is-decision-status", validateDecisionStatus)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // leave empties to 'required'
	}
	for _, s := range models.AllApplicationStatuses {
		if models.ApplicationStatus(value) == s {
			return true
		}
	}
	return false
}

func validateDecisionStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).IsDecision()
}
