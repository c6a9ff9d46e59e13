package utils

import (
	"regexp"
	"time"

	"codexrfa-service/internal/pkg/constvars"
	"codexrfa-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("language_code", validateLanguageCode)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("initials", validateInitials)
}

// ValidateStruct runs the registered validations and wraps the first
// failure into a client-facing bad request error.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return exceptions.WrapWithError(err, constvars.StatusBadRequest, exceptions.FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	return nil
}

func validateLanguageCode(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^[a-z]{2}(-[a-zA-Z]{2,4})?$`)
	return re.MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayoutISO, fl.Field().String())
	return err == nil
}

func validateInitials(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^[a-zA-Z]{1,4}$`)
	return re.MatchString(fl.Field().String())
}
