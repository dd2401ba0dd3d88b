package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("mobile_number", validateMobileNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateMobileNumber(fl validator.FieldLevel) bool {
	mobileNumber := fl.Field().String()
	re := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return re.MatchString(mobileNumber)
}
