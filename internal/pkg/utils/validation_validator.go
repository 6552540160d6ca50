package utils

import (
	"medplan-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("staff_role", validateStaffRole)
	validate.RegisterValidation("event_type", validateEventType)
	validate.RegisterValidation("notification_channel", validateNotificationChannel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateStaffRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "physician", "resident", "nurse", "administrator":
		return true
	}
	return false
}

func validateEventType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "guard_shift", "emergency", "clinical_meeting":
		return true
	}
	return false
}

func validateNotificationChannel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case constvars.NotificationChannelEmail, constvars.NotificationChannelInApp, constvars.NotificationChannelSMS:
		return true
	}
	return false
}
