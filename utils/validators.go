package utils

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("hexcolor_custom", ValidateHexColorRule)
		v.RegisterValidation("timezone_name", ValidateTimezoneRule)
	}
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func ValidateHexColorRule(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return true
	}
	return hexColorPattern.MatchString(color)
}

func ValidateTimezoneRule(fl validator.FieldLevel) bool {
	return ValidateTimezone(fl.Field().String())
}

// ValidateTimezone reports whether the string is a loadable IANA zone name.
func ValidateTimezone(name string) bool {
	if name == "" {
		return true
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
