package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GGN numbers are 13-digit GlobalG.A.P. identifiers.
var ggnPattern = regexp.MustCompile(`^\d{13}$`)

// RegisterCustomValidations plugs domain-specific validations into gin's
// binding validator. Call once at startup, before routes are registered.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ggn", validGGN)
	}
}

func validGGN(fl validator.FieldLevel) bool {
	return ggnPattern.MatchString(fl.Field().String())
}
