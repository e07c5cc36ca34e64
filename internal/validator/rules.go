package validator

import (
	"github.com/go-playground/validator/v10"
)

// RegisterCustomRules installs the domain-specific validation tags on
// an external validator instance, e.g. gin's binding engine.
func RegisterCustomRules(v *validator.Validate) {
	registerCustomRules(v)
}

// registerCustomRules installs domain-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	// tel_digits: a dialable number. The profile stores raw digits with
	// an optional '+' country prefix; display formatting needs at least
	// the 11-digit area+subscriber tail.
	_ = v.RegisterValidation("tel_digits", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		digits := 0
		for i, r := range value {
			switch {
			case r >= '0' && r <= '9':
				digits++
			case r == '+' && i == 0:
			default:
				return false
			}
		}
		return digits >= 11 && digits <= 13
	})
}
