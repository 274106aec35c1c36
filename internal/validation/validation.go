// Package validation builds the struct validator shared by the report-card
// and PNR packages.
//
// A *validator.Validate caches struct metadata and is safe for concurrent
// use, so one instance is created at init and reused for every call.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagNotBlank rejects strings that are empty after trimming whitespace.
const TagNotBlank = "notblank"

var validate = New()

// New returns a validator with the custom tags used by this module
// registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for an empty tag or nil func.
	if err := v.RegisterValidation(TagNotBlank, notBlank); err != nil {
		panic(err)
	}

	return v
}

// Struct validates s against its validate:"..." tags.
// The returned error, if any, is a validator.ValidationErrors.
func Struct(s any) error {
	return validate.Struct(s)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
