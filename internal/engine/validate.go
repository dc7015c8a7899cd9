package engine

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a single parameter outside its physical domain.
// It is the only error Compute returns; no partial result accompanies it.
type ValidationError struct {
	// Field is the canonical parameter name, e.g. "f_number".
	Field string

	// Constraint is the violated constraint in human-readable form.
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("engine: invalid parameter %s: %s", e.Field, e.Constraint)
}

var (
	validateOnce    sync.Once
	paramsValidator *validator.Validate
)

// finiteRule rejects NaN and ±Inf. Registered as the "finite" tag and listed
// first on every field so an infinite value does not slip past gt/gte.
func finiteRule(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func newParamsValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", finiteRule)

	// Report fields by their yaml tag so errors name parameters the way
	// callers (and catalog files) spell them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "finite":
		return "must be a finite number"
	case "gt":
		return fmt.Sprintf("must be > %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be < %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("violates %q", fe.Tag())
	}
}

// Validate checks p against the engine's physical domain and returns a
// *ValidationError for the first offending field. It never mutates p.
func Validate(p Params) error {
	validateOnce.Do(func() { paramsValidator = newParamsValidator() })

	err := paramsValidator.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Constraint: constraintMessage(fe)}
	}
	return fmt.Errorf("engine: validate: %w", err)
}
