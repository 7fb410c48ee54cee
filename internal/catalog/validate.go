package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// ValidationError lists every problem found in a pack.
type ValidationError struct {
	Pack     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid exercise pack %q: %s", e.Pack, strings.Join(e.Problems, "; "))
}

// Validate checks a pack and its exercises for missing or malformed fields.
func Validate(p *Pack) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate pack %q: %w", p.Name, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(p, fe))
	}
	return &ValidationError{Pack: p.Name, Problems: problems}
}

func describe(p *Pack, fe validator.FieldError) string {
	// Namespace looks like "Pack.exercises[2].criteria[0]"; name the exercise by ID.
	field := strings.TrimPrefix(fe.Namespace(), "Pack.")
	var idx int
	if _, err := fmt.Sscanf(field, "exercises[%d]", &idx); err == nil && idx < len(p.Exercises) {
		if id := p.Exercises[idx].ID; id != "" {
			field = fmt.Sprintf("exercise %q%s", id, strings.TrimPrefix(field, fmt.Sprintf("exercises[%d]", idx)))
		}
	}

	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "unique":
		return field + " must not contain duplicates"
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
