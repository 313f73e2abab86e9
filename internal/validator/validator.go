package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/fsa-drive/admin-service/internal/catalog"
)

// gmailPattern matches the only address form accepted for provisioned
// accounts: a non-empty local part without whitespace at gmail.com.
var gmailPattern = regexp.MustCompile(`^[^\s@]+@gmail\.com$`)

// IsGmailAddress reports whether s is a well-formed gmail.com address.
func IsGmailAddress(s string) bool {
	return gmailPattern.MatchString(s)
}

// ValidationError represents a single field-level rule violation.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator wraps go-playground validation with the domain rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerDomainRules()

	return v
}

// Validate validates struct tags and converts failures to ValidationErrors.
// A nil return means the value passed.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors ValidationErrors
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   fieldErr.Field(),
			Message: messageFor(fieldErr),
			Value:   fieldErr.Value(),
			Rule:    fieldErr.Tag(),
		})
	}
	return errors
}

func (v *Validator) registerDomainRules() {
	v.validate.RegisterValidation("gmail_email", func(fl validator.FieldLevel) bool {
		return IsGmailAddress(fl.Field().String())
	})

	v.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "teacher", "admin":
			return true
		}
		return false
	})

	v.validate.RegisterValidation("grade_level", func(fl validator.FieldLevel) bool {
		grade := catalog.GradeLevel(fl.Field().String())
		for _, known := range catalog.GradeLevels() {
			if grade == known {
				return true
			}
		}
		return false
	})

	v.validate.RegisterValidation("course_category", func(fl validator.FieldLevel) bool {
		category := catalog.CourseCategory(fl.Field().String())
		for _, known := range catalog.CategoriesFor(catalog.GradeHigh) {
			if category == known {
				return true
			}
		}
		return false
	})
}

func messageFor(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "gmail_email":
		return "must be a gmail.com address"
	case "user_role":
		return "must be teacher or admin"
	case "grade_level":
		return "is not a known grade level"
	case "course_category":
		return "is not a known course category"
	case "min":
		return fmt.Sprintf("must have at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must have at most %s", err.Param())
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}
