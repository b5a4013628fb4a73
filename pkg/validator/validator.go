package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// iso8601Layouts are tried in order; values without a zone are read as UTC.
var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var ErrInvalidISO8601 = errors.New("value is not an ISO 8601 date")

// ParseISO8601 parses the date formats accepted by the "iso8601" tag.
func ParseISO8601(value string) (time.Time, error) {
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidISO8601
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so details match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := ParseISO8601(fl.Field().String())
		return err == nil
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				fieldErrors[field] = field + " is required"
			case "min":
				fieldErrors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				fieldErrors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				fieldErrors[field] = field + " must be greater than " + e.Param()
			case "oneof":
				fieldErrors[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "iso8601":
				fieldErrors[field] = field + " must be an ISO 8601 date"
			default:
				fieldErrors[field] = field + " is invalid"
			}
		}
	}

	return fieldErrors
}
