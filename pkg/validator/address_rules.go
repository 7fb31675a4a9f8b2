package validator

import (
	"reflect"
	"regexp"
)

var (
	locationNumberRegex = regexp.MustCompile(`^[0-9a-zA-Z\\/.\-]+$`)
	postalCodeRegex     = regexp.MustCompile(`^\d{2}-\d{3}$`)
)

// IsLocationNumber reports whether value is a street or flat number.
// Any numeric value is accepted. Strings may be empty (a flat number is
// optional) or contain digits, ASCII letters, slashes, backslashes, dots and
// hyphens, e.g. "12/4B". Values of any other type, nil included, are rejected.
func IsLocationNumber(value any) bool {
	if value == nil {
		return false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.String:
		s := v.String()
		return s == "" || locationNumberRegex.MatchString(s)
	default:
		return false
	}
}

// IsPostalCode reports whether code has the Polish NN-NNN layout.
func IsPostalCode(code string) bool {
	return postalCodeRegex.MatchString(code)
}

// ValidLocationNumber is the Rule form of IsLocationNumber.
func ValidLocationNumber(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsLocationNumber(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindLocation,
			Message:        "must be a number or contain only digits, letters, slashes, dots and hyphens",
			TranslationKey: "validation.location_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidPostalCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPostalCode(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindPostalCode,
			Message:        "must be a postal code in the format 00-000",
			TranslationKey: "validation.postal_code",
			TranslationValues: map[string]any{
				"field":  field,
				"format": "00-000",
			},
		},
	}
}
