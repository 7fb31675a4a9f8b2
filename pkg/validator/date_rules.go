package validator

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by IsCompliantWithPeselString, tried in order.
var birthDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02.01.2006",
}

// PESEL encodes the century in the month field.
var peselMonthOffsets = map[int]int{
	18: 80,
	19: 0,
	20: 20,
	21: 40,
	22: 60,
}

// PeselDatePart returns the six leading PESEL digits (YYMMDD with the century
// folded into the month) for date. It returns false for years outside
// 1800-2299, which PESEL cannot represent.
func PeselDatePart(date time.Time) (string, bool) {
	year := date.Year()
	offset, ok := peselMonthOffsets[year/100]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d%02d%02d", year%100, int(date.Month())+offset, date.Day()), true
}

// IsCompliantWithPesel reports whether the birth date encoded in pesel equals
// date. Only the first six characters of pesel are compared; use IsValidPesel
// to check the rest.
func IsCompliantWithPesel(date time.Time, pesel string) bool {
	part, ok := PeselDatePart(date)
	if !ok {
		return false
	}
	return strings.HasPrefix(pesel, part)
}

// IsCompliantWithPeselString parses date and calls IsCompliantWithPesel.
// Unparseable dates are not compliant.
func IsCompliantWithPeselString(date, pesel string) bool {
	parsed, ok := parseBirthDate(date)
	if !ok {
		return false
	}
	return IsCompliantWithPesel(parsed, pesel)
}

func parseBirthDate(value string) (time.Time, bool) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CompliantWithPesel checks a textual birth date against a PESEL.
func CompliantWithPesel(field, date, pesel string) Rule {
	return Rule{
		Check: func() bool {
			return IsCompliantWithPeselString(date, pesel)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindPeselDate,
			Message:        "birth date does not match PESEL",
			TranslationKey: "validation.pesel_birth_date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// BirthDateMatchesPesel is CompliantWithPesel for an already parsed date.
func BirthDateMatchesPesel(field string, date time.Time, pesel string) Rule {
	return Rule{
		Check: func() bool {
			return IsCompliantWithPesel(date, pesel)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindPeselDate,
			Message:        "birth date does not match PESEL",
			TranslationKey: "validation.pesel_birth_date",
			TranslationValues: map[string]any{
				"field": field,
				"date":  date.Format(time.DateOnly),
			},
		},
	}
}
