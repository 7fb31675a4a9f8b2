package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/plvalidator/pkg/checksum"
)

var (
	peselRegex = regexp.MustCompile(`^[0-9]{11}$`)
	nipRegex   = regexp.MustCompile(`^[0-9]{10}$`)
)

// IsValidPesel reports whether pesel is eleven digits with a correct check
// digit. The embedded birth date is not checked; see IsCompliantWithPesel.
func IsValidPesel(pesel string) bool {
	if !peselRegex.MatchString(pesel) {
		return false
	}

	digits, _ := checksum.Digits(pesel)
	last := len(digits) - 1
	return checksum.PeselCheckDigit(digits[:last]) == digits[last]
}

// IsValidIDNo reports whether id is a valid Polish identity card number:
// three letters, six digits, and a check digit in the fourth position.
func IsValidIDNo(id string) bool {
	return checksum.NationalID.Valid(id)
}

// IsValidPassportNo reports whether passport is a valid Polish passport
// number: two letters followed by seven digits.
func IsValidPassportNo(passport string) bool {
	return checksum.Passport.Valid(passport)
}

// IsValidNIP reports whether nip is a valid tax identification number.
// Dashes are allowed anywhere, so both "4375003084" and "437-500-30-84" pass.
func IsValidNIP(nip string) bool {
	if nip == "" {
		return false
	}

	number := strings.ReplaceAll(nip, "-", "")
	if !nipRegex.MatchString(number) {
		return false
	}

	digits, _ := checksum.Digits(number)
	last := len(digits) - 1
	check, ok := checksum.NIPCheckDigit(digits[:last])
	return ok && check == digits[last]
}

func ValidPesel(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidPesel(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindPesel,
			Message:        "must be a valid PESEL number",
			TranslationKey: "validation.pesel",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidIDNo(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidIDNo(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindIDNo,
			Message:        "must be a valid identity card number (e.g. ABC123456)",
			TranslationKey: "validation.id_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidPassportNo(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidPassportNo(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindPassport,
			Message:        "must be a valid passport number (e.g. AB1234567)",
			TranslationKey: "validation.passport_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidNIP is the Rule form of IsValidNIP.
func ValidNIP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidNIP(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindNIP,
			Message:        "must be a valid NIP number",
			TranslationKey: "validation.nip",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
