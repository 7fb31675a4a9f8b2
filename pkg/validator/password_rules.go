package validator

import (
	"regexp"
	"strings"
)

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	symbolRegex    = regexp.MustCompile(`[$@!%*?&]`)
)

// IsComplexPassword reports whether password contains at least one lowercase
// letter, one uppercase letter, one digit and one of the symbols $@!%*?&.
// There is no length requirement. Only the first line is inspected.
func IsComplexPassword(password string) bool {
	line := firstLine(password)
	return lowercaseRegex.MatchString(line) &&
		uppercaseRegex.MatchString(line) &&
		digitRegex.MatchString(line) &&
		symbolRegex.MatchString(line)
}

func firstLine(s string) string {
	if i := strings.IndexFunc(s, isLineTerminator); i >= 0 {
		return s[:i]
	}
	return s
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

// ComplexPassword is the Rule form of IsComplexPassword.
func ComplexPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsComplexPassword(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindPassword,
			Message:        "password must contain a lowercase letter, an uppercase letter, a digit and one of $@!%*?&",
			TranslationKey: "validation.password_complex",
			TranslationValues: map[string]any{
				"field":   field,
				"symbols": "$@!%*?&",
			},
		},
	}
}
