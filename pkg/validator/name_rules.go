package validator

import "regexp"

// A capital Polish letter followed by at least two letters, digits,
// whitespace, hyphens or dots.
var nameRegex = regexp.MustCompile(`^[A-ZĄĆĘŁŃÓŚŹŻ][A-Za-zĄĆĘŁŃÓŚŹŻąćęłńóśźż\d\s\-.]{2,}$`)

// IsName reports whether name looks like a Polish first or last name, e.g.
// "Żelisław III" or "Kowalska-Nowak".
func IsName(name string) bool {
	return nameRegex.MatchString(name)
}

func ValidName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsName(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindName,
			Message:        "must start with a capital letter and contain only letters, digits, spaces, hyphens and dots",
			TranslationKey: "validation.name",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
