// Package validator provides predicates and composable rules for Polish
// personal data: PESEL, NIP, identity card and passport numbers, postal
// codes, street and flat numbers, personal names and password complexity.
//
// Every check exists in two shapes. The Is* functions are plain predicates
// that return a bool and never fail: missing, malformed or out-of-range input
// is simply false. The rule constructors (ValidPesel, ValidNIP, ...) wrap the
// same predicates into a Rule carrying a field name and a translation key, so
// several checks can be evaluated at once with Apply:
//
//	err := validator.Apply(
//	    validator.ValidPesel("pesel", form.Pesel),
//	    validator.CompliantWithPesel("birth_date", form.BirthDate, form.Pesel),
//	    validator.ValidPostalCode("postal_code", form.PostalCode),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// The checksum arithmetic behind the document numbers lives in package
// checksum. This package holds no mutable state; all functions are safe for
// concurrent use.
//
// Inputs are validated as given. Nothing is trimmed, re-cased or reformatted
// before matching, with the single exception of NIP dashes, which are part of
// the accepted notation.
package validator
