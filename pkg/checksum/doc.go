// Package checksum implements the weighted check-digit arithmetic shared by
// the Polish identity document validators.
//
// Alphanumeric document numbers (national ID cards and passports) are first
// mapped to integers with TransformCharacters: digits keep their value and the
// letters A through Z become 10 through 35. CheckMaskCompliance then verifies
// the positional layout (a leading letter series followed by digits), and
// CalculateCheckSum folds the values against a weight vector.
//
// Numeric identifiers (PESEL, NIP) reuse CalculateCheckSum through
// PeselCheckDigit and NIPCheckDigit.
//
// # Usage
//
//	if checksum.NationalID.Valid("AXZ043405") {
//	    // series and check digit are consistent
//	}
//
//	values := checksum.TransformCharacters("C56") // [12 5 6]
//	sum := checksum.CalculateCheckSum(values, []int{1, 2, 3})
//
// All functions are pure. The letter table and the weight vectors are never
// written after initialization, so every function is safe for concurrent use.
package checksum
