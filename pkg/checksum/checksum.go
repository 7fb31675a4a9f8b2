package checksum

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// letterValues maps a character to its numeric value by position.
const letterValues = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// InvalidCharacter marks a character that is not present in the letter table.
const InvalidCharacter = -1

// DocumentLength is the length of national ID and passport numbers.
const DocumentLength = 9

// letterThreshold is the smallest value produced by a letter.
const letterThreshold = 10

// TransformCharacters maps every character of code to its value in the letter
// table after upper-casing it. Characters outside the table become
// InvalidCharacter. The result always has one entry per rune of code.
func TransformCharacters(code string) []int {
	values := make([]int, 0, utf8.RuneCountInString(code))
	for _, r := range code {
		values = append(values, characterValue(r))
	}
	return values
}

func characterValue(r rune) int {
	r = unicode.ToUpper(r)
	if r >= utf8.RuneSelf {
		return InvalidCharacter
	}
	return strings.IndexRune(letterValues, r)
}

// CheckMaskCompliance reports whether values follow the "series then digits"
// layout: the first seriesLength entries must come from letters, the rest from
// digits. Any InvalidCharacter fails the check. An empty slice complies.
func CheckMaskCompliance(values []int, seriesLength int) bool {
	for i, v := range values {
		if v == InvalidCharacter {
			return false
		}
		if i < seriesLength && v < letterThreshold {
			return false
		}
		if i >= seriesLength && v >= letterThreshold {
			return false
		}
	}
	return true
}

// CalculateCheckSum returns the sum of values[i]*weights[i]. Positions are
// paired up to the shorter of the two slices; the remainder is ignored.
func CalculateCheckSum(values, weights []int) int {
	n := min(len(values), len(weights))
	sum := 0
	for i := range n {
		sum += values[i] * weights[i]
	}
	return sum
}

// CheckIDValidity validates a 9 character document number against the given
// weights and series length. The weighted sum of all nine values, check digit
// included, must be divisible by 10.
func CheckIDValidity(code string, weights []int, seriesLength int) bool {
	if utf8.RuneCountInString(code) != DocumentLength {
		return false
	}

	values := TransformCharacters(code)
	if !CheckMaskCompliance(values, seriesLength) {
		return false
	}

	return CalculateCheckSum(values, weights)%10 == 0
}
