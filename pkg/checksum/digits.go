package checksum

var (
	peselWeights = [...]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
	nipWeights   = [...]int{6, 5, 7, 2, 3, 4, 5, 6, 7}
)

const (
	// PeselLength is the number of digits in a PESEL.
	PeselLength = 11
	// NIPLength is the number of digits in a NIP without separators.
	NIPLength = 10
)

// Digits converts an ASCII decimal string into its digit values.
// It returns false if s contains anything but 0-9.
func Digits(s string) ([]int, bool) {
	digits := make([]int, len(s))
	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

// PeselCheckDigit returns the check digit for the first ten PESEL digits.
func PeselCheckDigit(body []int) int {
	sum := CalculateCheckSum(body, peselWeights[:]) % 10
	return (10 - sum) % 10
}

// NIPCheckDigit returns the check digit for the first nine NIP digits.
// A remainder of 10 has no digit representation; ok is false in that case
// and no NIP with this body can be valid.
func NIPCheckDigit(body []int) (digit int, ok bool) {
	digit = CalculateCheckSum(body, nipWeights[:]) % 11
	return digit, digit < 10
}
