package checksum

import "slices"

// Scheme describes an alphanumeric document number: the weight of each
// position and the number of leading letters.
type Scheme struct {
	name         string
	weights      []int
	seriesLength int
}

var (
	// NationalID is the Polish identity card number, e.g. ABC523456.
	NationalID = Scheme{
		name:         "national_id",
		weights:      []int{7, 3, 1, 9, 7, 3, 1, 7, 3},
		seriesLength: 3,
	}

	// Passport is the Polish passport number, e.g. MW3066805.
	Passport = Scheme{
		name:         "passport",
		weights:      []int{7, 3, 9, 1, 7, 3, 1, 7, 3},
		seriesLength: 2,
	}
)

// Valid reports whether code satisfies the scheme's mask and checksum.
func (s Scheme) Valid(code string) bool {
	return CheckIDValidity(code, s.weights, s.seriesLength)
}

func (s Scheme) Name() string { return s.name }

// Weights returns a copy of the per-position weights.
func (s Scheme) Weights() []int { return slices.Clone(s.weights) }

func (s Scheme) SeriesLength() int { return s.seriesLength }
