package validator

import (
	"fmt"
	"slices"
)

// Kind names a validator so it can be selected at runtime.
type Kind string

const (
	KindPassword   Kind = "password"
	KindName       Kind = "name"
	KindLocation   Kind = "location"
	KindPostalCode Kind = "postal"
	KindPesel      Kind = "pesel"
	KindPeselDate  Kind = "pesel-date"
	KindIDNo       Kind = "id"
	KindPassport   Kind = "passport"
	KindNIP        Kind = "nip"
)

var kinds = []Kind{
	KindPassword,
	KindName,
	KindLocation,
	KindPostalCode,
	KindPesel,
	KindPeselDate,
	KindIDNo,
	KindPassport,
	KindNIP,
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

func (k Kind) String() string { return string(k) }

// Arity is the number of values a kind validates together.
func (k Kind) Arity() int {
	if k == KindPeselDate {
		return 2
	}
	return 1
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(kinds, k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// RuleFor builds the rule for kind over values. KindPeselDate takes a date and
// a PESEL; every other kind takes exactly one value.
func RuleFor(kind Kind, field string, values ...string) (Rule, error) {
	if !slices.Contains(kinds, kind) {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if len(values) != kind.Arity() {
		return Rule{}, fmt.Errorf("%w: %s expects %d, got %d", ErrArgumentCount, kind, kind.Arity(), len(values))
	}

	v := values[0]
	switch kind {
	case KindPassword:
		return ComplexPassword(field, v), nil
	case KindName:
		return ValidName(field, v), nil
	case KindLocation:
		return ValidLocationNumber(field, v), nil
	case KindPostalCode:
		return ValidPostalCode(field, v), nil
	case KindPesel:
		return ValidPesel(field, v), nil
	case KindPeselDate:
		return CompliantWithPesel(field, v, values[1]), nil
	case KindIDNo:
		return ValidIDNo(field, v), nil
	case KindPassport:
		return ValidPassportNo(field, v), nil
	default:
		return ValidNIP(field, v), nil
	}
}
