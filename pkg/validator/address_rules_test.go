package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/plvalidator/pkg/validator"
)

type flatNumber string

type houseNumber uint16

func TestIsLocationNumber(t *testing.T) {
	t.Parallel()

	t.Run("strings following the numbering convention", func(t *testing.T) {
		for _, n := range []string{"123/4B", `123\4B`, "123.4B", "123-4A", "7", "b"} {
			assert.True(t, validator.IsLocationNumber(n), "number %q", n)
		}
	})

	t.Run("empty string", func(t *testing.T) {
		assert.True(t, validator.IsLocationNumber(""))
	})

	t.Run("restricted characters", func(t *testing.T) {
		for _, n := range []string{"123@4B", "12 4", "12,4", "4ą", " "} {
			assert.False(t, validator.IsLocationNumber(n), "number %q", n)
		}
	})

	t.Run("numbers are always valid", func(t *testing.T) {
		values := []any{123, 0, -5, int64(7), uint8(3), float32(1.5), 12.5, math.Inf(1), houseNumber(12)}
		for _, v := range values {
			assert.True(t, validator.IsLocationNumber(v), "value %v", v)
		}
	})

	t.Run("named string types", func(t *testing.T) {
		assert.True(t, validator.IsLocationNumber(flatNumber("4B")))
		assert.False(t, validator.IsLocationNumber(flatNumber("4#")))
	})

	t.Run("other types are invalid", func(t *testing.T) {
		var nilPtr *string
		values := []any{nil, true, []string{"1"}, map[string]int{}, struct{}{}, nilPtr}
		for _, v := range values {
			assert.False(t, validator.IsLocationNumber(v), "value %#v", v)
		}
	})
}

func TestIsPostalCode(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsPostalCode("00-800"))
	assert.True(t, validator.IsPostalCode("99-999"))

	for _, code := range []string{"", "AB-CDE", "435-5435", "00800", "00-8000", "0-800", "00 800", "00-800\n", " 00-800"} {
		assert.False(t, validator.IsPostalCode(code), "code %q", code)
	}
}

func TestAddressRules(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.ValidLocationNumber("street_number", "12/4B"),
		validator.ValidLocationNumber("flat_number", ""),
		validator.ValidPostalCode("postal_code", "00-800"),
	)
	assert.NoError(t, err)

	err = validator.Apply(
		validator.ValidLocationNumber("street_number", "12@4"),
		validator.ValidLocationNumber("flat_number", nil),
		validator.ValidPostalCode("postal_code", "00800"),
	)
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"street_number", "flat_number", "postal_code"}, verrs.Fields())
	assert.Equal(t, "validation.location_number", verrs[0].TranslationKey)
	assert.Equal(t, "validation.postal_code", verrs[2].TranslationKey)
}
