package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/plvalidator/pkg/validator"
)

func TestIsName(t *testing.T) {
	t.Parallel()

	t.Run("valid names", func(t *testing.T) {
		names := []string{
			"Żelisław III",
			"Jan",
			"Anna-Maria",
			"Kowalska Nowak",
			"Śliwa",
			"Łukasz",
			"Ósemka",
			"John Jr.",
			"Ewa2",
		}
		for _, name := range names {
			assert.True(t, validator.IsName(name), "name %q", name)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		names := []string{
			"",
			"A",
			"Al",
			"żelisław",
			"jan",
			"1Jan",
			" Jan",
			"Żelisł@w III",
			"O'Neil",
			"Jan_Kowalski",
			"Jürgen",
		}
		for _, name := range names {
			assert.False(t, validator.IsName(name), "name %q", name)
		}
	})
}

func TestValidName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.ValidName("first_name", "Zbigniew").Validate())

	verrs := validator.ExtractValidationErrors(validator.ValidName("first_name", "zbigniew").Validate())
	if assert.Len(t, verrs, 1) {
		assert.Equal(t, "first_name", verrs[0].Field)
		assert.Equal(t, "validation.name", verrs[0].TranslationKey)
	}
}
