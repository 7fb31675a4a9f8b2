package validator_test

import (
	"testing"

	"github.com/dmitrymomot/plvalidator/pkg/validator"
)

func BenchmarkPredicates(b *testing.B) {
	b.Run("pesel", func(b *testing.B) {
		for b.Loop() {
			_ = validator.IsValidPesel("49040501580")
		}
	})

	b.Run("nip", func(b *testing.B) {
		for b.Loop() {
			_ = validator.IsValidNIP("437-500-30-84")
		}
	})

	b.Run("id", func(b *testing.B) {
		for b.Loop() {
			_ = validator.IsValidIDNo("AXZ043405")
		}
	})

	b.Run("password", func(b *testing.B) {
		for b.Loop() {
			_ = validator.IsComplexPassword("Aa1@.89")
		}
	})

	b.Run("pesel date", func(b *testing.B) {
		for b.Loop() {
			_ = validator.IsCompliantWithPeselString("1949-04-05", "49040501580")
		}
	})
}

func BenchmarkApply(b *testing.B) {
	for b.Loop() {
		_ = validator.Apply(
			validator.ValidPesel("pesel", "49040501580"),
			validator.ValidNIP("nip", "4375003084"),
			validator.ValidPostalCode("postal_code", "00-800"),
		)
	}
}
