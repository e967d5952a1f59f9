package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v79"
)

func TestFormatDefaults(t *testing.T) {
	f := NewFormatter(Options{})

	cases := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "€0,00"},
		{"under_a_euro", 99, "€0,99"},
		{"typical", 2999, "€29,99"},
		{"round", 3500, "€35,00"},
		{"thousands", 123456, "€1.234,56"},
		{"millions", 123456789, "€1.234.567,89"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.Format(tc.cents))
		})
	}
}

func TestFormatCustomLocale(t *testing.T) {
	f := NewFormatter(Options{
		Currency: stripe.CurrencyUSD,
		Symbol:   "$",
		Thousand: ",",
		Decimal:  ".",
	})

	assert.Equal(t, "$1,234.56", f.Format(123456))
	assert.Equal(t, stripe.CurrencyUSD, f.Currency())
}

func TestZeroMatchesFormatOfZero(t *testing.T) {
	f := NewFormatter(Options{})
	assert.Equal(t, f.Format(0), f.Zero())
}
