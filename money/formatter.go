// Package money renders integer minor-unit amounts as localized currency
// strings. All arithmetic stays in cents; formatting is presentation only.
package money

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
)

// Defaults match the storefront locale: Euro, Italian-style separators.
const (
	DefaultCurrency = stripe.CurrencyEUR
	DefaultSymbol   = "€"
	DefaultThousand = "."
	DefaultDecimal  = ","
)

var centsPerUnit = decimal.NewFromInt(100)

// Options configure a Formatter. Zero values fall back to the defaults above.
type Options struct {
	Currency stripe.Currency
	Symbol   string
	Thousand string
	Decimal  string
}

// Formatter turns cents into a currency string for one configured locale.
type Formatter struct {
	currency stripe.Currency
	ac       accounting.Accounting
}

func NewFormatter(opts Options) *Formatter {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.Symbol == "" {
		opts.Symbol = DefaultSymbol
	}
	if opts.Thousand == "" {
		opts.Thousand = DefaultThousand
	}
	if opts.Decimal == "" {
		opts.Decimal = DefaultDecimal
	}
	return &Formatter{
		currency: opts.Currency,
		ac: accounting.Accounting{
			Symbol:    opts.Symbol,
			Precision: 2,
			Thousand:  opts.Thousand,
			Decimal:   opts.Decimal,
		},
	}
}

// Format renders a cents amount, e.g. 2999 -> "€29,99" with the defaults.
func (f *Formatter) Format(cents int64) string {
	return f.ac.FormatMoneyDecimal(decimal.NewFromInt(cents).Div(centsPerUnit))
}

// Zero is the formatted representation of an empty amount.
func (f *Formatter) Zero() string {
	return f.Format(0)
}

func (f *Formatter) Currency() stripe.Currency {
	return f.currency
}
