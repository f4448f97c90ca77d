// Package pricing computes invoice amounts. All arithmetic is decimal so
// currency values never pick up binary-float drift; rounding to the minor
// unit happens only at presentation, stored amounts stay exact.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Amounts is the result of pricing one order line.
type Amounts struct {
	PriceBeforeVAT decimal.Decimal
	VATAmount      decimal.Decimal
	TotalPrice     decimal.Decimal
}

// Compute derives the VAT amount and total price for quantity units at
// unitPrice with vatRatePercent applied. Pure function; callers validate
// inputs (quantity >= 1, unitPrice >= 0, vatRatePercent >= 0).
func Compute(unitPrice decimal.Decimal, quantity int, vatRatePercent decimal.Decimal) Amounts {
	priceBeforeVAT := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	vatAmount := priceBeforeVAT.Mul(vatRatePercent).Div(hundred)

	return Amounts{
		PriceBeforeVAT: priceBeforeVAT,
		VATAmount:      vatAmount,
		TotalPrice:     priceBeforeVAT.Add(vatAmount),
	}
}

// Present formats d rounded to the currency's minor unit (2 decimal
// places) for display. Storage keeps the unrounded value.
func Present(d decimal.Decimal) string {
	return d.StringFixed(2)
}
