package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice string
		quantity  int
		vatRate   string
		wantVAT   string
		wantTotal string
	}{
		{name: "widget at 18 percent", unitPrice: "100", quantity: 2, vatRate: "18", wantVAT: "36", wantTotal: "236"},
		{name: "single unit", unitPrice: "99.99", quantity: 1, vatRate: "20", wantVAT: "19.998", wantTotal: "119.988"},
		{name: "zero vat", unitPrice: "50", quantity: 3, vatRate: "0", wantVAT: "0", wantTotal: "150"},
		{name: "zero price", unitPrice: "0", quantity: 10, vatRate: "18", wantVAT: "0", wantTotal: "0"},
		{name: "fractional rate", unitPrice: "10.50", quantity: 4, vatRate: "7.7", wantVAT: "3.234", wantTotal: "45.234"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(decimal.RequireFromString(tc.unitPrice), tc.quantity, decimal.RequireFromString(tc.vatRate))

			assert.True(t, got.VATAmount.Equal(decimal.RequireFromString(tc.wantVAT)),
				"vat amount = %s, want %s", got.VATAmount, tc.wantVAT)
			assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString(tc.wantTotal)),
				"total price = %s, want %s", got.TotalPrice, tc.wantTotal)
		})
	}
}

func TestComputeTotalIsSumOfParts(t *testing.T) {
	prices := []string{"0", "0.01", "1", "19.99", "100", "12345.67"}
	rates := []string{"0", "5", "7.7", "18", "21"}

	for _, p := range prices {
		for _, r := range rates {
			for _, qty := range []int{1, 2, 7, 100} {
				got := Compute(decimal.RequireFromString(p), qty, decimal.RequireFromString(r))
				assert.True(t, got.TotalPrice.Equal(got.PriceBeforeVAT.Add(got.VATAmount)),
					"price=%s qty=%d rate=%s", p, qty, r)
			}
		}
	}
}

func TestPresentRoundsToMinorUnit(t *testing.T) {
	assert.Equal(t, "36.00", Present(decimal.RequireFromString("36")))
	assert.Equal(t, "3.23", Present(decimal.RequireFromString("3.234")))
	assert.Equal(t, "3.24", Present(decimal.RequireFromString("3.235")))
}
