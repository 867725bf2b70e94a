package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"billkit/internal/billing"
	"billkit/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitTax_IntraState(t *testing.T) {
	b := billing.SplitTax(dec("1000"), domain.SupplyIntraState, dec("18"))
	assert.True(t, dec("90").Equal(b.CGST), "cgst = %s", b.CGST)
	assert.True(t, dec("90").Equal(b.SGST), "sgst = %s", b.SGST)
	assert.True(t, b.IGST.IsZero())
}

func TestSplitTax_InterState(t *testing.T) {
	b := billing.SplitTax(dec("1000"), domain.SupplyInterState, dec("18"))
	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, dec("180").Equal(b.IGST), "igst = %s", b.IGST)
}

func TestSplitTax_SupplyTypesAgree(t *testing.T) {
	amounts := []string{"0", "0.01", "0.03", "1", "9.99", "33.33", "99.995", "1000", "1234567.89", "0.05"}
	rates := []string{"0", "0.25", "3", "5", "12", "18", "28", "100"}
	for _, a := range amounts {
		for _, r := range rates {
			intra := billing.SplitTax(dec(a), domain.SupplyIntraState, dec(r))
			inter := billing.SplitTax(dec(a), domain.SupplyInterState, dec(r))

			assert.True(t, intra.CGST.Equal(intra.SGST), "cgst != sgst for %s @ %s", a, r)
			assert.True(t, intra.CGST.Add(intra.SGST).Equal(inter.IGST),
				"cgst+sgst (%s) != igst (%s) for %s @ %s", intra.CGST.Add(intra.SGST), inter.IGST, a, r)
			assert.True(t, intra.IGST.IsZero())
			assert.True(t, inter.CGST.IsZero() && inter.SGST.IsZero())
		}
	}
}

func TestSplitTaxAmount_HalvesRoundedTax(t *testing.T) {
	// A single paisa of tax splits into two half-paise shares.
	b := billing.SplitTaxAmount(dec("0.01"), domain.SupplyIntraState)
	assert.True(t, dec("0.005").Equal(b.CGST), "cgst = %s", b.CGST)
	assert.True(t, dec("0.005").Equal(b.SGST), "sgst = %s", b.SGST)

	b = billing.SplitTaxAmount(dec("0.01"), domain.SupplyInterState)
	assert.True(t, dec("0.01").Equal(b.IGST), "igst = %s", b.IGST)
}

func TestSplitTax_IGSTIsRoundedTaxableTimesRate(t *testing.T) {
	tests := []struct {
		taxable, rate, igst string
	}{
		{"100.03", "18", "18.01"},
		{"0.05", "18", "0.01"},
		{"0.03", "28", "0.01"},
		{"0.01", "18", "0.00"},
		{"33.33", "12", "4.00"},
		{"1234567.89", "5", "61728.39"},
	}
	for _, tt := range tests {
		t.Run(tt.taxable+"@"+tt.rate, func(t *testing.T) {
			want := billing.RoundMoney(dec(tt.taxable).Mul(dec(tt.rate)).Div(dec("100")))
			assert.Equal(t, tt.igst, want.StringFixed(2))

			inter := billing.SplitTax(dec(tt.taxable), domain.SupplyInterState, dec(tt.rate))
			assert.True(t, want.Equal(inter.IGST), "igst = %s", inter.IGST)

			intra := billing.SplitTax(dec(tt.taxable), domain.SupplyIntraState, dec(tt.rate))
			assert.True(t, intra.CGST.Equal(intra.SGST))
			assert.True(t, want.Equal(intra.CGST.Add(intra.SGST)), "cgst+sgst = %s", intra.CGST.Add(intra.SGST))
		})
	}
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "1.01", billing.RoundMoney(dec("1.005")).StringFixed(2))
	assert.Equal(t, "1.00", billing.RoundMoney(dec("1.004")).StringFixed(2))
	assert.Equal(t, "-1.01", billing.RoundMoney(dec("-1.005")).StringFixed(2))
}
