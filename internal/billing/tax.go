package billing

import (
	"github.com/shopspring/decimal"

	"billkit/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// RoundMoney rounds to paise, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// SplitTax computes GST on a taxable amount at ratePercent and splits it by supply type.
func SplitTax(taxable decimal.Decimal, supply domain.SupplyType, ratePercent decimal.Decimal) domain.TaxBreakdown {
	return SplitTaxAmount(taxable.Mul(ratePercent).Div(hundred), supply)
}

// SplitTaxAmount splits an unrounded GST amount into CGST+SGST or IGST.
// IGST is the tax rounded to paise. CGST and SGST are exact halves of that
// amount and may carry a half paisa, so cgst+sgst always equals igst.
func SplitTaxAmount(tax decimal.Decimal, supply domain.SupplyType) domain.TaxBreakdown {
	igst := RoundMoney(tax)
	if supply == domain.SupplyIntraState {
		half := igst.Div(two)
		return domain.TaxBreakdown{CGST: half, SGST: half, IGST: decimal.Zero}
	}
	return domain.TaxBreakdown{CGST: decimal.Zero, SGST: decimal.Zero, IGST: igst}
}
