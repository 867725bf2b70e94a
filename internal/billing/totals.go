package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"billkit/internal/domain"
)

// TotalsInput is everything ComputeTotals needs for one invoice.
type TotalsInput struct {
	LineItems     []domain.LineItem
	Discount      domain.Discount
	AdditionalTax *domain.AdditionalTax
	Adjustment    decimal.Decimal

	// SellerState defaults to LegacySellerState when empty.
	SellerState string
	// PlaceOfSupply is the explicit place-of-supply address; FallbackAddress
	// (shipping, else billing) is used when it is blank.
	PlaceOfSupply   string
	FallbackAddress string
	Policy          JurisdictionPolicy
}

// ComputeTotals runs the full pipeline: aggregate line items, apply the
// invoice-level discount, split GST on the discounted base, apply TDS/TCS and
// the adjustment, and render the total in words.
//
// total = sub_total - discount + tax ± additional_tax + adjustment, rounded to paise.
// A negative total is returned with NegativeTotal set.
func ComputeTotals(in TotalsInput) (domain.InvoiceTotals, error) {
	if err := ValidateLineItems(in.LineItems); err != nil {
		return domain.InvoiceTotals{}, err
	}
	if err := ValidateDiscount(in.Discount); err != nil {
		return domain.InvoiceTotals{}, err
	}

	sellerState := in.SellerState
	if sellerState == "" {
		sellerState = LegacySellerState
	}
	if !ValidStateCode(sellerState) {
		return domain.InvoiceTotals{}, fmt.Errorf("seller state %q: %w", sellerState, domain.ErrInvalidStateCode)
	}

	supply := ClassifySupply(sellerState, in.PlaceOfSupply, in.FallbackAddress)
	if supply.Defaulted && in.Policy == JurisdictionPolicyReject {
		return domain.InvoiceTotals{}, domain.ErrUnresolvableJurisdiction
	}

	agg := AggregateLineItems(in.LineItems)
	subTotal := RoundMoney(agg.SubTotal)

	discount := ApplyDiscount(subTotal, in.Discount)
	taxable := subTotal.Sub(discount.Amount)

	tax := decimal.Zero
	if agg.SubTotal.IsPositive() {
		tax = agg.TotalTax.Mul(taxable).Div(agg.SubTotal)
	}
	breakdown := SplitTaxAmount(tax, supply.Type)
	taxAmount := breakdown.Total()

	additional, err := ResolveAdditionalTax(taxable, in.AdditionalTax)
	if err != nil {
		return domain.InvoiceTotals{}, err
	}
	var kind domain.AdditionalTaxKind
	if in.AdditionalTax != nil && !additional.IsZero() {
		kind = in.AdditionalTax.Kind
	}

	total := RoundMoney(taxable.
		Add(taxAmount).
		Add(SignedAdditionalTax(kind, additional)).
		Add(in.Adjustment))

	return domain.InvoiceTotals{
		SubTotal:                      subTotal,
		TotalQuantity:                 agg.TotalQuantity,
		DiscountAmount:                discount.Amount,
		TaxableAmount:                 taxable,
		TaxAmount:                     taxAmount,
		TaxBreakdown:                  breakdown,
		SupplyType:                    supply.Type,
		SellerState:                   sellerState,
		PlaceOfSupplyState:            supply.PlaceOfSupplyState,
		JurisdictionDefaulted:         supply.Defaulted,
		AdditionalTaxKind:             kind,
		AdditionalTaxAmount:           additional,
		Adjustment:                    in.Adjustment,
		Total:                         total,
		NegativeTotal:                 total.IsNegative(),
		DiscountClamped:               discount.Clamped,
		DiscountAppliesAtInvoiceLevel: true,
		AmountInWords:                 AmountToWords(total),
	}, nil
}
