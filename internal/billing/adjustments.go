package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"billkit/internal/domain"
)

// DiscountResult is the discount actually applied to a subtotal.
type DiscountResult struct {
	Amount decimal.Decimal
	// Clamped is true when the requested discount fell outside [0, subTotal].
	Clamped bool
}

// ApplyDiscount converts an invoice-level discount into an amount, clamped so
// the taxable base never goes negative.
func ApplyDiscount(subTotal decimal.Decimal, d domain.Discount) DiscountResult {
	amount := d.Value
	if d.Mode == domain.DiscountModePercentage {
		amount = subTotal.Mul(d.Value).Div(hundred)
	}
	amount = RoundMoney(amount)

	switch {
	case amount.IsNegative():
		return DiscountResult{Amount: decimal.Zero, Clamped: true}
	case amount.GreaterThan(subTotal):
		return DiscountResult{Amount: subTotal, Clamped: true}
	}
	return DiscountResult{Amount: amount}
}

// ValidateDiscount rejects discounts that indicate a caller bug.
func ValidateDiscount(d domain.Discount) error {
	if d.Value.IsNegative() {
		return fmt.Errorf("discount.value: %w", domain.ErrNegativeAmount)
	}
	switch d.Mode {
	case domain.DiscountModePercentage, domain.DiscountModeFixed:
		return nil
	case "":
		if d.Value.IsZero() {
			return nil
		}
	}
	return fmt.Errorf("discount.mode %q: %w", d.Mode, domain.ErrInvalidDiscount)
}

// ResolveAdditionalTax returns the TDS/TCS magnitude for a taxable base.
// An explicit Amount wins; otherwise the amount is taxable × RatePercent / 100.
// The result is always non-negative; use SignedAdditionalTax for the effect on the total.
func ResolveAdditionalTax(taxable decimal.Decimal, at *domain.AdditionalTax) (decimal.Decimal, error) {
	if at == nil {
		return decimal.Zero, nil
	}
	if at.Kind == "" {
		if at.Amount.IsZero() && at.RatePercent.IsZero() {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("additional_tax.kind missing: %w", domain.ErrInvalidAdditionalTax)
	}
	if at.Kind != domain.AdditionalTaxTDS && at.Kind != domain.AdditionalTaxTCS {
		return decimal.Zero, fmt.Errorf("additional_tax.kind %q: %w", at.Kind, domain.ErrInvalidAdditionalTax)
	}
	if at.Amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("additional_tax.amount: %w", domain.ErrNegativeAmount)
	}
	if at.RatePercent.IsNegative() || at.RatePercent.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("additional_tax.rate_percent: %w", domain.ErrInvalidTaxRate)
	}

	if at.Amount.IsZero() && at.RatePercent.IsZero() {
		return decimal.Zero, fmt.Errorf("additional_tax %s: %w", at.Kind, domain.ErrAdditionalTaxAmountMissing)
	}

	amount := at.Amount
	if amount.IsZero() {
		amount = taxable.Mul(at.RatePercent).Div(hundred)
	}
	return RoundMoney(amount), nil
}

// SignedAdditionalTax applies the sign convention: TDS reduces the total, TCS increases it.
func SignedAdditionalTax(kind domain.AdditionalTaxKind, amount decimal.Decimal) decimal.Decimal {
	if kind == domain.AdditionalTaxTDS {
		return amount.Neg()
	}
	return amount
}
