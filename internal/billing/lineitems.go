package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"billkit/internal/domain"
)

// LineSummary is the per-line view used for display numbering.
type LineSummary struct {
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
}

// Aggregate holds the sums over an ordered list of line items.
type Aggregate struct {
	SubTotal      decimal.Decimal
	TotalQuantity decimal.Decimal
	TotalTax      decimal.Decimal
	Lines         []LineSummary
}

// AggregateLineItems sums amounts, quantities and line taxes. The sums are
// exact (unrounded); Lines preserves input order with 1-based positions.
func AggregateLineItems(items []domain.LineItem) Aggregate {
	agg := Aggregate{
		SubTotal:      decimal.Zero,
		TotalQuantity: decimal.Zero,
		TotalTax:      decimal.Zero,
		Lines:         make([]LineSummary, 0, len(items)),
	}
	for i, item := range items {
		amount := item.Amount()
		tax := item.TaxAmount()
		agg.SubTotal = agg.SubTotal.Add(amount)
		agg.TotalQuantity = agg.TotalQuantity.Add(item.Quantity)
		agg.TotalTax = agg.TotalTax.Add(tax)
		agg.Lines = append(agg.Lines, LineSummary{
			Position:    i + 1,
			Description: item.Description,
			Amount:      amount,
			TaxAmount:   tax,
		})
	}
	return agg
}

// ValidateLineItems checks the non-negativity and tax-rate preconditions.
func ValidateLineItems(items []domain.LineItem) error {
	for i, item := range items {
		if item.Quantity.IsNegative() {
			return fmt.Errorf("line_items[%d].quantity: %w", i, domain.ErrNegativeAmount)
		}
		if item.UnitRate.IsNegative() {
			return fmt.Errorf("line_items[%d].unit_rate: %w", i, domain.ErrNegativeAmount)
		}
		if item.TaxRatePercent.IsNegative() || item.TaxRatePercent.GreaterThan(hundred) {
			return fmt.Errorf("line_items[%d].tax_rate_percent: %w", i, domain.ErrInvalidTaxRate)
		}
	}
	return nil
}
