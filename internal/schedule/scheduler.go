package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"billkit/internal/billing"
	"billkit/internal/domain"
	"billkit/internal/lifecycle"
)

// Config carries the organisation settings a generated invoice needs.
type Config struct {
	SellerState string
	Policy      billing.JurisdictionPolicy
	// NewID returns the ID for a generated invoice; uuid.New when nil.
	NewID func() uuid.UUID
}

// TickResult is the outcome of one scheduler step for a profile.
type TickResult struct {
	Profile domain.RecurringProfile
	// Invoice is nil when nothing was due.
	Invoice *domain.Invoice
}

// ComputeNextGenerationDate returns the date of the next invoice to generate.
func ComputeNextGenerationDate(p *domain.RecurringProfile) (time.Time, error) {
	return Occurrence(p.StartDate, p.Frequency, p.GeneratedCount)
}

// ShouldGenerate reports whether an active profile is due on asOf and still
// inside its end date. Dates are compared as calendar days.
func ShouldGenerate(p *domain.RecurringProfile, asOf time.Time) bool {
	if p.Status != domain.ProfileStatusActive {
		return false
	}
	day := DateOf(asOf)
	if day.Before(DateOf(p.NextGenerationDate)) {
		return false
	}
	return p.NeverExpires || p.EndDate == nil || !day.After(DateOf(*p.EndDate))
}

// Expired reports whether a bounded profile has no generation dates left.
func Expired(p *domain.RecurringProfile) bool {
	if p.NeverExpires || p.EndDate == nil {
		return false
	}
	return DateOf(p.NextGenerationDate).After(DateOf(*p.EndDate))
}

// Tick runs one scheduler step. When the profile is due it computes totals for
// the stored template, builds the next invoice, and advances the profile. The
// input profile is not modified.
func Tick(p domain.RecurringProfile, asOf time.Time, cfg Config) (TickResult, error) {
	p.GeneratedInvoices = append(domain.UUIDList(nil), p.GeneratedInvoices...)

	if p.Status == domain.ProfileStatusActive && Expired(&p) {
		p.Status = domain.ProfileStatusCompleted
		return TickResult{Profile: p}, nil
	}
	if !ShouldGenerate(&p, asOf) {
		return TickResult{Profile: p}, nil
	}

	genDate := DateOf(p.NextGenerationDate)
	totals, err := billing.ComputeTotals(billing.TotalsInput{
		LineItems:       p.LineItems,
		Discount:        p.Discount(),
		AdditionalTax:   p.AdditionalTax,
		Adjustment:      p.Adjustment,
		SellerState:     cfg.SellerState,
		PlaceOfSupply:   p.PlaceOfSupply,
		FallbackAddress: fallbackAddress(p.ShippingAddress, p.BillingAddress),
		Policy:          cfg.Policy,
	})
	if err != nil {
		return TickResult{}, fmt.Errorf("profile %s: %w", p.ID, err)
	}

	newID := cfg.NewID
	if newID == nil {
		newID = uuid.New
	}
	profileID := p.ID
	inv := &domain.Invoice{
		ID:              newID(),
		Number:          InvoiceNumber(p.InvoicePrefix, genDate, p.GeneratedCount+1),
		ProfileID:       &profileID,
		GenerationDate:  &genDate,
		CustomerName:    p.CustomerName,
		BillingAddress:  p.BillingAddress,
		ShippingAddress: p.ShippingAddress,
		PlaceOfSupply:   p.PlaceOfSupply,
		IssueDate:       genDate,
		DueDate:         genDate.AddDate(0, 0, p.PaymentTermsDays),
		LineItems:       append(domain.LineItems(nil), p.LineItems...),
		DiscountValue:   p.DiscountValue,
		DiscountMode:    p.DiscountMode,
		AdditionalTax:   cloneAdditionalTax(p.AdditionalTax),
		Adjustment:      p.Adjustment,
		Totals:          totals,
		Status:          lifecycle.InitialStatus(p.AutoSend),
		Version:         1,
	}

	p.GeneratedInvoices = append(p.GeneratedInvoices, inv.ID)
	p.GeneratedCount++
	next, err := ComputeNextGenerationDate(&p)
	if err != nil {
		return TickResult{}, err
	}
	p.NextGenerationDate = next

	if Expired(&p) {
		status, err := lifecycle.TransitionProfile(p.Status, domain.ProfileStatusCompleted)
		if err != nil {
			return TickResult{}, err
		}
		p.Status = status
	}
	return TickResult{Profile: p, Invoice: inv}, nil
}

// InvoiceNumber formats the number of the seq-th invoice generated by a profile.
func InvoiceNumber(prefix string, date time.Time, seq int) string {
	if prefix == "" {
		prefix = "INV"
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, date.Format("20060102"), seq)
}

func fallbackAddress(shipping, billingAddr string) string {
	if shipping != "" {
		return shipping
	}
	return billingAddr
}

func cloneAdditionalTax(at *domain.AdditionalTax) *domain.AdditionalTax {
	if at == nil {
		return nil
	}
	c := *at
	return &c
}
