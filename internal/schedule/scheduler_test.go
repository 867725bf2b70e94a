package schedule_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billkit/internal/billing"
	"billkit/internal/domain"
	"billkit/internal/schedule"
)

func monthlyProfile(start time.Time) domain.RecurringProfile {
	return domain.RecurringProfile{
		ID:             uuid.New(),
		Name:           "Retainer",
		CustomerName:   "Acme Traders",
		BillingAddress: "Sector 18, Noida, Uttar Pradesh",
		LineItems: domain.LineItems{{
			Description:    "Monthly retainer",
			Quantity:       decimal.NewFromInt(1),
			UnitRate:       decimal.NewFromInt(1000),
			TaxRatePercent: decimal.NewFromInt(18),
		}},
		Frequency:          domain.FrequencyMonthly,
		StartDate:          start,
		NeverExpires:       true,
		NextGenerationDate: start,
		Status:             domain.ProfileStatusActive,
		PaymentTermsDays:   15,
		InvoicePrefix:      "RET",
	}
}

func TestShouldGenerate(t *testing.T) {
	p := monthlyProfile(date(2024, 1, 31))

	assert.False(t, schedule.ShouldGenerate(&p, date(2024, 1, 30)))
	assert.True(t, schedule.ShouldGenerate(&p, date(2024, 1, 31)))
	assert.True(t, schedule.ShouldGenerate(&p, time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)))

	paused := p
	paused.Status = domain.ProfileStatusPaused
	assert.False(t, schedule.ShouldGenerate(&paused, date(2024, 2, 1)))

	bounded := p
	end := date(2024, 3, 1)
	bounded.NeverExpires = false
	bounded.EndDate = &end
	assert.True(t, schedule.ShouldGenerate(&bounded, date(2024, 3, 1)))
	assert.False(t, schedule.ShouldGenerate(&bounded, date(2024, 3, 2)))
}

func TestTick_GeneratesInvoice(t *testing.T) {
	p := monthlyProfile(date(2024, 1, 31))
	invID := uuid.New()

	res, err := schedule.Tick(p, date(2024, 1, 31), schedule.Config{
		SellerState: "29",
		NewID:       func() uuid.UUID { return invID },
	})
	require.NoError(t, err)
	require.NotNil(t, res.Invoice)

	inv := res.Invoice
	assert.Equal(t, invID, inv.ID)
	assert.Equal(t, "RET-20240131-001", inv.Number)
	assert.Equal(t, p.ID, *inv.ProfileID)
	assert.Equal(t, date(2024, 1, 31), *inv.GenerationDate)
	assert.Equal(t, date(2024, 2, 15), inv.DueDate)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, "1180.00", inv.Totals.Total.StringFixed(2))
	assert.Equal(t, domain.SupplyInterState, inv.Totals.SupplyType)

	assert.Equal(t, 1, res.Profile.GeneratedCount)
	assert.Equal(t, domain.UUIDList{invID}, res.Profile.GeneratedInvoices)
	assert.Equal(t, date(2024, 2, 29), res.Profile.NextGenerationDate)
	assert.Equal(t, domain.ProfileStatusActive, res.Profile.Status)

	// The caller's profile is untouched.
	assert.Equal(t, 0, p.GeneratedCount)
	assert.Empty(t, p.GeneratedInvoices)
}

func TestTick_AutoSend(t *testing.T) {
	p := monthlyProfile(date(2024, 1, 1))
	p.AutoSend = true

	res, err := schedule.Tick(p, date(2024, 1, 1), schedule.Config{})
	require.NoError(t, err)
	require.NotNil(t, res.Invoice)
	assert.Equal(t, domain.InvoiceStatusSent, res.Invoice.Status)
}

func TestTick_Idempotent(t *testing.T) {
	p := monthlyProfile(date(2024, 1, 1))
	asOf := date(2024, 1, 10)

	first, err := schedule.Tick(p, asOf, schedule.Config{})
	require.NoError(t, err)
	require.NotNil(t, first.Invoice)

	second, err := schedule.Tick(first.Profile, asOf, schedule.Config{})
	require.NoError(t, err)
	assert.Nil(t, second.Invoice)
	assert.Equal(t, first.Profile, second.Profile)
}

func TestTick_MonthEndSequence(t *testing.T) {
	p := monthlyProfile(date(2023, 1, 31))
	var dates []time.Time
	for _, asOf := range []time.Time{date(2023, 1, 31), date(2023, 2, 28), date(2023, 3, 31), date(2023, 4, 30)} {
		res, err := schedule.Tick(p, asOf, schedule.Config{})
		require.NoError(t, err)
		require.NotNil(t, res.Invoice, "as of %s", asOf)
		dates = append(dates, *res.Invoice.GenerationDate)
		p = res.Profile
	}
	assert.Equal(t, []time.Time{date(2023, 1, 31), date(2023, 2, 28), date(2023, 3, 31), date(2023, 4, 30)}, dates)
}

func TestTick_CompletesAtEndDate(t *testing.T) {
	p := monthlyProfile(date(2024, 1, 15))
	end := date(2024, 2, 20)
	p.NeverExpires = false
	p.EndDate = &end

	res, err := schedule.Tick(p, date(2024, 1, 15), schedule.Config{})
	require.NoError(t, err)
	require.NotNil(t, res.Invoice)
	assert.Equal(t, domain.ProfileStatusActive, res.Profile.Status)

	res, err = schedule.Tick(res.Profile, date(2024, 2, 15), schedule.Config{})
	require.NoError(t, err)
	require.NotNil(t, res.Invoice)
	assert.Equal(t, date(2024, 3, 15), res.Profile.NextGenerationDate)
	assert.Equal(t, domain.ProfileStatusCompleted, res.Profile.Status)

	res, err = schedule.Tick(res.Profile, date(2024, 3, 15), schedule.Config{})
	require.NoError(t, err)
	assert.Nil(t, res.Invoice)
}

func TestTick_NotDue(t *testing.T) {
	p := monthlyProfile(date(2024, 6, 1))
	res, err := schedule.Tick(p, date(2024, 5, 31), schedule.Config{})
	require.NoError(t, err)
	assert.Nil(t, res.Invoice)
	assert.Equal(t, 0, res.Profile.GeneratedCount)
}

func TestTick_PropagatesComputationErrors(t *testing.T) {
	p := monthlyProfile(date(2024, 1, 1))
	p.BillingAddress = "Unknown place"

	_, err := schedule.Tick(p, date(2024, 1, 1), schedule.Config{Policy: billing.JurisdictionPolicyReject})
	assert.ErrorIs(t, err, domain.ErrUnresolvableJurisdiction)
}

func TestComputeNextGenerationDate(t *testing.T) {
	p := monthlyProfile(date(2024, 1, 31))
	p.GeneratedCount = 2
	next, err := schedule.ComputeNextGenerationDate(&p)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 31), next)
}

func TestInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-20240105-012", schedule.InvoiceNumber("", date(2024, 1, 5), 12))
	assert.Equal(t, "RET-20240105-001", schedule.InvoiceNumber("RET", date(2024, 1, 5), 1))
}
