package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"billkit/internal/billing"
	"billkit/internal/domain"
	"billkit/internal/lifecycle"
	"billkit/internal/port"
	"billkit/internal/schedule"
)

// CreateProfileInput is the DTO for creating a recurring profile.
type CreateProfileInput struct {
	Name             string                `json:"name" binding:"required"`
	CustomerName     string                `json:"customer_name" binding:"required"`
	BillingAddress   string                `json:"billing_address"`
	ShippingAddress  string                `json:"shipping_address"`
	PlaceOfSupply    string                `json:"place_of_supply"`
	LineItems        []domain.LineItem     `json:"line_items" binding:"required,min=1"`
	Discount         *domain.Discount      `json:"discount"`
	AdditionalTax    *domain.AdditionalTax `json:"additional_tax"`
	Adjustment       decimal.Decimal       `json:"adjustment"`
	Frequency        domain.Frequency      `json:"frequency" binding:"required"`
	StartDate        string                `json:"start_date" binding:"required"`
	EndDate          string                `json:"end_date"`
	NeverExpires     bool                  `json:"never_expires"`
	AutoSend         bool                  `json:"auto_send"`
	PaymentTermsDays int                   `json:"payment_terms_days"`
	InvoicePrefix    string                `json:"invoice_prefix"`
}

// TickOutcome is the result of one scheduler step for a stored profile.
type TickOutcome struct {
	Profile *domain.RecurringProfile `json:"profile"`
	Invoice *domain.Invoice          `json:"invoice,omitempty"`
	// Generated is true when this step created a new invoice row.
	Generated bool `json:"generated"`
	// Advanced is true when the profile moved on to a later generation date.
	Advanced bool `json:"advanced"`
}

// RunSummary reports what a RunDue sweep did.
type RunSummary struct {
	Profiles  int `json:"profiles"`
	Invoices  int `json:"invoices"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// RecurringService defines the recurring profile contract.
type RecurringService interface {
	Create(ctx context.Context, input CreateProfileInput) (*domain.RecurringProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error)
	List(ctx context.Context, status domain.ProfileStatus, offset, limit int) ([]domain.RecurringProfile, int, error)
	Pause(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error)
	Resume(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error)
	Stop(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error)
	// Generations lists the generation log of a profile, oldest first.
	Generations(ctx context.Context, id uuid.UUID) ([]domain.GenerationLogEntry, error)
	// Tick runs at most one generation step for the profile as of asOf.
	Tick(ctx context.Context, id uuid.UUID, asOf time.Time) (*TickOutcome, error)
	// RunDue sweeps all due profiles, generating up to the configured
	// catch-up count of missed invoices per profile.
	RunDue(ctx context.Context, asOf time.Time) (*RunSummary, error)
}

// RecurringConfig holds sweep limits for the recurring service.
type RecurringConfig struct {
	BatchSize  int
	MaxCatchUp int
}

type recurringService struct {
	profileRepo port.RecurringProfileRepository
	invoiceRepo port.InvoiceRepository
	logRepo     port.GenerationLogRepository
	settings    BillingSettings
	cfg         RecurringConfig
	logger      *zap.Logger
}

// NewRecurringService creates a new RecurringService implementation.
func NewRecurringService(
	profileRepo port.RecurringProfileRepository,
	invoiceRepo port.InvoiceRepository,
	logRepo port.GenerationLogRepository,
	settings BillingSettings,
	cfg RecurringConfig,
	logger *zap.Logger,
) RecurringService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxCatchUp <= 0 {
		cfg.MaxCatchUp = 1
	}
	return &recurringService{
		profileRepo: profileRepo,
		invoiceRepo: invoiceRepo,
		logRepo:     logRepo,
		settings:    settings,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *recurringService) Create(ctx context.Context, input CreateProfileInput) (*domain.RecurringProfile, error) {
	if !input.Frequency.Valid() {
		return nil, fmt.Errorf("frequency %q: %w", input.Frequency, domain.ErrInvalidFrequency)
	}
	start, err := parseDate("start_date", input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("end_date", input.EndDate)
	if err != nil {
		return nil, err
	}
	switch {
	case input.NeverExpires:
		end = nil
	case end == nil:
		return nil, fmt.Errorf("end_date required unless never_expires: %w", domain.ErrInvalidSchedule)
	case end.Before(start):
		return nil, fmt.Errorf("end_date before start_date: %w", domain.ErrInvalidSchedule)
	}
	if input.PaymentTermsDays < 0 {
		return nil, fmt.Errorf("payment_terms_days: %w", domain.ErrInvalidSchedule)
	}

	d := discountOf(input.Discount)
	// Reject templates that could never produce an invoice.
	if _, err := billing.ComputeTotals(billing.TotalsInput{
		LineItems:       input.LineItems,
		Discount:        d,
		AdditionalTax:   input.AdditionalTax,
		Adjustment:      input.Adjustment,
		SellerState:     s.settings.SellerState,
		PlaceOfSupply:   input.PlaceOfSupply,
		FallbackAddress: fallbackAddress(input.ShippingAddress, input.BillingAddress),
		Policy:          s.settings.JurisdictionPolicy,
	}); err != nil {
		return nil, err
	}

	p := &domain.RecurringProfile{
		ID:                 uuid.New(),
		Name:               input.Name,
		CustomerName:       input.CustomerName,
		BillingAddress:     input.BillingAddress,
		ShippingAddress:    input.ShippingAddress,
		PlaceOfSupply:      input.PlaceOfSupply,
		LineItems:          input.LineItems,
		DiscountValue:      d.Value,
		DiscountMode:       d.Mode,
		AdditionalTax:      input.AdditionalTax,
		Adjustment:         input.Adjustment,
		Frequency:          input.Frequency,
		StartDate:          start,
		EndDate:            end,
		NeverExpires:       input.NeverExpires,
		NextGenerationDate: start,
		GeneratedInvoices:  domain.UUIDList{},
		Status:             domain.ProfileStatusActive,
		AutoSend:           input.AutoSend,
		PaymentTermsDays:   input.PaymentTermsDays,
		InvoicePrefix:      strings.TrimSpace(input.InvoicePrefix),
		Version:            1,
	}
	if err := s.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("recurring profile created",
		zap.String("profile_id", p.ID.String()),
		zap.String("frequency", string(p.Frequency)),
		zap.Time("start_date", p.StartDate))
	return p, nil
}

func (s *recurringService) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

func (s *recurringService) Generations(ctx context.Context, id uuid.UUID) ([]domain.GenerationLogEntry, error) {
	if _, err := s.profileRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.logRepo.ListByProfile(ctx, id)
}

func (s *recurringService) List(ctx context.Context, status domain.ProfileStatus, offset, limit int) ([]domain.RecurringProfile, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("status %q: %w", status, domain.ErrInvalidStatus)
	}
	return s.profileRepo.List(ctx, status, offset, limit)
}

func (s *recurringService) Pause(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	return s.changeStatus(ctx, id, domain.ProfileStatusPaused)
}

func (s *recurringService) Resume(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	return s.changeStatus(ctx, id, domain.ProfileStatusActive)
}

func (s *recurringService) Stop(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	return s.changeStatus(ctx, id, domain.ProfileStatusCompleted)
}

func (s *recurringService) changeStatus(ctx context.Context, id uuid.UUID, requested domain.ProfileStatus) (*domain.RecurringProfile, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := lifecycle.TransitionProfile(p.Status, requested)
	if err != nil {
		return nil, err
	}
	if next == p.Status {
		return p, nil
	}
	from := p.Status
	p.Status = next
	if err := s.profileRepo.Update(ctx, p, p.Version); err != nil {
		return nil, err
	}
	s.logger.Info("recurring profile status changed",
		zap.String("profile_id", p.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(next)))
	return p, nil
}

func (s *recurringService) Tick(ctx context.Context, id uuid.UUID, asOf time.Time) (*TickOutcome, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.step(ctx, p, asOf)
}

func (s *recurringService) RunDue(ctx context.Context, asOf time.Time) (*RunSummary, error) {
	profiles, err := s.profileRepo.ListDue(ctx, schedule.DateOf(asOf), s.cfg.BatchSize)
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{Profiles: len(profiles)}
	for i := range profiles {
		p := &profiles[i]
		for n := 0; n < s.cfg.MaxCatchUp; n++ {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			out, err := s.step(ctx, p, asOf)
			if err != nil {
				if errors.Is(err, domain.ErrVersionConflict) {
					s.logger.Debug("profile updated concurrently, skipping",
						zap.String("profile_id", p.ID.String()))
				} else {
					summary.Failed++
					s.logger.Error("recurring generation failed",
						zap.String("profile_id", p.ID.String()),
						zap.Error(err))
				}
				break
			}
			if out.Generated {
				summary.Invoices++
			}
			if out.Profile.Status == domain.ProfileStatusCompleted && p.Status != domain.ProfileStatusCompleted {
				summary.Completed++
			}
			p = out.Profile
			if !out.Advanced || p.Status != domain.ProfileStatusActive {
				break
			}
		}
	}
	return summary, nil
}

// step runs schedule.Tick and persists its result. The (profile, date) pair is
// claimed in the generation log before the invoice is written, so a retried
// step reuses the invoice recorded by the first attempt.
func (s *recurringService) step(ctx context.Context, p *domain.RecurringProfile, asOf time.Time) (*TickOutcome, error) {
	res, err := schedule.Tick(*p, asOf, schedule.Config{
		SellerState: s.settings.SellerState,
		Policy:      s.settings.JurisdictionPolicy,
	})
	if err != nil {
		return nil, err
	}

	next := res.Profile
	if res.Invoice == nil {
		if next.Status == p.Status {
			return &TickOutcome{Profile: p}, nil
		}
		if err := s.profileRepo.Update(ctx, &next, p.Version); err != nil {
			return nil, err
		}
		s.logger.Info("recurring profile completed", zap.String("profile_id", next.ID.String()))
		return &TickOutcome{Profile: &next}, nil
	}

	inv := res.Invoice
	entry := &domain.GenerationLogEntry{
		ProfileID:      p.ID,
		GenerationDate: *inv.GenerationDate,
		InvoiceID:      inv.ID,
	}
	claimed, err := s.logRepo.Claim(ctx, entry)
	if err != nil {
		return nil, err
	}

	generated := true
	if !claimed {
		next.GeneratedInvoices[len(next.GeneratedInvoices)-1] = entry.InvoiceID
		existing, err := s.invoiceRepo.GetByID(ctx, entry.InvoiceID)
		switch {
		case err == nil:
			inv = existing
			generated = false
		case errors.Is(err, domain.ErrInvoiceNotFound):
			// Claimed earlier but the invoice write never landed.
			inv.ID = entry.InvoiceID
		default:
			return nil, err
		}
	}
	if generated {
		if err := s.invoiceRepo.Create(ctx, inv); err != nil {
			return nil, err
		}
	}

	if err := s.profileRepo.Update(ctx, &next, p.Version); err != nil {
		return nil, err
	}

	if generated {
		s.logger.Info("recurring invoice generated",
			zap.String("profile_id", next.ID.String()),
			zap.String("invoice_id", inv.ID.String()),
			zap.String("number", inv.Number),
			zap.Time("generation_date", entry.GenerationDate),
			zap.String("total", inv.Totals.Total.StringFixed(2)))
	} else {
		s.logger.Warn("generation already claimed, reusing invoice",
			zap.String("profile_id", next.ID.String()),
			zap.String("invoice_id", inv.ID.String()))
	}
	if inv.Totals.JurisdictionDefaulted {
		s.logger.Warn("place of supply not resolved, using default state",
			zap.String("profile_id", next.ID.String()),
			zap.String("state", inv.Totals.PlaceOfSupplyState))
	}
	return &TickOutcome{Profile: &next, Invoice: inv, Generated: generated, Advanced: true}, nil
}
