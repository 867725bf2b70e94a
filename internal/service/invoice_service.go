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

// ComputeInput is the DTO for computing invoice totals without persisting anything.
type ComputeInput struct {
	LineItems       []domain.LineItem     `json:"line_items"`
	Discount        *domain.Discount      `json:"discount"`
	AdditionalTax   *domain.AdditionalTax `json:"additional_tax"`
	Adjustment      decimal.Decimal       `json:"adjustment"`
	PlaceOfSupply   string                `json:"place_of_supply"`
	BillingAddress  string                `json:"billing_address"`
	ShippingAddress string                `json:"shipping_address"`
}

// CreateInvoiceInput is the DTO for creating an invoice.
type CreateInvoiceInput struct {
	ComputeInput
	Number       string `json:"number"`
	CustomerName string `json:"customer_name" binding:"required"`
	// IssueDate defaults to today; DueDate defaults to IssueDate + PaymentTermsDays.
	IssueDate        string `json:"issue_date"`
	DueDate          string `json:"due_date"`
	PaymentTermsDays int    `json:"payment_terms_days"`
	SendImmediately  bool   `json:"send_immediately"`
}

// TransitionInput is the DTO for an invoice status change.
type TransitionInput struct {
	Status domain.InvoiceStatus `json:"status" binding:"required"`
	// ExpectedVersion, when set, must match the stored version.
	ExpectedVersion *int `json:"expected_version"`
}

// InvoiceService defines the invoice computation and lifecycle contract.
type InvoiceService interface {
	Compute(ctx context.Context, input ComputeInput) (*domain.InvoiceTotals, error)
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, input TransitionInput) (*domain.Invoice, error)
	// MarkOverdue moves open invoices past their due date to overdue and
	// returns how many were updated.
	MarkOverdue(ctx context.Context, asOf time.Time, limit int) (int, error)
}

type invoiceService struct {
	repo     port.InvoiceRepository
	clock    port.Clock
	settings BillingSettings
	machine  lifecycle.Machine
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository, clock port.Clock, settings BillingSettings, logger *zap.Logger) InvoiceService {
	return &invoiceService{
		repo:     repo,
		clock:    clock,
		settings: settings,
		machine:  lifecycle.Machine{Unchecked: settings.UncheckedTransitions},
		logger:   logger,
	}
}

func (s *invoiceService) Compute(_ context.Context, input ComputeInput) (*domain.InvoiceTotals, error) {
	totals, err := s.computeTotals(input)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *invoiceService) computeTotals(input ComputeInput) (domain.InvoiceTotals, error) {
	totals, err := billing.ComputeTotals(billing.TotalsInput{
		LineItems:       input.LineItems,
		Discount:        discountOf(input.Discount),
		AdditionalTax:   input.AdditionalTax,
		Adjustment:      input.Adjustment,
		SellerState:     s.settings.SellerState,
		PlaceOfSupply:   input.PlaceOfSupply,
		FallbackAddress: fallbackAddress(input.ShippingAddress, input.BillingAddress),
		Policy:          s.settings.JurisdictionPolicy,
	})
	if err != nil {
		return domain.InvoiceTotals{}, err
	}
	if totals.JurisdictionDefaulted {
		s.logger.Warn("place of supply not resolved, using default state",
			zap.String("place_of_supply", input.PlaceOfSupply),
			zap.String("state", totals.PlaceOfSupplyState))
	}
	if totals.NegativeTotal {
		s.logger.Warn("invoice total is negative", zap.String("total", totals.Total.StringFixed(2)))
	}
	return totals, nil
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	totals, err := s.computeTotals(input.ComputeInput)
	if err != nil {
		return nil, err
	}

	issue := schedule.DateOf(s.clock.Now())
	if input.IssueDate != "" {
		if issue, err = parseDate("issue_date", input.IssueDate); err != nil {
			return nil, err
		}
	}
	due := issue.AddDate(0, 0, input.PaymentTermsDays)
	if input.DueDate != "" {
		if due, err = parseDate("due_date", input.DueDate); err != nil {
			return nil, err
		}
	}
	if due.Before(issue) {
		return nil, fmt.Errorf("due_date before issue_date: %w", domain.ErrInvalidDate)
	}

	d := discountOf(input.Discount)
	inv := &domain.Invoice{
		ID:              uuid.New(),
		Number:          strings.TrimSpace(input.Number),
		CustomerName:    input.CustomerName,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		PlaceOfSupply:   input.PlaceOfSupply,
		IssueDate:       issue,
		DueDate:         due,
		LineItems:       input.LineItems,
		DiscountValue:   d.Value,
		DiscountMode:    d.Mode,
		AdditionalTax:   input.AdditionalTax,
		Adjustment:      input.Adjustment,
		Totals:          totals,
		Status:          lifecycle.InitialStatus(input.SendImmediately),
		Version:         1,
	}
	if inv.Number == "" {
		inv.Number = fmt.Sprintf("INV-%s-%s", issue.Format("20060102"), strings.ToUpper(inv.ID.String()[:8]))
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.logger.Info("invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("number", inv.Number),
		zap.String("status", string(inv.Status)))
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("status %q: %w", filter.Status, domain.ErrInvalidStatus)
	}
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *invoiceService) TransitionStatus(ctx context.Context, id uuid.UUID, input TransitionInput) (*domain.Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.ExpectedVersion != nil && *input.ExpectedVersion != inv.Version {
		return nil, domain.ErrVersionConflict
	}

	next, err := s.machine.Transition(inv.Status, input.Status)
	if err != nil {
		return nil, err
	}
	if next == inv.Status {
		return inv, nil
	}

	from := inv.Status
	inv.Status = next
	if err := s.repo.UpdateStatus(ctx, inv, inv.Version); err != nil {
		return nil, err
	}
	s.logger.Info("invoice status changed",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(next)))
	return inv, nil
}

func (s *invoiceService) MarkOverdue(ctx context.Context, asOf time.Time, limit int) (int, error) {
	candidates, err := s.repo.ListOverdueCandidates(ctx, schedule.DateOf(asOf), limit)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range candidates {
		inv := &candidates[i]
		next, err := s.machine.Transition(inv.Status, domain.InvoiceStatusOverdue)
		if err != nil || next == inv.Status {
			continue
		}
		inv.Status = next
		if err := s.repo.UpdateStatus(ctx, inv, inv.Version); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				s.logger.Debug("overdue sweep lost race", zap.String("invoice_id", inv.ID.String()))
				continue
			}
			return updated, err
		}
		updated++
	}
	if updated > 0 {
		s.logger.Info("invoices marked overdue", zap.Int("count", updated))
	}
	return updated, nil
}
