package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"billkit/internal/domain"
)

// InvoiceFilter narrows invoice listings. Zero values match everything.
type InvoiceFilter struct {
	Status    domain.InvoiceStatus
	ProfileID *uuid.UUID
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error)
	// UpdateStatus persists inv.Status only if the stored version still equals
	// expectedVersion, and bumps inv.Version on success.
	UpdateStatus(ctx context.Context, inv *domain.Invoice, expectedVersion int) error
	// ListOverdueCandidates returns open invoices whose due date is before asOf.
	ListOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]domain.Invoice, error)
}

// RecurringProfileRepository defines the contract for recurring profile persistence.
type RecurringProfileRepository interface {
	Create(ctx context.Context, p *domain.RecurringProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error)
	List(ctx context.Context, status domain.ProfileStatus, offset, limit int) ([]domain.RecurringProfile, int, error)
	// Update is a compare-and-swap on version; ErrVersionConflict when another
	// writer got there first.
	Update(ctx context.Context, p *domain.RecurringProfile, expectedVersion int) error
	// ListDue returns active profiles whose next generation date is on or before asOf.
	ListDue(ctx context.Context, asOf time.Time, limit int) ([]domain.RecurringProfile, error)
}

// GenerationLogRepository records which (profile, date) pairs already produced an invoice.
type GenerationLogRepository interface {
	// Claim inserts the entry. It returns false when the pair was claimed
	// earlier, in which case entry.InvoiceID is replaced with the stored one.
	Claim(ctx context.Context, entry *domain.GenerationLogEntry) (bool, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.GenerationLogEntry, error)
}
