package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type recurringProfileRepo struct {
	db *sqlx.DB
}

// NewRecurringProfileRepo creates a new PostgreSQL-backed RecurringProfileRepository.
func NewRecurringProfileRepo(db *sqlx.DB) port.RecurringProfileRepository {
	return &recurringProfileRepo{db: db}
}

func (r *recurringProfileRepo) Create(ctx context.Context, p *domain.RecurringProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Version == 0 {
		p.Version = 1
	}
	if p.GeneratedInvoices == nil {
		p.GeneratedInvoices = domain.UUIDList{}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO recurring_profiles (
			id, name, customer_name, billing_address, shipping_address, place_of_supply,
			line_items, discount_value, discount_mode, additional_tax, adjustment,
			frequency, start_date, end_date, never_expires, next_generation_date,
			generated_count, generated_invoices, status, auto_send, payment_terms_days,
			invoice_prefix, version, created_at, updated_at
		) VALUES (
			:id, :name, :customer_name, :billing_address, :shipping_address, :place_of_supply,
			:line_items, :discount_value, :discount_mode, :additional_tax, :adjustment,
			:frequency, :start_date, :end_date, :never_expires, :next_generation_date,
			:generated_count, :generated_invoices, :status, :auto_send, :payment_terms_days,
			:invoice_prefix, :version, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("recurringProfileRepo.Create: %w", err)
	}
	return nil
}

func (r *recurringProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringProfile, error) {
	var p domain.RecurringProfile
	err := r.db.GetContext(ctx, &p, "SELECT * FROM recurring_profiles WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("recurringProfileRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *recurringProfileRepo) List(ctx context.Context, status domain.ProfileStatus, offset, limit int) ([]domain.RecurringProfile, int, error) {
	var total int
	var profiles []domain.RecurringProfile

	if status == "" {
		if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM recurring_profiles"); err != nil {
			return nil, 0, fmt.Errorf("recurringProfileRepo.List count: %w", err)
		}
		err := r.db.SelectContext(ctx, &profiles,
			"SELECT * FROM recurring_profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("recurringProfileRepo.List: %w", err)
		}
		return profiles, total, nil
	}

	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM recurring_profiles WHERE status = $1", status); err != nil {
		return nil, 0, fmt.Errorf("recurringProfileRepo.List count: %w", err)
	}
	err := r.db.SelectContext(ctx, &profiles,
		"SELECT * FROM recurring_profiles WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("recurringProfileRepo.List: %w", err)
	}
	return profiles, total, nil
}

func (r *recurringProfileRepo) Update(ctx context.Context, p *domain.RecurringProfile, expectedVersion int) error {
	now := time.Now().UTC()
	query := `UPDATE recurring_profiles SET
			status = $1, next_generation_date = $2, generated_count = $3,
			generated_invoices = $4, version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7`
	result, err := r.db.ExecContext(ctx, query,
		p.Status, p.NextGenerationDate, p.GeneratedCount, p.GeneratedInvoices, now, p.ID, expectedVersion)
	if err != nil {
		return fmt.Errorf("recurringProfileRepo.Update: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("recurringProfileRepo.Update rows: %w", err)
	}
	if rows == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS(SELECT 1 FROM recurring_profiles WHERE id = $1)", p.ID); err != nil {
			return fmt.Errorf("recurringProfileRepo.Update exists: %w", err)
		}
		if !exists {
			return domain.ErrProfileNotFound
		}
		return domain.ErrVersionConflict
	}
	p.Version = expectedVersion + 1
	p.UpdatedAt = now
	return nil
}

func (r *recurringProfileRepo) ListDue(ctx context.Context, asOf time.Time, limit int) ([]domain.RecurringProfile, error) {
	query := `SELECT * FROM recurring_profiles
		WHERE status = $1 AND next_generation_date <= $2
		ORDER BY next_generation_date ASC
		LIMIT $3`
	var profiles []domain.RecurringProfile
	if err := r.db.SelectContext(ctx, &profiles, query, domain.ProfileStatusActive, asOf, limit); err != nil {
		return nil, fmt.Errorf("recurringProfileRepo.ListDue: %w", err)
	}
	return profiles, nil
}
