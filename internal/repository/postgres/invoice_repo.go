package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.Version == 0 {
		inv.Version = 1
	}
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	query := `INSERT INTO invoices (
			id, number, profile_id, generation_date, customer_name,
			billing_address, shipping_address, place_of_supply, issue_date, due_date,
			line_items, discount_value, discount_mode, additional_tax, adjustment,
			totals, status, version, created_at, updated_at
		) VALUES (
			:id, :number, :profile_id, :generation_date, :customer_name,
			:billing_address, :shipping_address, :place_of_supply, :issue_date, :due_date,
			:line_items, :discount_value, :discount_mode, :additional_tax, :adjustment,
			:totals, :status, :version, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, inv); err != nil {
		switch {
		case isUniqueViolation(err, "invoices_profile_generation_key"):
			return domain.ErrDuplicateGeneration
		case isUniqueViolation(err, "invoices_number_key"):
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, filter port.InvoiceFilter, offset, limit int) ([]domain.Invoice, int, error) {
	where, args := invoiceWhere(filter)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM invoices%s ORDER BY issue_date DESC, created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func invoiceWhere(filter port.InvoiceFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ProfileID != nil {
		args = append(args, *filter.ProfileID)
		conds = append(conds, fmt.Sprintf("profile_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, inv *domain.Invoice, expectedVersion int) error {
	now := time.Now().UTC()
	query := `UPDATE invoices SET status = $1, version = version + 1, updated_at = $2
		WHERE id = $3 AND version = $4`
	result, err := r.db.ExecContext(ctx, query, inv.Status, now, inv.ID, expectedVersion)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus rows: %w", err)
	}
	if rows == 0 {
		return r.missOrConflict(ctx, inv.ID)
	}
	inv.Version = expectedVersion + 1
	inv.UpdatedAt = now
	return nil
}

func (r *invoiceRepo) missOrConflict(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM invoices WHERE id = $1)", id); err != nil {
		return fmt.Errorf("invoiceRepo.missOrConflict: %w", err)
	}
	if !exists {
		return domain.ErrInvoiceNotFound
	}
	return domain.ErrVersionConflict
}

func (r *invoiceRepo) ListOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]domain.Invoice, error) {
	query := `SELECT * FROM invoices
		WHERE status IN ($1, $2, $3) AND due_date < $4
		ORDER BY due_date ASC
		LIMIT $5`
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices, query,
		domain.InvoiceStatusSent, domain.InvoiceStatusUnpaid, domain.InvoiceStatusPartiallyPaid,
		asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListOverdueCandidates: %w", err)
	}
	return invoices, nil
}
