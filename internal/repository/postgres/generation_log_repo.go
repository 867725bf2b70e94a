package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type generationLogRepo struct {
	db *sqlx.DB
}

// NewGenerationLogRepo creates a new PostgreSQL-backed GenerationLogRepository.
func NewGenerationLogRepo(db *sqlx.DB) port.GenerationLogRepository {
	return &generationLogRepo{db: db}
}

func (r *generationLogRepo) Claim(ctx context.Context, entry *domain.GenerationLogEntry) (bool, error) {
	entry.CreatedAt = time.Now().UTC()

	query := `INSERT INTO generation_log (profile_id, generation_date, invoice_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, generation_date) DO NOTHING`
	result, err := r.db.ExecContext(ctx, query,
		entry.ProfileID, entry.GenerationDate, entry.InvoiceID, entry.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("generationLogRepo.Claim: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("generationLogRepo.Claim rows: %w", err)
	}
	if rows == 1 {
		return true, nil
	}

	var stored domain.GenerationLogEntry
	err = r.db.GetContext(ctx, &stored,
		"SELECT * FROM generation_log WHERE profile_id = $1 AND generation_date = $2",
		entry.ProfileID, entry.GenerationDate)
	if err != nil {
		return false, fmt.Errorf("generationLogRepo.Claim existing: %w", err)
	}
	*entry = stored
	return false, nil
}

func (r *generationLogRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.GenerationLogEntry, error) {
	var entries []domain.GenerationLogEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM generation_log WHERE profile_id = $1 ORDER BY generation_date ASC", profileID)
	if err != nil {
		return nil, fmt.Errorf("generationLogRepo.ListByProfile: %w", err)
	}
	return entries, nil
}
