package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

// HistoryRepository keeps the per-owner analysis reports. Recording is
// idempotent: re-analyzing the same file with the same outcome does not
// produce a duplicate row.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026082902)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS analysis_history (
	id TEXT PRIMARY KEY,
	owner TEXT NOT NULL,
	filename TEXT NOT NULL,
	doc_type TEXT NOT NULL,
	risk_level TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (owner, filename, doc_type, risk_level)
);

CREATE INDEX IF NOT EXISTS idx_history_owner_created ON analysis_history(owner, created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *HistoryRepository) Record(ctx context.Context, entry domain.HistoryEntry) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO analysis_history (id, owner, filename, doc_type, risk_level, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (owner, filename, doc_type, risk_level) DO NOTHING
`, uuid.NewString(), entry.Owner, entry.Filename, entry.DocType, string(entry.Risk), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("record history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepository) ListByOwner(ctx context.Context, owner string) ([]domain.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT owner, filename, doc_type, risk_level, created_at
FROM analysis_history
WHERE owner = $1
ORDER BY created_at DESC
`, owner)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	out := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var entry domain.HistoryEntry
		var risk string
		if err := rows.Scan(&entry.Owner, &entry.Filename, &entry.DocType, &risk, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entry.Risk = domain.RiskLevel(risk)
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (r *HistoryRepository) RiskSummary(ctx context.Context, owner string) (domain.RiskSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT risk_level, COUNT(*)
FROM analysis_history
WHERE owner = $1
GROUP BY risk_level
`, owner)
	if err != nil {
		return domain.RiskSummary{}, fmt.Errorf("risk summary: %w", err)
	}
	defer rows.Close()

	var summary domain.RiskSummary
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return domain.RiskSummary{}, fmt.Errorf("scan risk summary: %w", err)
		}
		switch domain.RiskLevel(level) {
		case domain.RiskLow:
			summary.Low = count
		case domain.RiskMedium:
			summary.Medium = count
		case domain.RiskHigh:
			summary.High = count
		default:
			summary.Unknown += count
		}
	}
	if err := rows.Err(); err != nil {
		return domain.RiskSummary{}, fmt.Errorf("iterate risk summary: %w", err)
	}
	return summary, nil
}
