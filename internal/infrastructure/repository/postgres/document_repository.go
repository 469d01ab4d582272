package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026082901)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	owner TEXT NOT NULL,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	storage_path TEXT NOT NULL,
	status TEXT NOT NULL,
	error_message TEXT,
	doc_type TEXT,
	risk_level TEXT,
	risk_comment TEXT,
	clauses JSONB NOT NULL DEFAULT '[]'::jsonb,
	summary TEXT,
	entities TEXT,
	word_count INTEGER NOT NULL DEFAULT 0,
	char_count INTEGER NOT NULL DEFAULT 0,
	sentence_count INTEGER NOT NULL DEFAULT 0,
	text_origin TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_owner ON documents(owner);
CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status);
CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO documents (id, owner, filename, mime_type, storage_path, status, error_message, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`,
		doc.ID, doc.Owner, doc.Filename, doc.MimeType, doc.StoragePath,
		string(doc.Status), doc.Error, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, owner, filename, mime_type, storage_path, status, error_message,
	doc_type, risk_level, risk_comment, clauses, summary, entities,
	word_count, char_count, sentence_count, text_origin, created_at, updated_at
FROM documents
WHERE id = $1
`, id)

	var (
		doc        domain.Document
		status     string
		docType    sql.NullString
		riskLevel  sql.NullString
		riskNote   sql.NullString
		clausesRaw []byte
		summary    sql.NullString
		entities   sql.NullString
		words      int
		chars      int
		sentences  int
		origin     sql.NullString
	)
	err := row.Scan(
		&doc.ID, &doc.Owner, &doc.Filename, &doc.MimeType, &doc.StoragePath, &status, &doc.Error,
		&docType, &riskLevel, &riskNote, &clausesRaw, &summary, &entities,
		&words, &chars, &sentences, &origin, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", fmt.Errorf("id=%s", id))
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	doc.Status = domain.DocumentStatus(status)

	if docType.Valid {
		var clauses domain.ClauseMap
		if len(clausesRaw) > 0 {
			if err := json.Unmarshal(clausesRaw, &clauses); err != nil {
				return nil, fmt.Errorf("unmarshal clauses: %w", err)
			}
		}
		doc.Analysis = &domain.Analysis{
			Label:   docType.String,
			Clauses: clauses,
			Risk: domain.RiskAssessment{
				Level:   domain.RiskLevel(riskLevel.String),
				Comment: riskNote.String,
			},
			Summary:       summary.String,
			Entities:      entities.String,
			WordCount:     words,
			CharCount:     chars,
			SentenceCount: sentences,
			Origin:        domain.TextOrigin(origin.String),
		}
	}
	return &doc, nil
}

func (r *DocumentRepository) UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE documents
SET status = $2, error_message = $3, updated_at = $4
WHERE id = $1
`, id, string(status), errMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrDocumentNotFound, "update status", fmt.Errorf("id=%s", id))
	}
	return nil
}

func (r *DocumentRepository) SaveAnalysis(ctx context.Context, id string, analysis domain.Analysis) error {
	clausesJSON, err := json.Marshal(analysis.Clauses)
	if err != nil {
		return fmt.Errorf("marshal clauses: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE documents
SET doc_type = $2, risk_level = $3, risk_comment = $4, clauses = $5, summary = $6, entities = $7,
	word_count = $8, char_count = $9, sentence_count = $10, text_origin = $11, updated_at = $12
WHERE id = $1
`, id, analysis.Label, string(analysis.Risk.Level), analysis.Risk.Comment, clausesJSON,
		analysis.Summary, analysis.Entities, analysis.WordCount, analysis.CharCount,
		analysis.SentenceCount, string(analysis.Origin), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("save analysis rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrDocumentNotFound, "save analysis", fmt.Errorf("id=%s", id))
	}
	return nil
}
