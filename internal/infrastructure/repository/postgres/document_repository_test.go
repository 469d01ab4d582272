package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*DocumentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &DocumentRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestGetByIDReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, owner, filename, mime_type").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateStatusReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE documents").
		WithArgs("missing", string(domain.StatusProcessing), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusProcessing, "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveAnalysisReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE documents").
		WithArgs("missing", "Lease Agreement", string(domain.RiskMedium), "note", sqlmock.AnyArg(),
			"summary", "entities", 120, 800, 9, string(domain.OriginDigital), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveAnalysis(context.Background(), "missing", domain.Analysis{
		Label:         "Lease Agreement",
		Clauses:       domain.ClauseMap{{Category: "Termination", Found: true, Excerpt: "may terminate"}},
		Risk:          domain.RiskAssessment{Level: domain.RiskMedium, Comment: "note"},
		Summary:       "summary",
		Entities:      "entities",
		WordCount:     120,
		CharCount:     800,
		SentenceCount: 9,
		Origin:        domain.OriginDigital,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDHydratesAnalysis(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	rows := sqlmock.NewRows([]string{
		"id", "owner", "filename", "mime_type", "storage_path", "status", "error_message",
		"doc_type", "risk_level", "risk_comment", "clauses", "summary", "entities",
		"word_count", "char_count", "sentence_count", "text_origin", "created_at", "updated_at",
	}).AddRow(
		"d1", "alice", "lease.pdf", "application/pdf", "alice/d1.pdf", "ready", "",
		"Lease Agreement", "Low", "Most key clauses are present; minor legal review recommended.",
		[]byte(`[{"category":"Termination","found":true,"excerpt":"may terminate"}]`),
		"summary text", "No named entities found.",
		120, 800, 9, "digital", time.Now().UTC(), time.Now().UTC(),
	)
	mock.ExpectQuery("SELECT id, owner, filename, mime_type").WithArgs("d1").WillReturnRows(rows)

	doc, err := repo.GetByID(context.Background(), "d1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if doc.Analysis == nil {
		t.Fatal("analysis not hydrated")
	}
	if doc.Analysis.Label != "Lease Agreement" || doc.Analysis.Risk.Level != domain.RiskLow {
		t.Fatalf("analysis = %+v", doc.Analysis)
	}
	if len(doc.Analysis.Clauses) != 1 || !doc.Analysis.Clauses[0].Found {
		t.Fatalf("clauses = %+v", doc.Analysis.Clauses)
	}
}
