package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

func newHistoryRepoWithMock(t *testing.T) (*HistoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &HistoryRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestRecordIsIdempotentOnConflict(t *testing.T) {
	repo, mock, done := newHistoryRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	entry := domain.HistoryEntry{
		Owner:     "alice",
		Filename:  "lease.pdf",
		DocType:   "Lease Agreement",
		Risk:      domain.RiskLow,
		CreatedAt: now,
	}

	// The conflict clause swallows the duplicate; zero rows is not an error.
	mock.ExpectExec("INSERT INTO analysis_history").
		WithArgs(sqlmock.AnyArg(), "alice", "lease.pdf", "Lease Agreement", "Low", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListByOwnerScansEntries(t *testing.T) {
	repo, mock, done := newHistoryRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"owner", "filename", "doc_type", "risk_level", "created_at"}).
		AddRow("alice", "lease.pdf", "Lease Agreement", "Low", now).
		AddRow("alice", "nda.pdf", "Non-Disclosure Agreement (NDA)", "High", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT owner, filename, doc_type, risk_level, created_at").
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1].Risk != domain.RiskHigh {
		t.Fatalf("risk = %q", got[1].Risk)
	}
}

func TestRiskSummaryGroupsLevels(t *testing.T) {
	repo, mock, done := newHistoryRepoWithMock(t)
	defer done()

	rows := sqlmock.NewRows([]string{"risk_level", "count"}).
		AddRow("Low", 3).
		AddRow("High", 1).
		AddRow("Unknown", 2)
	mock.ExpectQuery("SELECT risk_level, COUNT").
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.RiskSummary(context.Background(), "alice")
	if err != nil {
		t.Fatalf("RiskSummary: %v", err)
	}
	want := domain.RiskSummary{Low: 3, High: 1, Unknown: 2}
	if got != want {
		t.Fatalf("summary = %+v, want %+v", got, want)
	}
}
