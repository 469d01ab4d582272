package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

type exporterFake struct {
	got []domain.HistoryEntry
	raw []byte
	err error
}

func (f *exporterFake) ExportXLSX(entries []domain.HistoryEntry) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.got = entries
	return f.raw, nil
}

func TestHistoryListRequiresOwner(t *testing.T) {
	uc := NewHistoryUseCase(&historyFake{}, &exporterFake{})
	if _, err := uc.List(context.Background(), ""); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestHistoryExportFeedsEntriesToExporter(t *testing.T) {
	store := &historyFake{entries: []domain.HistoryEntry{
		{Owner: "alice", Filename: "lease.pdf", DocType: "Lease Agreement", Risk: domain.RiskLow, CreatedAt: time.Now()},
	}}
	exporter := &exporterFake{raw: []byte("xlsx")}
	uc := NewHistoryUseCase(store, exporter)

	raw, err := uc.ExportXLSX(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if string(raw) != "xlsx" {
		t.Fatalf("raw = %q", raw)
	}
	if len(exporter.got) != 1 || exporter.got[0].Filename != "lease.pdf" {
		t.Fatalf("exporter received %+v", exporter.got)
	}
}

func TestHistorySummaryPassesThrough(t *testing.T) {
	store := &historyFake{summary: domain.RiskSummary{Low: 2, High: 1}}
	uc := NewHistoryUseCase(store, &exporterFake{})

	got, err := uc.Summary(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got != (domain.RiskSummary{Low: 2, High: 1}) {
		t.Fatalf("summary = %+v", got)
	}
}

func TestHistoryExportStoreFailure(t *testing.T) {
	uc := NewHistoryUseCase(&historyFake{err: errors.New("db down")}, &exporterFake{})
	if _, err := uc.ExportXLSX(context.Background(), "alice"); err == nil {
		t.Fatal("expected error")
	}
}
