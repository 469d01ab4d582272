package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

func TestExportXLSXRoundTrip(t *testing.T) {
	entries := []domain.HistoryEntry{
		{
			Owner:     "alice",
			Filename:  "lease.pdf",
			DocType:   "Lease Agreement",
			Risk:      domain.RiskLow,
			CreatedAt: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			Owner:     "alice",
			Filename:  "nda.pdf",
			DocType:   "Non-Disclosure Agreement (NDA)",
			Risk:      domain.RiskHigh,
			CreatedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	raw, err := NewExcelExporter().ExportXLSX(entries)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 entries", len(rows))
	}
	if rows[0][0] != "Owner" || rows[0][3] != "Risk Level" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][1] != "lease.pdf" || rows[1][3] != "Low" {
		t.Fatalf("first entry = %v", rows[1])
	}
	if rows[2][4] != "2026-08-02 09:00:00" {
		t.Fatalf("timestamp cell = %q", rows[2][4])
	}
}

func TestExportXLSXEmptyHistory(t *testing.T) {
	raw, err := NewExcelExporter().ExportXLSX(nil)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want header only", len(rows))
	}
}
