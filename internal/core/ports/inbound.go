package ports

import (
	"context"
	"io"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, owner, filename, mimeType string, body io.Reader) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous document analysis.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// TextAnalyzer runs the analysis pipeline synchronously over pasted text.
type TextAnalyzer interface {
	AnalyzeText(ctx context.Context, owner, text string) (*domain.Analysis, error)
}

// DocumentComparator computes similarity between two texts or two stored
// documents.
type DocumentComparator interface {
	CompareTexts(a, b string) float64
	CompareDocuments(ctx context.Context, idA, idB string) (float64, error)
}

// DocumentReader is the inbound read model for document metadata/state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// HistoryService exposes the per-owner report log.
type HistoryService interface {
	List(ctx context.Context, owner string) ([]domain.HistoryEntry, error)
	Summary(ctx context.Context, owner string) (domain.RiskSummary, error)
	ExportXLSX(ctx context.Context, owner string) ([]byte, error)
}
