package ports

import (
	"context"
	"io"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveAnalysis(ctx context.Context, id string, analysis domain.Analysis) error
}

// HistoryStore keeps the per-owner report log. Record is idempotent on
// exact-duplicate entries.
type HistoryStore interface {
	Record(ctx context.Context, entry domain.HistoryEntry) error
	ListByOwner(ctx context.Context, owner string) ([]domain.HistoryEntry, error)
	RiskSummary(ctx context.Context, owner string) (domain.RiskSummary, error)
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes analysis events.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text from a stored document, falling back to
// OCR when the embedded text layer is missing or too short. Extraction
// failures degrade to an empty ExtractedText rather than an error.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (domain.ExtractedText, error)
}

// DocumentClassifier assigns a document-type label. Total over all inputs.
type DocumentClassifier interface {
	Classify(text string) string
}

// ClauseDetector scans text for the declared clause categories. The result
// always contains every category, in declaration order.
type ClauseDetector interface {
	Detect(text string) domain.ClauseMap
}

// RiskScorer derives a coarse risk rating from clause coverage.
type RiskScorer interface {
	Assess(clauses domain.ClauseMap) domain.RiskAssessment
}

// SimilarityScorer computes a 0-100 similarity score between two text bodies.
type SimilarityScorer interface {
	Compare(a, b string) float64
}

// Summarizer produces a short extractive summary.
type Summarizer interface {
	Summarize(text string) string
}

// EntityExtractor pulls named-entity heuristics out of document text.
type EntityExtractor interface {
	Entities(text string) string
}

// HistoryExporter renders history entries as a spreadsheet.
type HistoryExporter interface {
	ExportXLSX(entries []domain.HistoryEntry) ([]byte, error)
}

// PipelineObserver receives analysis outcomes for instrumentation.
type PipelineObserver interface {
	ObserveAnalysis(label string, risk domain.RiskLevel, origin domain.TextOrigin)
}
