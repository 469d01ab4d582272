// Package extractor picks an extraction strategy per document and applies
// the OCR fallback for scanned PDFs.
package extractor

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
)

// DefaultMinChars is the text-layer length below which a PDF is treated as
// scanned and sent to OCR.
const DefaultMinChars = 20

type Dispatcher struct {
	pdf      ports.TextExtractor
	ocr      ports.TextExtractor
	plain    ports.TextExtractor
	minChars int
	logger   *slog.Logger
}

func NewDispatcher(pdf, ocr, plain ports.TextExtractor, minChars int, logger *slog.Logger) *Dispatcher {
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{pdf: pdf, ocr: ocr, plain: plain, minChars: minChars, logger: logger}
}

// Extract never fails the document outright on a bad file: strategy errors
// degrade to an empty result so the pipeline can record the document as
// unreadable instead of crashing the run. Only context cancellation is
// returned as an error.
func (d *Dispatcher) Extract(ctx context.Context, doc *domain.Document) (domain.ExtractedText, error) {
	ext := strings.ToLower(filepath.Ext(doc.Filename))
	if ext != ".pdf" {
		return d.run(ctx, d.plain, doc)
	}

	text, err := d.run(ctx, d.pdf, doc)
	if err != nil {
		return domain.ExtractedText{}, err
	}
	if text.Chars() >= d.minChars {
		return text, nil
	}

	d.logger.Info("text layer too small, trying ocr",
		"document_id", doc.ID, "chars", text.Chars(), "min_chars", d.minChars)
	return d.run(ctx, d.ocr, doc)
}

func (d *Dispatcher) run(ctx context.Context, e ports.TextExtractor, doc *domain.Document) (domain.ExtractedText, error) {
	text, err := e.Extract(ctx, doc)
	if err != nil {
		if ctx.Err() != nil {
			return domain.ExtractedText{}, ctx.Err()
		}
		d.logger.Warn("extraction failed",
			"document_id", doc.ID, "filename", doc.Filename, "error", err)
		return domain.ExtractedText{Origin: text.Origin}, nil
	}
	return text, nil
}
