package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
)

type ProcessDocumentUseCase struct {
	repo      ports.DocumentRepository
	extractor ports.TextExtractor
	pipeline  *AnalysisPipeline
	history   ports.HistoryStore
	observer  ports.PipelineObserver
	minChars  int
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	extractor ports.TextExtractor,
	pipeline *AnalysisPipeline,
	history ports.HistoryStore,
	observer ports.PipelineObserver,
	minChars int,
) *ProcessDocumentUseCase {
	if minChars <= 0 {
		minChars = 20
	}
	return &ProcessDocumentUseCase{
		repo:      repo,
		extractor: extractor,
		pipeline:  pipeline,
		history:   history,
		observer:  observer,
		minChars:  minChars,
	}
}

// ProcessByID drives the uploaded -> processing -> ready/failed state
// machine for one document. Unreadable files fail the document with a
// descriptive message instead of producing an empty analysis.
func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetch document by id: %w", err)
	}

	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	analysis, err := uc.analyze(ctx, doc)
	if err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveAnalysis(ctx, documentID, *analysis); err != nil {
		err = fmt.Errorf("save analysis: %w", err)
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.recordHistory(ctx, doc, analysis); err != nil {
		return err
	}

	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusReady, ""); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}

	if uc.observer != nil {
		uc.observer.ObserveAnalysis(analysis.Label, analysis.Risk.Level, analysis.Origin)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) analyze(ctx context.Context, doc *domain.Document) (*domain.Analysis, error) {
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if text.Chars() < uc.minChars {
		return nil, domain.WrapError(domain.ErrUnreadable, "extract text",
			fmt.Errorf("%d chars extracted from %s", text.Chars(), doc.Filename))
	}

	analysis := uc.pipeline.Run(text)
	return &analysis, nil
}

func (uc *ProcessDocumentUseCase) recordHistory(ctx context.Context, doc *domain.Document, analysis *domain.Analysis) error {
	entry := domain.HistoryEntry{
		Owner:     doc.Owner,
		Filename:  doc.Filename,
		DocType:   analysis.Label,
		Risk:      analysis.Risk.Level,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.history.Record(ctx, entry); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.repo.UpdateStatus(ctx, documentID, domain.StatusFailed, processErr.Error())
}
