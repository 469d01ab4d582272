package usecase

import (
	"context"
	"fmt"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
)

type CompareDocumentsUseCase struct {
	repo      ports.DocumentRepository
	extractor ports.TextExtractor
	scorer    ports.SimilarityScorer
}

func NewCompareDocumentsUseCase(
	repo ports.DocumentRepository,
	extractor ports.TextExtractor,
	scorer ports.SimilarityScorer,
) *CompareDocumentsUseCase {
	return &CompareDocumentsUseCase{repo: repo, extractor: extractor, scorer: scorer}
}

func (uc *CompareDocumentsUseCase) CompareTexts(a, b string) float64 {
	return uc.scorer.Compare(a, b)
}

// CompareDocuments re-extracts both stored documents and scores their
// similarity. Comparing a document with itself yields 100.
func (uc *CompareDocumentsUseCase) CompareDocuments(ctx context.Context, idA, idB string) (float64, error) {
	textA, err := uc.extractDocument(ctx, idA)
	if err != nil {
		return 0, err
	}
	textB, err := uc.extractDocument(ctx, idB)
	if err != nil {
		return 0, err
	}
	return uc.scorer.Compare(textA, textB), nil
}

func (uc *CompareDocumentsUseCase) extractDocument(ctx context.Context, id string) (string, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("fetch document %s: %w", id, err)
	}

	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("extract document %s: %w", id, err)
	}
	if text.Content == "" {
		return "", domain.WrapError(domain.ErrUnreadable, "compare documents",
			fmt.Errorf("no readable text in %s", doc.Filename))
	}
	return text.Content, nil
}
