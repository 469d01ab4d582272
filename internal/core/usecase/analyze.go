package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
)

// manualTextFilename is the history label for pasted-text analyses, which
// have no uploaded file behind them.
const manualTextFilename = "Manual Text"

type AnalyzeTextUseCase struct {
	pipeline *AnalysisPipeline
	history  ports.HistoryStore
}

func NewAnalyzeTextUseCase(pipeline *AnalysisPipeline, history ports.HistoryStore) *AnalyzeTextUseCase {
	return &AnalyzeTextUseCase{pipeline: pipeline, history: history}
}

// AnalyzeText runs the full pipeline synchronously over pasted text and
// records the outcome in the owner's history.
func (uc *AnalyzeTextUseCase) AnalyzeText(ctx context.Context, owner, text string) (*domain.Analysis, error) {
	if owner == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "analyze text", errors.New("missing owner"))
	}
	if strings.TrimSpace(text) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "analyze text", errors.New("empty text"))
	}

	analysis := uc.pipeline.Run(domain.ExtractedText{
		Content: strings.TrimSpace(text),
		Origin:  domain.OriginManual,
	})

	entry := domain.HistoryEntry{
		Owner:     owner,
		Filename:  manualTextFilename,
		DocType:   analysis.Label,
		Risk:      analysis.Risk.Level,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.history.Record(ctx, entry); err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}

	return &analysis, nil
}
