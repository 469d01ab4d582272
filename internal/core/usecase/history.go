package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
)

type HistoryUseCase struct {
	store    ports.HistoryStore
	exporter ports.HistoryExporter
}

func NewHistoryUseCase(store ports.HistoryStore, exporter ports.HistoryExporter) *HistoryUseCase {
	return &HistoryUseCase{store: store, exporter: exporter}
}

func (uc *HistoryUseCase) List(ctx context.Context, owner string) ([]domain.HistoryEntry, error) {
	if owner == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "list history", errors.New("missing owner"))
	}
	entries, err := uc.store.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func (uc *HistoryUseCase) Summary(ctx context.Context, owner string) (domain.RiskSummary, error) {
	if owner == "" {
		return domain.RiskSummary{}, domain.WrapError(domain.ErrInvalidInput, "history summary", errors.New("missing owner"))
	}
	summary, err := uc.store.RiskSummary(ctx, owner)
	if err != nil {
		return domain.RiskSummary{}, fmt.Errorf("history summary: %w", err)
	}
	return summary, nil
}

func (uc *HistoryUseCase) ExportXLSX(ctx context.Context, owner string) ([]byte, error) {
	entries, err := uc.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	raw, err := uc.exporter.ExportXLSX(entries)
	if err != nil {
		return nil, fmt.Errorf("export history: %w", err)
	}
	return raw, nil
}
