package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jkodavati/legal-analyzer/internal/config"
	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
	"github.com/jkodavati/legal-analyzer/internal/core/usecase"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/classify"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/clause"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/entity"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/export"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/extractor"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/extractor/ocr"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/extractor/pdftext"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/extractor/plaintext"
	natsqueue "github.com/jkodavati/legal-analyzer/internal/infrastructure/queue/nats"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/repository/postgres"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/resilience"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/risk"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/similarity"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/storage/localfs"
	"github.com/jkodavati/legal-analyzer/internal/infrastructure/summary"
	"github.com/jkodavati/legal-analyzer/internal/observability/logging"
	"github.com/jkodavati/legal-analyzer/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue ports.MessageQueue
	Repo  ports.DocumentRepository

	IngestUC  ports.DocumentIngestor
	ProcessUC ports.DocumentProcessor
	AnalyzeUC ports.TextAnalyzer
	CompareUC ports.DocumentComparator
	HistoryUC ports.HistoryService

	HTTPMetrics   *metrics.HTTPServerMetrics
	WorkerMetrics *metrics.WorkerMetrics

	closeFn func()
}

// New wires the full application graph for the given service name ("api" or
// "worker"). Both binaries share the graph; each uses the slice it needs.
func New(ctx context.Context, cfg config.Config, service string) (*App, error) {
	logger := logging.NewJSONLogger(service, cfg.LogLevel)

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure documents schema: %w", err)
	}
	history := postgres.NewHistoryRepository(db)
	if err := history.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure history schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultPolicy(), logger)
	queue, err := natsqueue.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, natsqueue.Options{
		ResilienceExecutor: executor,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	tables, err := config.LoadKeywordTables(cfg.KeywordConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load keyword tables: %w", err)
	}

	classifier := classify.New(taxonomyFromTables(tables), tables.JudgmentSignals, classify.Options{
		MinScore:         cfg.ClassifyMinScore,
		LowConfidenceLen: cfg.ClassifyLowConfidenceLen,
		ShortTextLen:     cfg.ClassifyShortTextLen,
	})
	detector := clause.New(clausesFromTables(tables), clause.Options{
		Radius:        cfg.ExcerptRadius,
		MaxExcerptLen: cfg.ExcerptMaxLen,
	})
	scorer := risk.New(cfg.RiskLowThreshold, cfg.RiskMediumThreshold)
	summarizer := summary.New(cfg.SummarySentences)
	entities := entity.New()
	pipeline := usecase.NewAnalysisPipeline(classifier, detector, scorer, summarizer, entities)

	ocrExtractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:  cfg.PdftoppmBin,
		Tesseract: cfg.TesseractBin,
		Language:  cfg.OCRLanguage,
		DPI:       cfg.OCRDPI,
		MaxPages:  cfg.OCRMaxPages,
	}, storage, logger)
	dispatcher := extractor.NewDispatcher(
		pdftext.NewExtractor(storage),
		ocrExtractor,
		plaintext.NewExtractor(storage),
		cfg.ExtractMinChars,
		logger,
	)

	workerMetrics := metrics.NewWorkerMetrics(service)
	observer := &analysisObserver{service: service, metrics: workerMetrics}

	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(repo, dispatcher, pipeline, history, observer, cfg.ExtractMinChars)
	analyzeUC := usecase.NewAnalyzeTextUseCase(pipeline, history)
	compareUC := usecase.NewCompareDocumentsUseCase(repo, dispatcher, similarity.New())
	historyUC := usecase.NewHistoryUseCase(history, export.NewExcelExporter())

	return &App{
		Config: cfg,
		Logger: logger,

		Queue: queue,
		Repo:  repo,

		IngestUC:  ingestUC,
		ProcessUC: processUC,
		AnalyzeUC: analyzeUC,
		CompareUC: compareUC,
		HistoryUC: historyUC,

		HTTPMetrics:   metrics.NewHTTPServerMetrics(service),
		WorkerMetrics: workerMetrics,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

// analysisObserver bridges pipeline outcomes into worker metrics.
type analysisObserver struct {
	service string
	metrics *metrics.WorkerMetrics
}

func (o *analysisObserver) ObserveAnalysis(label string, risk domain.RiskLevel, origin domain.TextOrigin) {
	o.metrics.ObserveAnalysis(o.service, label, string(risk), string(origin))
}

func taxonomyFromTables(tables config.KeywordTables) []classify.Category {
	if len(tables.Taxonomy) == 0 {
		return nil
	}
	categories := make([]classify.Category, 0, len(tables.Taxonomy))
	for _, cat := range tables.Taxonomy {
		categories = append(categories, classify.Category{Label: cat.Name, Keywords: cat.Keywords})
	}
	return categories
}

func clausesFromTables(tables config.KeywordTables) []clause.Category {
	if len(tables.Clauses) == 0 {
		return nil
	}
	categories := make([]clause.Category, 0, len(tables.Clauses))
	for _, cat := range tables.Clauses {
		categories = append(categories, clause.Category{Name: cat.Name, Keywords: cat.Keywords})
	}
	return categories
}
