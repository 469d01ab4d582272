package usecase

import (
	"strings"
	"sync"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
)

// AnalysisPipeline runs every analysis stage over one extracted text and
// assembles the aggregate result. All stages are pure text functions, so
// classification and clause detection run concurrently.
type AnalysisPipeline struct {
	classifier ports.DocumentClassifier
	detector   ports.ClauseDetector
	scorer     ports.RiskScorer
	summarizer ports.Summarizer
	entities   ports.EntityExtractor
}

func NewAnalysisPipeline(
	classifier ports.DocumentClassifier,
	detector ports.ClauseDetector,
	scorer ports.RiskScorer,
	summarizer ports.Summarizer,
	entities ports.EntityExtractor,
) *AnalysisPipeline {
	return &AnalysisPipeline{
		classifier: classifier,
		detector:   detector,
		scorer:     scorer,
		summarizer: summarizer,
		entities:   entities,
	}
}

func (p *AnalysisPipeline) Run(text domain.ExtractedText) domain.Analysis {
	var (
		wg       sync.WaitGroup
		label    string
		clauses  domain.ClauseMap
		summary  string
		entities string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		label = p.classifier.Classify(text.Content)
	}()
	go func() {
		defer wg.Done()
		clauses = p.detector.Detect(text.Content)
	}()
	go func() {
		defer wg.Done()
		summary = p.summarizer.Summarize(text.Content)
		entities = p.entities.Entities(text.Content)
	}()
	wg.Wait()

	return domain.Analysis{
		Label:         label,
		Clauses:       clauses,
		Risk:          p.scorer.Assess(clauses),
		Summary:       summary,
		Entities:      entities,
		WordCount:     len(strings.Fields(text.Content)),
		CharCount:     text.Chars(),
		SentenceCount: strings.Count(text.Content, "."),
		Origin:        text.Origin,
	}
}
