// Package classify assigns a document-type label using weighted keyword
// scoring over a fixed taxonomy, with a judicial-signal override.
package classify

import "strings"

const (
	phraseWeight = 3
	wordWeight   = 1
)

type Options struct {
	// MinScore is the confidence gate: winners below it fall back to the
	// general label unless the text is long enough.
	MinScore int
	// LowConfidenceLen is the text length above which a low-confidence
	// winner is still accepted.
	LowConfidenceLen int
	// ShortTextLen is the length below which classification is unreliable
	// and the short-text label is returned regardless of scores.
	ShortTextLen int
}

func defaultOptions() Options {
	return Options{MinScore: 3, LowConfidenceLen: 300, ShortTextLen: 200}
}

type Classifier struct {
	taxonomy        []Category
	judgmentSignals []string
	opts            Options
}

// New builds a Classifier over an ordered taxonomy. Nil slices select the
// built-in tables; zero option fields select the default thresholds.
func New(taxonomy []Category, judgmentSignals []string, opts Options) *Classifier {
	if len(taxonomy) == 0 {
		taxonomy = DefaultTaxonomy()
	}
	if len(judgmentSignals) == 0 {
		judgmentSignals = DefaultJudgmentSignals()
	}
	def := defaultOptions()
	if opts.MinScore <= 0 {
		opts.MinScore = def.MinScore
	}
	if opts.LowConfidenceLen <= 0 {
		opts.LowConfidenceLen = def.LowConfidenceLen
	}
	if opts.ShortTextLen <= 0 {
		opts.ShortTextLen = def.ShortTextLen
	}
	return &Classifier{
		taxonomy:        taxonomy,
		judgmentSignals: judgmentSignals,
		opts:            opts,
	}
}

// Classify returns the document-type label for text. Judicial signals win
// over all category scoring because judgments structurally resemble the
// contracts they rule on.
func (c *Classifier) Classify(text string) string {
	t := strings.ToLower(text)

	for _, signal := range c.judgmentSignals {
		if strings.Contains(t, signal) {
			return LabelJudgment
		}
	}

	topLabel, topScore := "", -1
	for _, cat := range c.taxonomy {
		score := 0
		for _, kw := range cat.Keywords {
			if !strings.Contains(t, kw) {
				continue
			}
			if strings.ContainsRune(kw, ' ') {
				score += phraseWeight
			} else {
				score += wordWeight
			}
		}
		// Strict > keeps the first-declared category on ties.
		if score > topScore {
			topLabel, topScore = cat.Label, score
		}
	}

	if topScore >= c.opts.MinScore {
		return topLabel
	}
	length := len([]rune(t))
	if topScore > 0 && length > c.opts.LowConfidenceLen {
		return topLabel
	}

	// Only low-confidence outcomes reach the length fallbacks: a decisive
	// keyword score is trusted even on very short inputs.
	if length < c.opts.ShortTextLen {
		return LabelShortText
	}
	return LabelGeneral
}
