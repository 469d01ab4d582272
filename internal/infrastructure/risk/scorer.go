// Package risk maps clause coverage onto a coarse risk rating. The rating
// summarizes keyword coverage only; it is not a legal judgment.
package risk

import "github.com/jkodavati/legal-analyzer/internal/core/domain"

// Default thresholds. The ratio domain [0,1] is partitioned with no gaps:
// [low,1] -> Low, [medium,low) -> Medium, [0,medium) -> High.
const (
	DefaultLowThreshold    = 0.75
	DefaultMediumThreshold = 0.4
)

const (
	commentLow     = "Most key clauses are present; minor legal review recommended."
	commentMedium  = "Some important clauses are missing or incomplete; review recommended."
	commentHigh    = "Multiple critical clauses missing; significant legal risk detected."
	commentUnknown = "No clause information available."
)

type Scorer struct {
	low    float64
	medium float64
}

// New builds a Scorer with the given thresholds. Values out of range or
// non-monotonic fall back to the defaults.
func New(low, medium float64) *Scorer {
	if low <= 0 || low > 1 || medium <= 0 || medium >= low {
		low, medium = DefaultLowThreshold, DefaultMediumThreshold
	}
	return &Scorer{low: low, medium: medium}
}

// Assess rates clause coverage. An empty clause map yields Unknown rather
// than dividing by zero.
func (s *Scorer) Assess(clauses domain.ClauseMap) domain.RiskAssessment {
	total := len(clauses)
	if total == 0 {
		return domain.RiskAssessment{Level: domain.RiskUnknown, Comment: commentUnknown}
	}

	ratio := float64(clauses.FoundCount()) / float64(total)
	switch {
	case ratio >= s.low:
		return domain.RiskAssessment{Level: domain.RiskLow, Comment: commentLow}
	case ratio >= s.medium:
		return domain.RiskAssessment{Level: domain.RiskMedium, Comment: commentMedium}
	default:
		return domain.RiskAssessment{Level: domain.RiskHigh, Comment: commentHigh}
	}
}
