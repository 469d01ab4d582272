// Package clause detects the presence of standard legal clause categories
// and captures a bounded supporting excerpt for each hit.
package clause

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

// Category is one clause category with its ordered synonym list. The first
// matching synonym supplies the excerpt.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultCategories returns the built-in clause table, in report order.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Confidentiality", Keywords: []string{"confidential", "non-disclosure", "privacy", "proprietary"}},
		{Name: "Termination", Keywords: []string{"terminate", "termination", "expiry", "expire", "cancel"}},
		{Name: "Payment", Keywords: []string{"payment", "fee", "compensation", "remuneration", "invoice"}},
		{Name: "Liability", Keywords: []string{"liability", "liable", "damages", "responsible"}},
		{Name: "Dispute Resolution", Keywords: []string{"dispute", "arbitration", "mediation", "jurisdiction"}},
		{Name: "Governing Law", Keywords: []string{"governing law", "laws of", "jurisdiction"}},
		{Name: "Intellectual Property", Keywords: []string{"intellectual property", "copyright", "patent", "trademark", "ownership"}},
		{Name: "Non-Compete", Keywords: []string{"non-compete", "restrict", "competition", "restrictive covenant"}},
		{Name: "Indemnity", Keywords: []string{"indemnify", "indemnity", "hold harmless"}},
		{Name: "Force Majeure", Keywords: []string{"force majeure", "unforeseeable", "beyond control", "act of god"}},
	}
}

type Options struct {
	// Radius bounds the captured window on each side of the keyword, within
	// the surrounding sentence-free span.
	Radius int
	// MaxExcerptLen caps the stored excerpt length in runes.
	MaxExcerptLen int
}

type Detector struct {
	categories []Category
	patterns   [][]*regexp.Regexp
	maxExcerpt int
}

// New compiles a Detector over the given categories. A nil slice selects the
// built-in table.
func New(categories []Category, opts Options) *Detector {
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	if opts.Radius <= 0 {
		opts.Radius = 150
	}
	if opts.MaxExcerptLen <= 0 {
		opts.MaxExcerptLen = 300
	}

	patterns := make([][]*regexp.Regexp, len(categories))
	for i, cat := range categories {
		compiled := make([]*regexp.Regexp, len(cat.Keywords))
		for j, kw := range cat.Keywords {
			compiled[j] = excerptPattern(kw, opts.Radius)
		}
		patterns[i] = compiled
	}
	return &Detector{
		categories: categories,
		patterns:   patterns,
		maxExcerpt: opts.MaxExcerptLen,
	}
}

// excerptPattern captures the keyword plus up to radius runes on each side,
// stopping at sentence boundaries.
func excerptPattern(keyword string, radius int) *regexp.Regexp {
	bound := strconv.Itoa(radius)
	r := regexp.QuoteMeta(strings.ToLower(keyword))
	return regexp.MustCompile(`(?is)[^.]{0,` + bound + `}\b` + r + `\b[^.]{0,` + bound + `}`)
}

// Detect scans text for every declared category. Each category appears in the
// result exactly once, in declaration order; missing clauses carry an empty
// excerpt. Output is bit-identical for identical input.
func (d *Detector) Detect(text string) domain.ClauseMap {
	out := make(domain.ClauseMap, 0, len(d.categories))
	for i, cat := range d.categories {
		result := domain.ClauseResult{Category: cat.Name}
		for _, pattern := range d.patterns[i] {
			m := pattern.FindString(text)
			if m == "" {
				continue
			}
			result.Found = true
			result.Excerpt = d.cleanExcerpt(m)
			break
		}
		out = append(out, result)
	}
	return out
}

func (d *Detector) cleanExcerpt(raw string) string {
	flat := strings.Join(strings.Fields(raw), " ")
	runes := []rune(flat)
	if len(runes) > d.maxExcerpt {
		flat = strings.TrimSpace(string(runes[:d.maxExcerpt]))
	}
	return flat
}
