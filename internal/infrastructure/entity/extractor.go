// Package entity pulls named entities out of legal text with pattern
// heuristics. Matches are collected in document order and deduplicated,
// so the same text always yields the same line.
package entity

import (
	"regexp"
	"strings"
)

const (
	maxOrgs   = 6
	maxPeople = 8
	maxDates  = 6
	maxActs   = 6
)

var (
	orgPattern    = regexp.MustCompile(`\b[A-Z][A-Za-z0-9&\.,\s]{0,60}\b(?:Ltd|LLP|Pvt|Pvt\.|Limited|Inc|Corporation|Company|Bank)\b`)
	personPattern = regexp.MustCompile(`\b[A-Z][a-z]{2,}\s[A-Z][a-z]{2,}\b`)
	datePattern   = regexp.MustCompile(`\b\d{1,2}\s(?:January|February|March|April|May|June|July|August|September|October|November|December)\s\d{4}\b`)
	monthPattern  = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s\d{4}\b`)
	actPattern    = regexp.MustCompile(`\b[A-Z][A-Za-z\s]{2,} Act(?: \d{4})?\b`)
)

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Entities returns a single display line listing detected organizations,
// people, dates, and statutes, or a fixed message when nothing matched.
func (e *Extractor) Entities(text string) string {
	if text == "" {
		return "No text"
	}

	orgs := findDistinct(orgPattern, text, maxOrgs)
	people := findDistinct(personPattern, text, maxPeople)
	dates := findDistinct(datePattern, text, maxDates)
	if len(dates) == 0 {
		dates = findDistinct(monthPattern, text, maxDates)
	}
	acts := findDistinct(actPattern, text, maxActs)

	var parts []string
	if len(orgs) > 0 {
		parts = append(parts, "Organizations: "+strings.Join(orgs, ", "))
	}
	if len(people) > 0 {
		parts = append(parts, "People: "+strings.Join(people, ", "))
	}
	if len(dates) > 0 {
		parts = append(parts, "Dates: "+strings.Join(dates, ", "))
	}
	if len(acts) > 0 {
		parts = append(parts, "Acts: "+strings.Join(acts, ", "))
	}
	if len(parts) == 0 {
		return "No named entities found."
	}
	return strings.Join(parts, " | ")
}

// findDistinct keeps the first occurrence of each distinct match, in
// document order, up to max entries.
func findDistinct(p *regexp.Regexp, text string, max int) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range p.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
		if len(out) == max {
			break
		}
	}
	return out
}
