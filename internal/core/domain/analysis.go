package domain

import "time"

type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskUnknown RiskLevel = "Unknown"
)

// ClauseResult records whether one clause category was detected and the
// supporting excerpt. Excerpt is non-empty only when Found is true.
type ClauseResult struct {
	Category string `json:"category"`
	Found    bool   `json:"found"`
	Excerpt  string `json:"excerpt"`
}

// ClauseMap holds one ClauseResult per declared clause category, in the
// category declaration order. Every known category is always present.
type ClauseMap []ClauseResult

func (m ClauseMap) FoundCount() int {
	n := 0
	for _, c := range m {
		if c.Found {
			n++
		}
	}
	return n
}

type RiskAssessment struct {
	Level   RiskLevel `json:"level"`
	Comment string    `json:"comment"`
}

// Analysis is the aggregate result of one analysis run. It is assembled once
// by the pipeline and immutable afterwards.
type Analysis struct {
	Label         string         `json:"label"`
	Clauses       ClauseMap      `json:"clauses"`
	Risk          RiskAssessment `json:"risk"`
	Summary       string         `json:"summary"`
	Entities      string         `json:"entities"`
	WordCount     int            `json:"word_count"`
	CharCount     int            `json:"char_count"`
	SentenceCount int            `json:"sentence_count"`
	Origin        TextOrigin     `json:"origin"`
}

// HistoryEntry is the write-once report record kept per analyzed document.
type HistoryEntry struct {
	Owner     string    `json:"owner"`
	Filename  string    `json:"filename"`
	DocType   string    `json:"doc_type"`
	Risk      RiskLevel `json:"risk"`
	CreatedAt time.Time `json:"created_at"`
}

// RiskSummary counts history entries per risk level for one owner.
type RiskSummary struct {
	Low     int `json:"low"`
	Medium  int `json:"medium"`
	High    int `json:"high"`
	Unknown int `json:"unknown"`
}
