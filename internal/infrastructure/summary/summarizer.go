// Package summary produces a short extractive digest of a document.
package summary

import "strings"

// minSentenceLen filters out headings, numbering and other fragments that
// a sentence split produces but that carry no summary value.
const minSentenceLen = 30

const DefaultSentences = 4

type Summarizer struct {
	sentences int
}

func New(sentences int) *Summarizer {
	if sentences <= 0 {
		sentences = DefaultSentences
	}
	return &Summarizer{sentences: sentences}
}

// Summarize returns the first substantive sentences of the text joined into
// one paragraph. Extraction keeps the document's own wording; nothing is
// paraphrased.
func (s *Summarizer) Summarize(text string) string {
	var picked []string
	for _, sent := range splitSentences(text) {
		if len(sent) < minSentenceLen {
			continue
		}
		picked = append(picked, sent)
		if len(picked) == s.sentences {
			break
		}
	}
	if len(picked) == 0 {
		return "Document too short to summarize."
	}
	return strings.Join(picked, " ")
}

// splitSentences breaks text on terminal punctuation, keeping the
// punctuation with its sentence and flattening internal whitespace.
func splitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := normalize(cur.String()); s != "" {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := normalize(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
