package clause

import (
	"strings"
	"testing"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

func clauseByName(t *testing.T, m domain.ClauseMap, category string) domain.ClauseResult {
	t.Helper()
	for _, c := range m {
		if c.Category == category {
			return c
		}
	}
	t.Fatalf("category %s missing", category)
	return domain.ClauseResult{}
}

func TestDetectAllCategoriesAlwaysPresent(t *testing.T) {
	d := New(nil, Options{})
	for _, text := range []string{"", "no legal vocabulary here", strings.Repeat("x", 5000)} {
		got := d.Detect(text)
		if len(got) != len(DefaultCategories()) {
			t.Fatalf("expected %d categories, got %d", len(DefaultCategories()), len(got))
		}
		for i, cat := range DefaultCategories() {
			if got[i].Category != cat.Name {
				t.Fatalf("category order mismatch at %d: %q vs %q", i, got[i].Category, cat.Name)
			}
		}
	}
}

func TestDetectMissingClauseHasEmptyExcerpt(t *testing.T) {
	d := New(nil, Options{})
	got := d.Detect("plain text without any of the scanned vocabulary")
	for _, c := range got {
		if !c.Found && c.Excerpt != "" {
			t.Fatalf("category %s: found=false but excerpt=%q", c.Category, c.Excerpt)
		}
	}
}

func TestDetectTerminationWithExcerpt(t *testing.T) {
	d := New(nil, Options{})
	text := "This Employment Contract is between Employer and Employee regarding salary and termination."

	got := d.Detect(text)
	term := clauseByName(t, got, "Termination")
	if !term.Found {
		t.Fatalf("expected Termination found")
	}
	if !strings.Contains(strings.ToLower(term.Excerpt), "termination") {
		t.Fatalf("excerpt %q does not contain keyword", term.Excerpt)
	}

	fm := clauseByName(t, got, "Force Majeure")
	if fm.Found || fm.Excerpt != "" {
		t.Fatalf("expected Force Majeure missing, got %+v", fm)
	}
}

func TestDetectFirstKeywordWins(t *testing.T) {
	cats := []Category{
		{Name: "Confidentiality", Keywords: []string{"confidential", "proprietary"}},
	}
	d := New(cats, Options{})
	text := "All proprietary material stays protected. Each confidential report is filed separately."

	got := d.Detect(text)
	if !got[0].Found {
		t.Fatalf("expected Confidentiality found")
	}
	// "confidential" is declared first, so its excerpt wins even though
	// "proprietary" appears earlier in the text.
	if !strings.Contains(got[0].Excerpt, "confidential report") {
		t.Fatalf("expected first-declared keyword excerpt, got %q", got[0].Excerpt)
	}
}

func TestDetectExcerptBoundedAndFlattened(t *testing.T) {
	d := New(nil, Options{Radius: 150, MaxExcerptLen: 300})
	text := strings.Repeat("w", 400) + "\nforce majeure\n" + strings.Repeat("y", 400)

	got := d.Detect(text)
	fm := clauseByName(t, got, "Force Majeure")
	if !fm.Found {
		t.Fatalf("expected Force Majeure found")
	}
	if strings.ContainsAny(fm.Excerpt, "\n\r") {
		t.Fatalf("excerpt contains raw newlines: %q", fm.Excerpt)
	}
	if n := len([]rune(fm.Excerpt)); n > 300 {
		t.Fatalf("excerpt length %d exceeds 300", n)
	}
}

func TestDetectStopsAtSentenceBoundary(t *testing.T) {
	d := New(nil, Options{})
	text := "Unrelated preamble sentence. The parties may terminate this agreement with notice. Trailing sentence."

	got := d.Detect(text)
	term := clauseByName(t, got, "Termination")
	if !term.Found {
		t.Fatalf("expected Termination found")
	}
	if strings.Contains(term.Excerpt, "preamble") || strings.Contains(term.Excerpt, "Trailing") {
		t.Fatalf("excerpt crossed sentence boundary: %q", term.Excerpt)
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	d := New(nil, Options{})
	got := d.Detect("INDEMNITY obligations survive expiry of this agreement")
	ind := clauseByName(t, got, "Indemnity")
	if !ind.Found {
		t.Fatalf("expected case-insensitive Indemnity match")
	}
}

func TestDetectDeterministic(t *testing.T) {
	d := New(nil, Options{})
	text := "Payment of the licence fee is due on signature; liability is capped at the fee paid."

	first := d.Detect(text)
	for i := 0; i < 5; i++ {
		again := d.Detect(text)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("detection not deterministic at %s", first[j].Category)
			}
		}
	}
}
