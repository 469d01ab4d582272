package entity

import (
	"strings"
	"testing"
)

func TestEntitiesFindsAllKinds(t *testing.T) {
	text := "This agreement dated 15 March 2024 is between Acme Widgets Ltd and " +
		"John Carter, made under the Indian Contract Act 1872."
	got := New().Entities(text)

	for _, want := range []string{
		"Organizations:", "Acme Widgets Ltd",
		"People:", "John Carter",
		"Dates:", "15 March 2024",
		"Acts:", "Contract Act 1872",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
	if !strings.Contains(got, " | ") {
		t.Fatalf("sections not separated: %q", got)
	}
}

func TestEntitiesMonthYearFallback(t *testing.T) {
	got := New().Entities("The lease commenced in January 2023 and renews yearly thereafter under its terms.")
	if !strings.Contains(got, "Dates: January 2023") {
		t.Fatalf("month-year fallback not applied: %q", got)
	}
}

func TestEntitiesNoneFound(t *testing.T) {
	if got := New().Entities("nothing capitalized here at all"); got != "No named entities found." {
		t.Fatalf("got %q", got)
	}
}

func TestEntitiesEmptyText(t *testing.T) {
	if got := New().Entities(""); got != "No text" {
		t.Fatalf("got %q", got)
	}
}

func TestEntitiesDeduplicatesInOrder(t *testing.T) {
	text := "Jane Smith met Alan Jones. Jane Smith signed first."
	got := New().Entities(text)
	if strings.Count(got, "Jane Smith") != 1 {
		t.Fatalf("duplicate not removed: %q", got)
	}
	if strings.Index(got, "Jane Smith") > strings.Index(got, "Alan Jones") {
		t.Fatalf("document order not kept: %q", got)
	}
}

func TestEntitiesDeterministic(t *testing.T) {
	text := "Acme Widgets Ltd and Beta Holdings Inc signed with John Carter and Jane Smith on 1 May 2024."
	e := New()
	first := e.Entities(text)
	for i := 0; i < 5; i++ {
		if got := e.Entities(text); got != first {
			t.Fatalf("output varies: %q vs %q", first, got)
		}
	}
}
