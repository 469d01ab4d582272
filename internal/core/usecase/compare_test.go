package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
)

type similarityStub struct{ score float64 }

func (s *similarityStub) Compare(a, b string) float64 {
	if a == b {
		return 100
	}
	return s.score
}

type compareRepoFake struct {
	docs map[string]*domain.Document
}

func (f *compareRepoFake) Create(context.Context, *domain.Document) error { return nil }

func (f *compareRepoFake) GetByID(_ context.Context, id string) (*domain.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", errors.New("id="+id))
	}
	return doc, nil
}

func (f *compareRepoFake) UpdateStatus(context.Context, string, domain.DocumentStatus, string) error {
	return nil
}

func (f *compareRepoFake) SaveAnalysis(context.Context, string, domain.Analysis) error { return nil }

type perDocExtractorFake struct {
	texts map[string]string
}

func (f *perDocExtractorFake) Extract(_ context.Context, doc *domain.Document) (domain.ExtractedText, error) {
	return domain.ExtractedText{Content: f.texts[doc.ID], Origin: domain.OriginDigital}, nil
}

func TestCompareDocumentsScoresExtractedTexts(t *testing.T) {
	repo := &compareRepoFake{docs: map[string]*domain.Document{
		"a": {ID: "a", Filename: "a.pdf"},
		"b": {ID: "b", Filename: "b.pdf"},
	}}
	extractor := &perDocExtractorFake{texts: map[string]string{
		"a": "first contract text",
		"b": "second contract text",
	}}
	uc := NewCompareDocumentsUseCase(repo, extractor, &similarityStub{score: 42.5})

	got, err := uc.CompareDocuments(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("CompareDocuments: %v", err)
	}
	if got != 42.5 {
		t.Fatalf("score = %v", got)
	}
}

func TestCompareDocumentSelfIsFull(t *testing.T) {
	repo := &compareRepoFake{docs: map[string]*domain.Document{
		"a": {ID: "a", Filename: "a.pdf"},
	}}
	extractor := &perDocExtractorFake{texts: map[string]string{"a": "same text"}}
	uc := NewCompareDocumentsUseCase(repo, extractor, &similarityStub{})

	got, err := uc.CompareDocuments(context.Background(), "a", "a")
	if err != nil {
		t.Fatalf("CompareDocuments: %v", err)
	}
	if got != 100 {
		t.Fatalf("score = %v, want 100", got)
	}
}

func TestCompareDocumentsMissingDocument(t *testing.T) {
	uc := NewCompareDocumentsUseCase(
		&compareRepoFake{docs: map[string]*domain.Document{}},
		&perDocExtractorFake{},
		&similarityStub{},
	)

	_, err := uc.CompareDocuments(context.Background(), "a", "b")
	if !domain.IsKind(err, domain.ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}
}

func TestCompareDocumentsUnreadableDocument(t *testing.T) {
	repo := &compareRepoFake{docs: map[string]*domain.Document{
		"a": {ID: "a", Filename: "a.pdf"},
		"b": {ID: "b", Filename: "b.pdf"},
	}}
	extractor := &perDocExtractorFake{texts: map[string]string{"a": "text", "b": ""}}
	uc := NewCompareDocumentsUseCase(repo, extractor, &similarityStub{})

	_, err := uc.CompareDocuments(context.Background(), "a", "b")
	if !domain.IsKind(err, domain.ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}

func TestCompareTextsDelegatesToScorer(t *testing.T) {
	uc := NewCompareDocumentsUseCase(&compareRepoFake{}, &perDocExtractorFake{}, &similarityStub{score: 17.25})
	if got := uc.CompareTexts("a", "b"); got != 17.25 {
		t.Fatalf("score = %v", got)
	}
}
