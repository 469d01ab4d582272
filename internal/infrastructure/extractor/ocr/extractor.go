// Package ocr recovers text from scanned PDFs by rasterizing pages with
// pdftoppm and running tesseract over the images. Both tools are invoked
// as external commands, so the package works without cgo.
package ocr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; empty means "pdftoppm"
	Tesseract string // binary name or absolute path; empty means "tesseract"
	Language  string // tesseract language, default "eng"
	DPI       int    // rasterization DPI, default 200
	MaxPages  int    // 0 = no limit
}

type Extractor struct {
	cfg     Config
	storage ports.ObjectStorage
	runner  Runner
	logger  *slog.Logger
}

func NewExtractor(cfg Config, storage ports.ObjectStorage, logger *slog.Logger) *Extractor {
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, storage: storage, runner: execRunner{}, logger: logger}
}

// WithRunner replaces the command runner. Used by tests.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (domain.ExtractedText, error) {
	tmpDir, err := os.MkdirTemp("", "la-ocr-*")
	if err != nil {
		return domain.ExtractedText{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("remove ocr temp dir", "path", tmpDir, "error", err)
		}
	}()

	pdfPath := filepath.Join(tmpDir, "source.pdf")
	if err := e.copyFromStorage(ctx, doc.StoragePath, pdfPath); err != nil {
		return domain.ExtractedText{}, err
	}

	prefix := filepath.Join(tmpDir, "page")
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", pdfPath, prefix)
	if err != nil {
		return domain.ExtractedText{}, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(errb)))
	}

	// pdftoppm writes page-1.png, page-2.png, ...
	pages, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(pages)
	if e.cfg.MaxPages > 0 && len(pages) > e.cfg.MaxPages {
		pages = pages[:e.cfg.MaxPages]
	}
	if len(pages) == 0 {
		return domain.ExtractedText{}, fmt.Errorf("pdftoppm rendered no pages for %s", doc.Filename)
	}

	var b strings.Builder
	for _, img := range pages {
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, img, "stdout", "-l", e.cfg.Language)
		if err != nil {
			e.logger.Warn("tesseract page failed",
				"document_id", doc.ID, "image", filepath.Base(img),
				"error", err, "stderr", strings.TrimSpace(string(errb)))
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.Write(out)
	}

	return domain.ExtractedText{
		Content: strings.TrimSpace(b.String()),
		Origin:  domain.OriginOCR,
	}, nil
}

func (e *Extractor) copyFromStorage(ctx context.Context, key, dst string) error {
	reader, err := e.storage.Open(ctx, key)
	if err != nil {
		return fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create temp pdf: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("copy pdf to temp: %w", err)
	}
	return nil
}
