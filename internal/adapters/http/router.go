// Package httpadapter exposes the analysis pipeline over a small JSON API.
// The caller's identity comes from the X-User header; every read and write
// is scoped to that owner.
package httpadapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jkodavati/legal-analyzer/internal/core/domain"
	"github.com/jkodavati/legal-analyzer/internal/core/ports"
	"github.com/jkodavati/legal-analyzer/internal/observability/metrics"
)

const ownerHeader = "X-User"

type Router struct {
	service    string
	ingest     ports.DocumentIngestor
	reader     ports.DocumentReader
	analyzer   ports.TextAnalyzer
	comparator ports.DocumentComparator
	history    ports.HistoryService

	logger  *slog.Logger
	metrics *metrics.HTTPServerMetrics

	rateLimitRPS   float64
	rateLimitBurst int
	maxConcurrent  int
}

type RouterOptions struct {
	Service        string
	Logger         *slog.Logger
	Metrics        *metrics.HTTPServerMetrics
	RateLimitRPS   float64
	RateLimitBurst int
	MaxConcurrent  int
}

func NewRouter(
	ingest ports.DocumentIngestor,
	reader ports.DocumentReader,
	analyzer ports.TextAnalyzer,
	comparator ports.DocumentComparator,
	history ports.HistoryService,
	options RouterOptions,
) *Router {
	service := options.Service
	if service == "" {
		service = "api"
	}
	return &Router{
		service:        service,
		ingest:         ingest,
		reader:         reader,
		analyzer:       analyzer,
		comparator:     comparator,
		history:        history,
		logger:         options.Logger,
		metrics:        options.Metrics,
		rateLimitRPS:   options.RateLimitRPS,
		rateLimitBurst: options.RateLimitBurst,
		maxConcurrent:  options.MaxConcurrent,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	mux.HandleFunc("/v1/analyze", rt.analyzeText)
	mux.HandleFunc("/v1/compare", rt.compare)
	mux.HandleFunc("/v1/history", rt.listHistory)
	mux.HandleFunc("/v1/history/summary", rt.historySummary)
	mux.HandleFunc("/v1/history/export", rt.exportHistory)

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	if rt.rateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.rateLimitRPS, rt.rateLimitBurst)
	}
	if rt.maxConcurrent > 0 {
		handler = backpressureMiddleware(handler, rt.maxConcurrent, 50*time.Millisecond)
	}
	return requestIDMiddleware(accessLogMiddleware(rt.logger, handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	owner, ok := rt.owner(w, r)
	if !ok {
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.ingest.Upload(
		r.Context(),
		owner,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordUpload(rt.service, doc.MimeType)
	}
	writeJSON(w, http.StatusAccepted, doc)
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	owner, ok := rt.owner(w, r)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, err := rt.ownedDocument(r, owner, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) analyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	owner, ok := rt.owner(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	analysis, err := rt.analyzer.AnalyzeText(r.Context(), owner, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAnalysis(rt.service, analysis.Label, string(analysis.Risk.Level))
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (rt *Router) compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	owner, ok := rt.owner(w, r)
	if !ok {
		return
	}

	var req struct {
		TextA     string `json:"text_a"`
		TextB     string `json:"text_b"`
		DocumentA string `json:"document_a"`
		DocumentB string `json:"document_b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	var (
		score float64
		err   error
	)
	switch {
	case req.DocumentA != "" && req.DocumentB != "":
		if _, err = rt.ownedDocument(r, owner, req.DocumentA); err == nil {
			_, err = rt.ownedDocument(r, owner, req.DocumentB)
		}
		if err == nil {
			score, err = rt.comparator.CompareDocuments(r.Context(), req.DocumentA, req.DocumentB)
		}
	case strings.TrimSpace(req.TextA) != "" && strings.TrimSpace(req.TextB) != "":
		score = rt.comparator.CompareTexts(req.TextA, req.TextB)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "provide either text_a/text_b or document_a/document_b",
		})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordComparison(rt.service, score)
	}
	writeJSON(w, http.StatusOK, map[string]float64{"similarity": score})
}

func (rt *Router) listHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	owner, ok := rt.owner(w, r)
	if !ok {
		return
	}

	entries, err := rt.history.List(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (rt *Router) historySummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	owner, ok := rt.owner(w, r)
	if !ok {
		return
	}

	summary, err := rt.history.Summary(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (rt *Router) exportHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	owner, ok := rt.owner(w, r)
	if !ok {
		return
	}

	raw, err := rt.history.ExportXLSX(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordExport(rt.service)
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="analysis_history.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// ownedDocument loads a document and hides other owners' documents behind
// a not-found answer, so IDs cannot be probed.
func (rt *Router) ownedDocument(r *http.Request, owner, id string) (*domain.Document, error) {
	doc, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if doc.Owner != owner {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", fmt.Errorf("id=%s", id))
	}
	return doc, nil
}

func (rt *Router) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := strings.TrimSpace(r.Header.Get(ownerHeader))
	if owner == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "X-User header is required"})
		return "", false
	}
	return owner, true
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
