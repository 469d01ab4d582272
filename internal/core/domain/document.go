package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

type Document struct {
	ID          string         `json:"id"`
	Owner       string         `json:"owner"`
	Filename    string         `json:"filename"`
	MimeType    string         `json:"mime_type"`
	StoragePath string         `json:"storage_path"`
	Status      DocumentStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	Analysis    *Analysis      `json:"analysis,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type TextOrigin string

const (
	OriginDigital TextOrigin = "digital"
	OriginOCR     TextOrigin = "ocr"
	OriginManual  TextOrigin = "manual"
)

// ExtractedText is the normalized output of text extraction. Empty Content
// signals extraction failure; extraction never surfaces an error instead.
type ExtractedText struct {
	Content string     `json:"content"`
	Origin  TextOrigin `json:"origin"`
}

func (t ExtractedText) Chars() int {
	return len([]rune(t.Content))
}
