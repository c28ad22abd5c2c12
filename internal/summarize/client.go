// Package summarize is the HTTP client for the PDF-summarization backend.
//
// The backend exposes three operations: upload a PDF for summarization,
// derive the URL of the generated summary PDF, and download that PDF.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// PageSummary is the backend's summary of a single source page.
type PageSummary struct {
	Page    int    `json:"page"`
	Summary string `json:"summary"`
}

// HierarchicalSummary is the backend's response for an uploaded PDF: one
// note-style narrative block plus per-page summaries in source order.
type HierarchicalSummary struct {
	DocumentID       string        `json:"document_id"`
	NoteStyleSummary string        `json:"note_style_summary"`
	Pages            []PageSummary `json:"pages"`

	// SummaryPDFURL is advisory metadata; the download URL is derived from
	// DocumentID instead.
	SummaryPDFURL string `json:"summary_pdf_url"`
}

// Client talks to the summarization backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the configured backend.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// NewClientWithHTTP creates a Client with an injected *http.Client.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  hc,
	}
}

// IsPDF reports whether filename names a PDF. Callers must skip
// summarization entirely for non-PDF uploads.
func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// SummarizePDF uploads a PDF as a multipart body and returns the parsed,
// schema-validated summary. Transport failures return *ErrNetwork, non-2xx
// responses return *ErrBackend with the backend's detail message when the
// error body is parseable JSON.
func (c *Client) SummarizePDF(ctx context.Context, filename string, content io.Reader) (*HierarchicalSummary, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/summarize-pdf", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrNetwork{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrNetwork{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, backendError(resp.StatusCode, raw)
	}

	if err := validateSummary(raw); err != nil {
		return nil, err
	}

	var summary HierarchicalSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, &ErrInvalidSummary{Err: err}
	}
	return &summary, nil
}

// SummaryPDFURL returns the download URL for a summarized document. Pure
// string construction, no network call.
func (c *Client) SummaryPDFURL(documentID string) string {
	return fmt.Sprintf("%s/api/summary-pdf/%s", c.baseURL, documentID)
}

// DownloadSummaryPDF fetches the derived summary PDF and saves it to dest.
// The write goes through a temp file in the destination directory so a
// failed download never leaves a truncated PDF behind.
func (c *Client) DownloadSummaryPDF(ctx context.Context, documentID, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SummaryPDFURL(documentID), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &ErrNetwork{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return backendError(resp.StatusCode, raw)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".studypal-download-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &ErrNetwork{Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// backendError extracts {"detail": "..."} from an error body when possible.
func backendError(status int, raw []byte) *ErrBackend {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return &ErrBackend{Status: status, Detail: body.Detail}
	}
	return &ErrBackend{Status: status}
}
