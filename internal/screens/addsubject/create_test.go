package addsubject

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayoung/studypal/internal/subject"
	"github.com/dayoung/studypal/internal/summarize"
)

type fixedIdentity struct{ n int }

func (f *fixedIdentity) NewID() string {
	f.n++
	return string(rune('a' + f.n - 1))
}

func (f *fixedIdentity) NewColor() string { return "#3b82f6" }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPrepareSummary_NonPDFSkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()
	client := summarize.NewClientWithHTTP(srv.URL, srv.Client())

	path := writeFile(t, "slides.pptx", "not a pdf")
	summary, err := PrepareSummary(context.Background(), client, path)

	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.Zero(t, calls.Load(), "non-PDF upload must never hit the backend")
}

func TestPrepareSummary_NoFile(t *testing.T) {
	summary, err := PrepareSummary(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestPrepareSummary_PDFUploads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"document_id": "doc-1",
			"note_style_summary": "overview",
			"pages": [{"page": 1, "summary": "p1"}]
		}`))
	}))
	defer srv.Close()
	client := summarize.NewClientWithHTTP(srv.URL, srv.Client())

	path := writeFile(t, "History.PDF", "%PDF-1.4")
	summary, err := PrepareSummary(context.Background(), client, path)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "doc-1", summary.DocumentID)
}

func TestPrepareSummary_MissingFile(t *testing.T) {
	_, err := PrepareSummary(context.Background(), nil, "/no/such/file.pdf")
	assert.Error(t, err)
}

func TestScreen_FailedSummaryCommitsNothing(t *testing.T) {
	store := subject.NewStore(&fixedIdentity{})
	scr := New(store, nil)

	_, cmd := scr.Update(summaryReadyMsg{Name: "Biology", Err: errors.New("backend down")})

	assert.Nil(t, cmd, "no toast or tab switch on failure")
	assert.Equal(t, 0, store.Len(), "failed summarization must not commit a subject")
	assert.Equal(t, "backend down", scr.errMsg)
	assert.False(t, scr.processing)
}

func TestScreen_SuccessCommitsSubject(t *testing.T) {
	store := subject.NewStore(&fixedIdentity{})
	scr := New(store, nil)

	summary := &summarize.HierarchicalSummary{DocumentID: "doc-1"}
	_, cmd := scr.Update(summaryReadyMsg{Name: "Biology", Summary: summary})

	require.NotNil(t, cmd, "success should emit toast + tab switch")
	require.Equal(t, 1, store.Len())
	sub := store.List()[0]
	assert.Equal(t, "Biology", sub.Name)
	require.NotNil(t, sub.Summary)
	assert.Equal(t, "doc-1", sub.Summary.DocumentID)
}

func TestScreen_NoSummarySubjectHasNone(t *testing.T) {
	store := subject.NewStore(&fixedIdentity{})
	scr := New(store, nil)

	_, _ = scr.Update(summaryReadyMsg{Name: "Gym Class"})

	require.Equal(t, 1, store.Len())
	assert.Nil(t, store.List()[0].Summary)
}
