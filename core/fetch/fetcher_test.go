package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/scrapemark/core"
)

func TestFetch(t *testing.T) {
	const page = `<html><head><title>Hello</title></head><body><p>Hi</p></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(page))
	}))
	defer srv.Close()

	f := New(5 * time.Second)
	result, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, page, result.HTML)
	assert.Equal(t, core.ExtractionStandard, result.ExtractionMethod)
	assert.Equal(t, "html_fetch", result.Extra["source"])
	assert.Equal(t, "200", result.Extra["status_code"])

	_, err = time.Parse(time.RFC3339, result.Timestamp)
	assert.NoError(t, err, "timestamp should be RFC3339")
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := New(5 * time.Second)
	_, err := f.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchUnreachable(t *testing.T) {
	f := New(time.Second)
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1")
	assert.Error(t, err)
}

func TestIsDocumentationSite(t *testing.T) {
	assert.True(t, isDocumentationSite("https://docs.example.com/guide"))
	assert.True(t, isDocumentationSite("https://example.com/documentation/api"))
	assert.False(t, isDocumentationSite("https://example.com/blog"))
}
