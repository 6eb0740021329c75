package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestImagesFallsBackToPlaceholder(t *testing.T) {
	resp := httptest.NewRecorder()
	Images(Public()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/images/strat.jpg", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("expected svg content type got %q", ct)
	}
	if !strings.Contains(resp.Body.String(), "<svg") {
		t.Fatalf("expected placeholder artwork")
	}
}

func TestImagesServesShippedFile(t *testing.T) {
	root := fstest.MapFS{
		"images/amp.jpg":         {Data: []byte("jpeg-bytes")},
		"images/placeholder.svg": {Data: []byte("<svg/>")},
	}
	resp := httptest.NewRecorder()
	Images(root).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/images/amp.jpg", nil))

	if resp.Code != http.StatusOK || resp.Body.String() != "jpeg-bytes" {
		t.Fatalf("expected shipped file, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestImagesWithoutPlaceholderIs404(t *testing.T) {
	resp := httptest.NewRecorder()
	Images(fstest.MapFS{}).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/images/amp.jpg", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
