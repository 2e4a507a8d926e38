package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type fakeTransport struct {
	fn func(*http.Request) (*http.Response, error)
}

func (f fakeTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return f.fn(r)
}

func mediaRequest(t *testing.T, h *MediaHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/media?url="+target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Proxy(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func decodeCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload.Code
}

func TestMediaHandler_RejectsInvalidURL(t *testing.T) {
	h := NewMediaHandler(nil, time.Second)

	rec := mediaRequest(t, h, "not-a-url")
	if rec.Code != http.StatusBadRequest || decodeCode(t, rec) != "invalid_url" {
		t.Fatalf("expected 400 invalid_url, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestMediaHandler_RejectsPlaintextProtocol(t *testing.T) {
	h := NewMediaHandler(nil, time.Second)

	rec := mediaRequest(t, h, "http%3A%2F%2Fexample.com%2Fx.png")
	if rec.Code != http.StatusBadRequest || decodeCode(t, rec) != "insecure_protocol" {
		t.Fatalf("expected 400 insecure_protocol, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestMediaHandler_RejectsPrivateHosts(t *testing.T) {
	h := NewMediaHandler(nil, time.Second)

	for _, target := range []string{
		"https%3A%2F%2Flocalhost%2Fa.png",
		"https%3A%2F%2F127.0.0.1%2Fa.png",
		"https%3A%2F%2F192.168.1.1%2Fa.png",
	} {
		rec := mediaRequest(t, h, target)
		if rec.Code != http.StatusBadRequest || decodeCode(t, rec) != "forbidden_host" {
			t.Fatalf("expected 400 forbidden_host for %s, got %d %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestMediaHandler_StreamsUpstream(t *testing.T) {
	client := &http.Client{Transport: fakeTransport{fn: func(r *http.Request) (*http.Response, error) {
		if r.URL.String() != "https://example.com/x.png" {
			t.Fatalf("unexpected upstream url: %s", r.URL)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"image/png"}},
			Body:       io.NopCloser(strings.NewReader("PNGDATA")),
		}, nil
	}}}
	h := NewMediaHandler(client, time.Second)

	rec := mediaRequest(t, h, "https%3A%2F%2Fexample.com%2Fx.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "PNGDATA" {
		t.Fatalf("expected upstream body streamed, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=86400" {
		t.Fatalf("unexpected cache header: %q", got)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "image/png") {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestMediaHandler_UpstreamFailureIs404(t *testing.T) {
	client := &http.Client{Transport: fakeTransport{fn: func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("boom")),
		}, nil
	}}}
	h := NewMediaHandler(client, time.Second)

	rec := mediaRequest(t, h, "https%3A%2F%2Fexample.com%2Fx.png")
	if rec.Code != http.StatusNotFound || decodeCode(t, rec) != "fetch_failed" {
		t.Fatalf("expected 404 fetch_failed, got %d %s", rec.Code, rec.Body.String())
	}
}
