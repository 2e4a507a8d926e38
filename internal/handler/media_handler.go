package handler

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/media"
)

// MediaHandler proxies external https media through the API origin. Host
// validation is the SSRF defense; every rejection is a 400 with a code that
// distinguishes protocol from host refusal.
type MediaHandler struct {
	client *http.Client
}

// NewMediaHandler creates a proxy handler. A nil client gets a bounded
// default whose redirect hops are re-validated against the SSRF policy.
func NewMediaHandler(client *http.Client, timeout time.Duration) *MediaHandler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if client == nil {
		client = &http.Client{
			Timeout:       timeout,
			CheckRedirect: checkRedirect,
		}
	}
	return &MediaHandler{client: client}
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 5 {
		return fmt.Errorf("too many redirects")
	}
	if req.URL.Scheme != "https" {
		return fmt.Errorf("redirect to non-https target")
	}
	if media.IsPrivateHostname(req.URL.Hostname()) {
		return fmt.Errorf("redirect to forbidden host")
	}
	return nil
}

// Proxy handles GET /api/media?url=.
func (h *MediaHandler) Proxy(c echo.Context) error {
	raw := c.QueryParam("url")
	target, err := url.Parse(raw)
	if err != nil || !target.IsAbs() || target.Host == "" {
		return ErrorCode(c, http.StatusBadRequest, "invalid_url", "url parameter must be an absolute URL")
	}
	if target.Scheme != "https" {
		return ErrorCode(c, http.StatusBadRequest, "insecure_protocol", "only https media can be proxied")
	}
	if media.IsPrivateHostname(target.Hostname()) {
		return ErrorCode(c, http.StatusBadRequest, "forbidden_host", "host is not allowed")
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		return ErrorCode(c, http.StatusBadRequest, "invalid_url", "url parameter must be an absolute URL")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		log.Printf("media fetch %s failed: %v", target.Host, err)
		return ErrorCode(c, http.StatusNotFound, "fetch_failed", "could not fetch media")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrorCode(c, http.StatusNotFound, "fetch_failed", "could not fetch media")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Stream(http.StatusOK, contentType, resp.Body)
}
