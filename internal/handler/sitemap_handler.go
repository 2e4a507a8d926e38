package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/sitemap"
)

// SitemapHandler serves the generated sitemap.
type SitemapHandler struct {
	builder *sitemap.Builder
	baseURL string
}

// NewSitemapHandler creates a new handler instance.
func NewSitemapHandler(builder *sitemap.Builder, baseURL string) *SitemapHandler {
	return &SitemapHandler{builder: builder, baseURL: baseURL}
}

// Serve handles GET /sitemap.xml, gzipped when the client accepts it.
func (h *SitemapHandler) Serve(c echo.Context) error {
	result, err := h.builder.Build(c.Request().Context(), h.baseURL)
	if err != nil {
		log.Printf("build sitemap failed: %v", err)
		return Error(c, http.StatusInternalServerError, "failed to build sitemap")
	}

	if strings.Contains(c.Request().Header.Get("Accept-Encoding"), "gzip") {
		c.Response().Header().Set("Content-Encoding", "gzip")
		return c.Blob(http.StatusOK, "application/xml", result.Gzip)
	}
	return c.Blob(http.StatusOK, "application/xml", result.XML)
}
