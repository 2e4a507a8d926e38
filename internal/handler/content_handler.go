package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/service"
)

// ContentHandler exposes blog, case study and template endpoints. One handler
// serves all three kinds; routes bind the kind.
type ContentHandler struct {
	service *service.ContentService
}

// NewContentHandler creates a new handler instance.
func NewContentHandler(service *service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// List returns the list handler for a content kind.
func (h *ContentHandler) List(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := listQuery(c)
		items, total, err := h.service.List(c.Request().Context(), kind, query)
		if err != nil {
			log.Printf("list %s failed: %v", kind, err)
			return Error(c, http.StatusInternalServerError, "failed to list "+kind)
		}
		return Success(c, http.StatusOK, kind+" retrieved", dto.ListEnvelope{
			Items:    items,
			Page:     query.Page,
			PageSize: query.PageSize,
			Total:    total,
		})
	}
}

// Get returns the detail handler for a content kind.
func (h *ContentHandler) Get(kind string) echo.HandlerFunc {
	return func(c echo.Context) error {
		slug := strings.TrimSpace(c.Param("slug"))
		item, err := h.service.Get(c.Request().Context(), kind, slug)
		if err != nil {
			if errors.Is(err, service.ErrContentNotFound) {
				return ErrorCode(c, http.StatusNotFound, "content_not_found", "content not found")
			}
			log.Printf("get %s %s failed: %v", kind, slug, err)
			return Error(c, http.StatusInternalServerError, "failed to load "+kind)
		}
		return Success(c, http.StatusOK, kind+" retrieved", item)
	}
}
