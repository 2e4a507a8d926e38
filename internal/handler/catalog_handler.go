package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/normalize"
	"github.com/plazanorte/directory-api/internal/service"
)

const defaultPageSize = 12

// CatalogHandler exposes the category and company endpoints.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new handler instance.
func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		log.Printf("list categories failed: %v", err)
		return Error(c, http.StatusInternalServerError, "failed to list categories")
	}
	return Success(c, http.StatusOK, "categories retrieved", categories)
}

// ListCompanies handles GET /api/categories/:slug/companies.
func (h *CatalogHandler) ListCompanies(c echo.Context) error {
	query := listQuery(c)
	slug := strings.TrimSpace(c.Param("slug"))

	companies, total, err := h.service.ListCompanies(c.Request().Context(), slug, query)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			return ErrorCode(c, http.StatusNotFound, "unknown_category", "category not found")
		}
		log.Printf("list companies for %s failed: %v", slug, err)
		return Error(c, http.StatusInternalServerError, "failed to list companies")
	}

	return Success(c, http.StatusOK, "companies retrieved", dto.ListEnvelope{
		Items:    companies,
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
	})
}

// GetCompany handles GET /api/categories/:slug/companies/:company.
func (h *CatalogHandler) GetCompany(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	companySlug := strings.TrimSpace(c.Param("company"))

	company, err := h.service.GetCompany(c.Request().Context(), slug, companySlug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownCategory):
			return ErrorCode(c, http.StatusNotFound, "unknown_category", "category not found")
		case errors.Is(err, service.ErrCompanyNotFound):
			return ErrorCode(c, http.StatusNotFound, "company_not_found", "company not found")
		default:
			log.Printf("get company %s/%s failed: %v", slug, companySlug, err)
			return Error(c, http.StatusInternalServerError, "failed to load company")
		}
	}
	return Success(c, http.StatusOK, "company retrieved", company)
}

func listQuery(c echo.Context) dto.ListQuery {
	return dto.ListQuery{
		Page:     normalize.SanitizePage(c.QueryParam("page"), 1),
		PageSize: normalize.SanitizePageSize(c.QueryParam("page_size"), defaultPageSize),
	}
}
