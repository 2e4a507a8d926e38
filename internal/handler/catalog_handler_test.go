package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/plazanorte/directory-api/internal/cache"
	"github.com/plazanorte/directory-api/internal/normalize"
	"github.com/plazanorte/directory-api/internal/service"
)

type fakeCatalogRepo struct {
	rows      map[string][]normalize.RawRow
	lastLimit int
	lastOff   int
	err       error
}

func (f *fakeCatalogRepo) CountRows(ctx context.Context, table string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.rows[table]), nil
}

func (f *fakeCatalogRepo) ListRows(ctx context.Context, table string, limit, offset int) ([]normalize.RawRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit = limit
	f.lastOff = offset
	rows := f.rows[table]
	if offset >= len(rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (f *fakeCatalogRepo) AllRows(ctx context.Context, table string) ([]normalize.RawRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[table], nil
}

func newCatalogHandler(repo *fakeCatalogRepo) *CatalogHandler {
	svc := service.NewCatalogService(repo, cache.New(), time.Minute)
	return NewCatalogHandler(svc)
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	repo := &fakeCatalogRepo{rows: map[string][]normalize.RawRow{
		"beleza": {{"id": 1, "nome": "Acme"}},
	}}
	handler := newCatalogHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListCategories(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Data []struct {
			Slug  string `json:"slug"`
			Total int    `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 9 {
		t.Fatalf("expected nine categories, got %d", len(payload.Data))
	}
	for _, cat := range payload.Data {
		if cat.Slug == "beleza" && cat.Total != 1 {
			t.Fatalf("expected beleza total 1, got %d", cat.Total)
		}
	}
}

func TestCatalogHandler_ListCompanies_SanitizesPaging(t *testing.T) {
	repo := &fakeCatalogRepo{rows: map[string][]normalize.RawRow{
		"beleza": {{"id": 1, "nome": "Acme"}},
	}}
	handler := newCatalogHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/beleza/companies?page=-3&page_size=999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("beleza")

	if err := handler.ListCompanies(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	if repo.lastLimit != normalize.MaxPageSize || repo.lastOff != 0 {
		t.Fatalf("expected sanitized paging, got limit=%d offset=%d", repo.lastLimit, repo.lastOff)
	}

	var payload struct {
		Data struct {
			Page     int `json:"page"`
			PageSize int `json:"pageSize"`
			Total    int `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data.Page != 1 || payload.Data.PageSize != normalize.MaxPageSize || payload.Data.Total != 1 {
		t.Fatalf("unexpected envelope: %+v", payload.Data)
	}
}

func TestCatalogHandler_ListCompanies_UnknownCategory(t *testing.T) {
	handler := newCatalogHandler(&fakeCatalogRepo{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/padaria/companies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("padaria")

	if err := handler.ListCompanies(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound || decodeCode(t, rec) != "unknown_category" {
		t.Fatalf("expected 404 unknown_category, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestCatalogHandler_GetCompany(t *testing.T) {
	repo := &fakeCatalogRepo{rows: map[string][]normalize.RawRow{
		"beleza": {
			{"id": 1, "nome": "Estúdio Beta"},
			{"id": 2, "nome": "Outro"},
		},
	}}
	handler := newCatalogHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/beleza/companies/estudio-beta", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug", "company")
	c.SetParamValues("beleza", "estudio-beta")

	if err := handler.GetCompany(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data struct {
			ID   string `json:"id"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data.ID != "1" || payload.Data.Slug != "estudio-beta" {
		t.Fatalf("unexpected company: %+v", payload.Data)
	}
}

func TestCatalogHandler_GetCompany_NotFound(t *testing.T) {
	repo := &fakeCatalogRepo{rows: map[string][]normalize.RawRow{"beleza": {}}}
	handler := newCatalogHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/categories/beleza/companies/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug", "company")
	c.SetParamValues("beleza", "nope")

	if err := handler.GetCompany(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound || decodeCode(t, rec) != "company_not_found" {
		t.Fatalf("expected 404 company_not_found, got %d %s", rec.Code, rec.Body.String())
	}
}
