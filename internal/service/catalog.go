package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plazanorte/directory-api/internal/cache"
	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/entity"
	"github.com/plazanorte/directory-api/internal/normalize"
	"github.com/plazanorte/directory-api/internal/repository"
)

// ErrUnknownCategory indicates the category slug maps to no legacy table.
var ErrUnknownCategory = errors.New("unknown category")

// ErrCompanyNotFound indicates no row in the category normalizes to the slug.
var ErrCompanyNotFound = errors.New("company not found")

const categoriesCacheKey = "categories"

// CatalogService reads the nine legacy category tables and serves them as
// normalized categories and companies.
type CatalogService struct {
	repo     repository.CatalogRepository
	cache    *cache.TTL
	cacheTTL time.Duration
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(repo repository.CatalogRepository, ttlCache *cache.TTL, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{repo: repo, cache: ttlCache, cacheTTL: cacheTTL}
}

// ListCategories returns a summary per category table, with row counts.
// Results are memoized in the injected TTL cache.
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.CategorySummary, error) {
	if cached, ok := s.cache.Get(categoriesCacheKey); ok {
		if summaries, ok := cached.([]entity.CategorySummary); ok {
			return summaries, nil
		}
	}

	summaries := make([]entity.CategorySummary, 0, len(normalize.CategoryProfiles))
	for _, profile := range normalize.CategoryProfiles {
		total, err := s.repo.CountRows(ctx, profile.Table)
		if err != nil {
			return nil, fmt.Errorf("count category %s: %w", profile.Table, err)
		}
		summaries = append(summaries, entity.CategorySummary{
			Slug:        profile.Table,
			Name:        profile.Label,
			Total:       total,
			Description: profile.Description,
		})
	}

	s.cache.Set(categoriesCacheKey, summaries, s.cacheTTL)
	return summaries, nil
}

// ListCompanies returns one normalized page of companies for a category.
func (s *CatalogService) ListCompanies(ctx context.Context, categorySlug string, query dto.ListQuery) ([]entity.CompanyRecord, int, error) {
	profile, ok := normalize.CategoryProfile(categorySlug)
	if !ok {
		return nil, 0, ErrUnknownCategory
	}

	total, err := s.repo.CountRows(ctx, profile.Table)
	if err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	rows, err := s.repo.ListRows(ctx, profile.Table, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}

	companies := make([]entity.CompanyRecord, 0, len(rows))
	for i, row := range rows {
		// The synthesized id fallback uses the absolute listing position so
		// it stays stable across pages of the same call pattern.
		companies = append(companies, normalize.NormalizeCompany(profile, query.Offset()+i, row))
	}
	return companies, total, nil
}

// GetCompany finds one company by its derived slug. Slugs only exist after
// normalization, so the whole table is scanned.
func (s *CatalogService) GetCompany(ctx context.Context, categorySlug, companySlug string) (entity.CompanyRecord, error) {
	profile, ok := normalize.CategoryProfile(categorySlug)
	if !ok {
		return entity.CompanyRecord{}, ErrUnknownCategory
	}

	rows, err := s.repo.AllRows(ctx, profile.Table)
	if err != nil {
		return entity.CompanyRecord{}, fmt.Errorf("load companies: %w", err)
	}

	for i, row := range rows {
		record := normalize.NormalizeCompany(profile, i, row)
		if record.Slug == companySlug || record.ID == companySlug {
			return record, nil
		}
	}
	return entity.CompanyRecord{}, ErrCompanyNotFound
}
