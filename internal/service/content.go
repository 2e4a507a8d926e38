package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/entity"
	"github.com/plazanorte/directory-api/internal/normalize"
	"github.com/plazanorte/directory-api/internal/repository"
)

// ErrUnknownContentKind indicates the kind maps to no content table.
var ErrUnknownContentKind = errors.New("unknown content kind")

// ErrContentNotFound indicates no published row normalizes to the slug.
var ErrContentNotFound = errors.New("content not found")

// ContentService serves blog posts, case studies and templates. The status
// column that marks an item published varies per table and only resolves
// during normalization, so listing normalizes the full table before paging.
// The content tables are small; this mirrors how the category detail lookup
// works.
type ContentService struct {
	repo repository.CatalogRepository
}

// NewContentService creates a new instance of ContentService.
func NewContentService(repo repository.CatalogRepository) *ContentService {
	return &ContentService{repo: repo}
}

// List returns one page of published content items for a kind.
func (s *ContentService) List(ctx context.Context, kind string, query dto.ListQuery) ([]entity.ContentItem, int, error) {
	published, err := s.published(ctx, kind)
	if err != nil {
		return nil, 0, err
	}

	total := len(published)
	start := query.Offset()
	if start >= total {
		return []entity.ContentItem{}, total, nil
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}
	return published[start:end], total, nil
}

// Get finds one published content item by slug.
func (s *ContentService) Get(ctx context.Context, kind, slug string) (entity.ContentItem, error) {
	published, err := s.published(ctx, kind)
	if err != nil {
		return entity.ContentItem{}, err
	}
	for _, item := range published {
		if item.Slug == slug || item.ID == slug {
			return item, nil
		}
	}
	return entity.ContentItem{}, ErrContentNotFound
}

func (s *ContentService) published(ctx context.Context, kind string) ([]entity.ContentItem, error) {
	profile, ok := normalize.ContentProfiles[kind]
	if !ok {
		return nil, ErrUnknownContentKind
	}

	rows, err := s.repo.AllRows(ctx, profile.Table)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", profile.Table, err)
	}

	items := make([]entity.ContentItem, 0, len(rows))
	for i, row := range rows {
		item := normalize.NormalizeContent(profile, i, row)
		if item.Published {
			items = append(items, item)
		}
	}
	return items, nil
}
