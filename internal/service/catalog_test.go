package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plazanorte/directory-api/internal/cache"
	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/normalize"
)

type fakeCatalogRepo struct {
	rows       map[string][]normalize.RawRow
	err        error
	countCalls int
}

func (f *fakeCatalogRepo) CountRows(ctx context.Context, table string) (int, error) {
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	return len(f.rows[table]), nil
}

func (f *fakeCatalogRepo) ListRows(ctx context.Context, table string, limit, offset int) ([]normalize.RawRow, error) {
	if f.err != nil {
		return nil, f.err
	}
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

func TestCatalogService_ListCategories_Memoizes(t *testing.T) {
	repo := &fakeCatalogRepo{rows: map[string][]normalize.RawRow{
		"beleza": {{"id": 1}},
	}}
	now := time.Now()
	ttlCache := cache.NewWithClock(func() time.Time { return now })
	svc := NewCatalogService(repo, ttlCache, 5*time.Minute)

	first, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(normalize.CategoryProfiles) {
		t.Fatalf("expected %d summaries, got %d", len(normalize.CategoryProfiles), len(first))
	}
	callsAfterFirst := repo.countCalls

	if _, err := svc.ListCategories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.countCalls != callsAfterFirst {
		t.Fatalf("expected cached second call, count queries went %d -> %d", callsAfterFirst, repo.countCalls)
	}

	// Past the TTL the summaries are rebuilt.
	now = now.Add(6 * time.Minute)
	if _, err := svc.ListCategories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.countCalls == callsAfterFirst {
		t.Fatal("expected expired cache to trigger recount")
	}
}

func TestCatalogService_ListCompanies_UnknownCategory(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, cache.New(), time.Minute)

	_, _, err := svc.ListCompanies(context.Background(), "padaria", dto.ListQuery{Page: 1, PageSize: 12})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCatalogService_ListCompanies_SynthesizedIDsUseAbsolutePosition(t *testing.T) {
	repo := &fakeCatalogRepo{rows: map[string][]normalize.RawRow{
		"moda": {
			{"nome": "Loja Um"},
			{"nome": "Loja Dois"},
			{"nome": "Loja Tres"},
		},
	}}
	svc := NewCatalogService(repo, cache.New(), time.Minute)

	companies, total, err := svc.ListCompanies(context.Background(), "moda", dto.ListQuery{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(companies) != 1 {
		t.Fatalf("expected 1 of 3 on page 2, got %d of %d", len(companies), total)
	}
	if companies[0].ID != "moda-3" {
		t.Fatalf("expected synthesized id moda-3, got %q", companies[0].ID)
	}
}

func TestCatalogService_GetCompany(t *testing.T) {
	repo := &fakeCatalogRepo{rows: map[string][]normalize.RawRow{
		"saude": {
			{"id": 4, "nome": "Clínica São José"},
			{"id": 5, "nome": "Outro"},
		},
	}}
	svc := NewCatalogService(repo, cache.New(), time.Minute)

	record, err := svc.GetCompany(context.Background(), "saude", "clinica-sao-jose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "4" {
		t.Fatalf("expected company 4, got %+v", record)
	}

	// Lookup by raw id also resolves.
	if _, err := svc.GetCompany(context.Background(), "saude", "5"); err != nil {
		t.Fatalf("lookup by id failed: %v", err)
	}

	if _, err := svc.GetCompany(context.Background(), "saude", "nope"); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
