// Package sitemap aggregates the public content surface into a gzipped XML
// sitemap, memoized per base URL.
package sitemap

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/plazanorte/directory-api/internal/cache"
	"github.com/plazanorte/directory-api/internal/dto"
	"github.com/plazanorte/directory-api/internal/entity"
	"github.com/plazanorte/directory-api/internal/normalize"
)

// ContentLister is the slice of ContentService the builder needs.
type ContentLister interface {
	List(ctx context.Context, kind string, query dto.ListQuery) ([]entity.ContentItem, int, error)
}

// Result carries the two serialized forms the handler can serve.
type Result struct {
	XML  []byte
	Gzip []byte
}

// Builder assembles and caches the sitemap.
type Builder struct {
	content ContentLister
	cache   *cache.TTL
	ttl     time.Duration
}

// New creates a sitemap builder.
func New(content ContentLister, ttlCache *cache.TTL, ttl time.Duration) *Builder {
	return &Builder{content: content, cache: ttlCache, ttl: ttl}
}

type urlEntry struct {
	loc     string
	lastmod string
}

// Build returns the sitemap for a base URL, from cache when fresh.
func (b *Builder) Build(ctx context.Context, baseURL string) (Result, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	cacheKey := "sitemap:" + baseURL
	if cached, ok := b.cache.Get(cacheKey); ok {
		if result, ok := cached.(Result); ok {
			return result, nil
		}
	}

	entries := []urlEntry{
		{loc: baseURL + "/"},
		{loc: baseURL + "/blog"},
		{loc: baseURL + "/cases"},
		{loc: baseURL + "/templates"},
	}
	for _, profile := range normalize.CategoryProfiles {
		entries = append(entries, urlEntry{loc: baseURL + "/categorias/" + profile.Table})
	}

	// Paginate through every published item per content kind.
	for _, kind := range []string{"blog", "cases", "templates"} {
		prefix := "/" + kind + "/"
		page := 1
		for {
			query := dto.ListQuery{Page: page, PageSize: normalize.MaxPageSize}
			items, total, err := b.content.List(ctx, kind, query)
			if err != nil {
				return Result{}, fmt.Errorf("list %s for sitemap: %w", kind, err)
			}
			for _, item := range items {
				lastmod := ""
				if item.UpdatedAt != nil {
					lastmod = *item.UpdatedAt
				} else if item.PublishedAt != nil {
					lastmod = *item.PublishedAt
				}
				entries = append(entries, urlEntry{loc: baseURL + prefix + item.Slug, lastmod: lastmod})
			}
			if page*normalize.MaxPageSize >= total || len(items) == 0 {
				break
			}
			page++
		}
	}

	xmlBytes := serialize(dedup(entries))
	gzBytes, err := compress(xmlBytes)
	if err != nil {
		return Result{}, fmt.Errorf("gzip sitemap: %w", err)
	}

	result := Result{XML: xmlBytes, Gzip: gzBytes}
	b.cache.Set(cacheKey, result, b.ttl)
	return result, nil
}

func dedup(entries []urlEntry) []urlEntry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, dup := seen[e.loc]; dup {
			continue
		}
		seen[e.loc] = struct{}{}
		out = append(out, e)
	}
	return out
}

func serialize(entries []urlEntry) []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, e := range entries {
		buf.WriteString("  <url><loc>")
		xml.EscapeText(&buf, []byte(e.loc))
		buf.WriteString("</loc>")
		if e.lastmod != "" {
			buf.WriteString("<lastmod>")
			xml.EscapeText(&buf, []byte(e.lastmod))
			buf.WriteString("</lastmod>")
		}
		buf.WriteString("</url>\n")
	}
	buf.WriteString("</urlset>\n")
	return buf.Bytes()
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
