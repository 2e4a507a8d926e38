package normalize

import (
	"fmt"

	"github.com/plazanorte/directory-api/internal/entity"
	"github.com/plazanorte/directory-api/internal/media"
)

// NormalizeContent coerces one raw blog, case or template row into a
// ContentItem. Same degradation rules as NormalizeCompany: nothing here ever
// fails, missing fields become zero values. Rows with no status-ish column at
// all count as published.
func NormalizeContent(profile TableProfile, index int, row RawRow) entity.ContentItem {
	lookup := NewRowLookup(PrepareRow(row))

	id := lookup.ResolveString("", profile.ID...)
	if id == "" {
		id = fmt.Sprintf("%s-%d", profile.Table, index+1)
	}
	title := lookup.ResolveString(id, profile.Name...)

	slug := lookup.ResolveString("", profile.Slug...)
	if slug != "" {
		slug = Slugify(slug)
	}
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		slug = Slugify(id)
	}

	published := true
	if value, ok := lookup.Resolve(profile.Published...); ok {
		published = ToBoolean(value)
	}

	return entity.ContentItem{
		ID:          id,
		Slug:        slug,
		Title:       title,
		Excerpt:     lookup.ResolveString("", profile.Short...),
		Body:        lookup.ResolveString("", profile.Body...),
		CoverImage:  media.NormalizeURL(lookup.ResolveString("", profile.Cover...)),
		Published:   published,
		PublishedAt: resolveTimestamp(lookup, profile.PublishedAt),
		UpdatedAt:   resolveTimestamp(lookup, profile.UpdatedAt),
	}
}
