package normalize

import (
	"fmt"
	"strings"

	"github.com/plazanorte/directory-api/internal/entity"
	"github.com/plazanorte/directory-api/internal/media"
)

// NormalizeCompany coerces one raw category-table row into the canonical
// CompanyRecord. It is pure and never fails: missing or malformed columns
// degrade to empty strings, empty lists or nil, following the profile's
// candidate lists. index is the row's position within the current listing and
// only feeds the synthesized id fallback, which is not a durable identity.
func NormalizeCompany(profile TableProfile, index int, row RawRow) entity.CompanyRecord {
	lookup := NewRowLookup(PrepareRow(row))

	id := lookup.ResolveString("", profile.ID...)
	if id == "" {
		id = fmt.Sprintf("%s-%d", profile.Table, index+1)
	}
	name := lookup.ResolveString(id, profile.Name...)

	slug := lookup.ResolveString("", profile.Slug...)
	if slug != "" {
		slug = Slugify(slug)
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		slug = Slugify(id)
	}

	room := lookup.ResolveString("", profile.Room...)
	address := ParseAddress(lookup.ResolveAny(profile.Address...))

	record := entity.CompanyRecord{
		ID:               id,
		Slug:             slug,
		Name:             name,
		Tagline:          lookup.ResolveString("", profile.Tagline...),
		ShortDescription: lookup.ResolveString("", profile.Short...),
		Description:      lookup.ResolveString("", profile.Body...),
		Phones:           ParseStringList(lookup.ResolveAny(profile.Phones...)),
		Emails:           ParseStringList(lookup.ResolveAny(profile.Emails...)),
		Services:         ParseStringList(lookup.ResolveAny(profile.Services...)),
		Address:          CombineRoomAddress(room, address),
		Gallery:          ParseGallery(lookup.ResolveAny(profile.Gallery...)),
		Logo:             media.NormalizeURL(lookup.ResolveString("", profile.Logo...)),
		CoverImage:       media.NormalizeURL(lookup.ResolveString("", profile.Cover...)),
		Highlight:        ToBoolean(lookup.ResolveAny(profile.Highlight...)),
		CreatedAt:        resolveTimestamp(lookup, profile.CreatedAt),
		UpdatedAt:        resolveTimestamp(lookup, profile.UpdatedAt),
	}
	record.SocialLinks = buildSocialLinks(lookup, profile)

	if record.Phones == nil {
		record.Phones = []string{}
	}
	if record.Emails == nil {
		record.Emails = []string{}
	}
	if record.Services == nil {
		record.Services = []string{}
	}
	if record.Gallery == nil {
		record.Gallery = []string{}
	}
	return record
}

// PrepareRow pre-normalizes raw driver values so downstream resolution only
// sees JSON-safe shapes: []byte becomes string, time.Time becomes an RFC 3339
// string, JSON-looking text becomes its parsed value.
func PrepareRow(row RawRow) RawRow {
	out := make(RawRow, len(row))
	for k, v := range row {
		switch v.(type) {
		case string, []byte:
			out[k] = ParsePossibleJSON(v)
		case nil:
			out[k] = nil
		default:
			if s := ToNullableString(v); s != nil {
				out[k] = *s
			} else {
				out[k] = v
			}
		}
	}
	return out
}

// Social link order is fixed: website, instagram, facebook, linkedin,
// whatsapp.
func buildSocialLinks(lookup *RowLookup, profile TableProfile) []entity.SocialLink {
	links := make([]entity.SocialLink, 0, 5)
	add := func(label, typ, url string) {
		if url != "" {
			links = append(links, entity.SocialLink{Label: label, URL: url, Type: typ})
		}
	}
	add("Website", "website", absoluteLink(lookup.ResolveString("", profile.Website...)))
	add("Instagram", "instagram", absoluteLink(lookup.ResolveString("", profile.Instagram...)))
	add("Facebook", "facebook", absoluteLink(lookup.ResolveString("", profile.Facebook...)))
	add("LinkedIn", "linkedin", absoluteLink(lookup.ResolveString("", profile.LinkedIn...)))
	add("WhatsApp", "whatsapp", whatsappLink(lookup.ResolveString("", profile.WhatsApp...)))
	return links
}

// absoluteLink upgrades bare host values ("instagram.com/acme") to https.
func absoluteLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}

// whatsappLink turns phone-number-looking values into wa.me links; values
// that are already URLs pass through.
func whatsappLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "://") || strings.Contains(raw, "wa.me") {
		return absoluteLink(raw)
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String()
}

func resolveTimestamp(lookup *RowLookup, candidates []string) *string {
	value, ok := lookup.Resolve(candidates...)
	if !ok {
		return nil
	}
	return ToISODate(value)
}
