package normalize

import (
	"sort"
	"strings"

	"github.com/plazanorte/directory-api/internal/media"
)

// Likely URL-bearing keys inside gallery objects, in priority order.
var galleryObjectKeys = []string{"url", "src", "imagem", "image", "foto", "value"}

// ParseGallery flattens whatever a legacy gallery column holds into a
// deduplicated list of proxy-rewritten media URLs. Input shapes seen in the
// wild: a JSON array of strings, an array of objects with assorted URL keys,
// a plain delimited string, nested combinations of all three. Order is
// first-seen; rejected and empty tokens are dropped.
func ParseGallery(value any) []string {
	var urls []string
	seen := make(map[string]struct{})

	var collect func(v any)
	collect = func(v any) {
		switch item := v.(type) {
		case nil:
			return
		case []any:
			for _, elem := range item {
				collect(elem)
			}
		case map[string]any:
			for _, key := range galleryObjectKeys {
				if raw, ok := item[key]; ok {
					if s := ToNullableString(raw); s != nil {
						collect(*s)
						return
					}
				}
			}
			// No recognised key: the URL may hide one level down. Keys are
			// walked in sorted order so output order stays stable.
			for _, key := range sortedKeys(item) {
				collect(item[key])
			}
		case string:
			for _, token := range splitDelimited(item) {
				normalized := media.NormalizeURL(token)
				if normalized == "" {
					continue
				}
				if _, dup := seen[normalized]; dup {
					continue
				}
				seen[normalized] = struct{}{}
				urls = append(urls, normalized)
			}
		default:
			if s := ToNullableString(item); s != nil {
				collect(*s)
			}
		}
	}

	collect(ParsePossibleJSON(value))
	return urls
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func splitDelimited(s string) []string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ',' || r == '\n' || r == '\r'
	})
	out := tokens[:0]
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
