package normalize

import "strings"

// ParseStringList splits a loosely delimited list column (phones, emails,
// services) into trimmed, deduplicated entries. JSON arrays are accepted too.
// Dedup is case-sensitive and textual: phone numbers are not digit-normalized
// first, so "11 9999-0000" and "1199990000" stay distinct entries. That
// matches how the legacy data was curated.
func ParseStringList(value any) []string {
	var tokens []string
	switch v := ParsePossibleJSON(value).(type) {
	case nil:
		return nil
	case []any:
		for _, elem := range v {
			if s := ToNullableString(elem); s != nil {
				tokens = append(tokens, splitListString(*s)...)
			}
		}
	case string:
		tokens = splitListString(v)
	default:
		if s := ToNullableString(v); s != nil {
			tokens = splitListString(*s)
		}
	}

	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func splitListString(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ',' || r == '/' || r == '\n' || r == '\r'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
