package normalize

import "strings"

// RowLookup resolves logical fields against a raw row using case-insensitive
// column matching. The lowercase index is built once per row; every Resolve
// call after that is a map hit per candidate.
type RowLookup struct {
	row  RawRow
	keys map[string]string
}

// NewRowLookup indexes a raw row for candidate resolution.
func NewRowLookup(row RawRow) *RowLookup {
	keys := make(map[string]string, len(row))
	for k := range row {
		lower := strings.ToLower(strings.TrimSpace(k))
		if _, exists := keys[lower]; !exists {
			keys[lower] = k
		}
	}
	return &RowLookup{row: row, keys: keys}
}

// Resolve returns the value of the first candidate column that exists and
// whose coerced value is non-empty. Candidates are tried in priority order.
func (l *RowLookup) Resolve(candidates ...string) (any, bool) {
	for _, candidate := range candidates {
		actual, ok := l.keys[strings.ToLower(strings.TrimSpace(candidate))]
		if !ok {
			continue
		}
		value := l.row[actual]
		if ToNullableString(value) == nil && !isNonEmptyComposite(value) {
			continue
		}
		return value, true
	}
	return nil, false
}

// ResolveString resolves candidates down to a trimmed string, using fallback
// when nothing matches. Fallback policy is per call site, not global: callers
// pass an empty string, a previously resolved id, or whatever their field
// requires.
func (l *RowLookup) ResolveString(fallback string, candidates ...string) string {
	value, ok := l.Resolve(candidates...)
	if !ok {
		return fallback
	}
	if s := ToNullableString(value); s != nil {
		return *s
	}
	return fallback
}

// ResolveAny is Resolve without the found flag, for callers that feed the
// value straight into a structured parser.
func (l *RowLookup) ResolveAny(candidates ...string) any {
	value, _ := l.Resolve(candidates...)
	return value
}

// isNonEmptyComposite keeps already-parsed JSON values resolvable: a slice or
// map has no meaningful string form but still counts as a non-empty match.
func isNonEmptyComposite(value any) bool {
	switch v := value.(type) {
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return false
	}
}

// TableCandidates synthesizes table-specific column names for a logical
// field, tried before the generic candidate list. Table advocacia with
// suffix galeria yields advocacia_galeria, galeriaadvocacia and
// galeria_advocacia.
func TableCandidates(table, suffix string) []string {
	table = strings.ToLower(strings.TrimSpace(table))
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if table == "" || suffix == "" {
		return nil
	}
	return []string{
		table + "_" + suffix,
		suffix + table,
		suffix + "_" + table,
	}
}
