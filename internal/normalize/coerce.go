package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
)

// RawRow is one unprocessed database row: column name to raw driver value.
// Column names vary per legacy table (snake_case, PascalCase, abbreviated
// Portuguese) and any column may be absent.
type RawRow map[string]any

// MaxPageSize caps the page_size query parameter across list endpoints.
const MaxPageSize = 50

// ToNullableString coerces an arbitrary driver value to a trimmed string, or
// nil when the value is absent or blank. Dates become RFC 3339 strings so the
// output stays JSON-safe.
func ToNullableString(value any) *string {
	var s string
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		s = v.UTC().Format(time.RFC3339)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			s = strconv.FormatInt(int64(v), 10)
		} else {
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
	case float32:
		return ToNullableString(float64(v))
	case bool:
		s = strconv.FormatBool(v)
	default:
		s = fmt.Sprintf("%v", v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringOrEmpty is ToNullableString with an empty-string fallback.
func StringOrEmpty(value any) string {
	if s := ToNullableString(value); s != nil {
		return *s
	}
	return ""
}

// ParsePossibleJSON sniffs string values for embedded JSON. Legacy tables
// store galleries, addresses and contact lists as JSON text inside varchar
// columns, often with sloppy quoting. Non-strings pass through untouched; a
// string that looks bracket or brace delimited is parsed, with a repair pass
// for almost-JSON, and on failure the trimmed original comes back. Never
// returns an error to the caller.
func ParsePossibleJSON(value any) any {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return value
	}

	trimmed := strings.TrimSpace(raw)
	if !looksLikeJSON(trimmed) {
		return trimmed
	}

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
		return parsed
	}
	if repaired, err := jsonrepair.JSONRepair(trimmed); err == nil {
		if err := json.Unmarshal([]byte(repaired), &parsed); err == nil {
			return parsed
		}
	}
	return trimmed
}

func looksLikeJSON(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}

var truthyTokens = map[string]struct{}{
	"1": {}, "true": {}, "yes": {}, "sim": {}, "on": {}, "y": {},
}

// ToBoolean reports whether a loosely typed flag column is set. Numeric
// values count as true when non-zero; strings match a fixed truthy token set
// case-insensitively.
func ToBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case string:
		return truthyToken(v)
	case []byte:
		return truthyToken(string(v))
	default:
		return false
	}
}

func truthyToken(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := truthyTokens[s]; ok {
		return true
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n != 0 && !math.IsNaN(n)
	}
	return false
}

// Layouts seen across the legacy tables, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// ToISODate coerces a date-ish value to an RFC 3339 string, or nil when the
// value is absent. Strings that match none of the known layouts come back
// trimmed but otherwise untouched rather than being dropped.
func ToISODate(value any) *string {
	if t, ok := value.(time.Time); ok {
		s := t.UTC().Format(time.RFC3339)
		return &s
	}
	s := ToNullableString(value)
	if s == nil {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			iso := t.UTC().Format(time.RFC3339)
			return &iso
		}
	}
	return s
}

// SanitizePage parses a page query parameter, substituting fallback for
// anything unparsable or below 1.
func SanitizePage(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// SanitizePageSize is SanitizePage with an upper clamp at MaxPageSize.
func SanitizePageSize(raw string, fallback int) int {
	n := SanitizePage(raw, fallback)
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}
