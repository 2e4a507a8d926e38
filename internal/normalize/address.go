package normalize

import "strings"

// Formatted-address-like keys inside address objects, in priority order.
var addressObjectKeys = []string{"formatted", "formatted_endereco", "address", "logradouro"}

// ParseAddress extracts a human-readable address from whatever shape a legacy
// address column holds: a plain string, a JSON object with a formatted field,
// or an array whose first element carries the address.
func ParseAddress(value any) string {
	switch v := ParsePossibleJSON(value).(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		for _, key := range addressObjectKeys {
			if raw, ok := v[key]; ok {
				if s := ToNullableString(raw); s != nil {
					return *s
				}
			}
		}
		// No formatted field: join every string-typed value.
		var parts []string
		for _, key := range sortedKeys(v) {
			if s, ok := v[key].(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					parts = append(parts, s)
				}
			}
		}
		return strings.Join(parts, ", ")
	case []any:
		if len(v) == 0 {
			return ""
		}
		return ParseAddress(v[0])
	default:
		return StringOrEmpty(v)
	}
}

// CombineRoomAddress joins a room or unit sub-field with the freeform address
// without duplicating the room when the address already mentions it.
func CombineRoomAddress(room, address string) string {
	room = strings.TrimSpace(room)
	address = strings.TrimSpace(address)
	switch {
	case room == "":
		return address
	case address == "":
		return room
	case strings.Contains(strings.ToLower(address), strings.ToLower(room)):
		return address
	default:
		return room + " - " + address
	}
}
