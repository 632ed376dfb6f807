package strutil

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseBool reports whether s is one of "true", "t" or "1", ignoring case
// and surrounding whitespace. Everything else is false.
func ParseBool(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "true") || strings.EqualFold(s, "t")
}

// ParseBoolValue is ParseBool for arbitrary values. Booleans are returned as
// is, nil is false and other values are formatted before parsing.
func ParseBoolValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return ParseBool(val)
	case fmt.Stringer:
		return ParseBool(val.String())
	default:
		return ParseBool(fmt.Sprint(val))
	}
}

// ParseUUIDs extracts UUIDs from a list separated by commas or whitespace.
// Pieces that are not valid UUIDs are skipped.
func ParseUUIDs(s string) []uuid.UUID {
	pieces := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', ' ', '\r', '\n', '\t':
			return true
		}
		return false
	})

	ids := make([]uuid.UUID, 0, len(pieces))
	for _, p := range pieces {
		id, err := uuid.Parse(p)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}
