package partialdate

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (d PartialDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Blank text decodes to the
// zero value. Month names are resolved in English.
func (d *PartialDate) UnmarshalText(text []byte) error {
	s := string(text)
	if strings.TrimSpace(s) == "" {
		*d = PartialDate{}
		return nil
	}
	parsed, ok := TryParse(s)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d PartialDate) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Null and blank scalars decode to
// the zero value.
func (d *PartialDate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar at line %d", ErrInvalidDate, value.Line)
	}
	if value.Tag == "!!null" {
		*d = PartialDate{}
		return nil
	}
	return d.UnmarshalText([]byte(value.Value))
}

// Scan implements sql.Scanner.
func (d *PartialDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = PartialDate{}
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = FromTime(v)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
}

// Value implements driver.Valuer. The zero date is stored as NULL.
func (d PartialDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}
