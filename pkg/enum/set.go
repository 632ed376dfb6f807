package enum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/essentials/pkg/strutil"
)

// Value is the constraint for enumerations handled by Set.
type Value interface {
	comparable
	fmt.Stringer
}

// Set is an ordered collection of known enum values indexed by normalized
// name. It is safe for concurrent use once created.
type Set[T Value] struct {
	values []T
	index  map[string]T
}

// NewSet creates a set from values. When two values share a normalized name
// the first one wins.
func NewSet[T Value](values ...T) *Set[T] {
	s := &Set[T]{
		values: make([]T, 0, len(values)),
		index:  make(map[string]T, len(values)),
	}

	for _, v := range values {
		key := normalize(v.String())
		if _, ok := s.index[key]; ok {
			continue
		}
		s.index[key] = v
		s.values = append(s.values, v)
	}

	return s
}

// Values returns the registered values in registration order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.values)
}

// Contains reports whether v is registered in the set.
func (s *Set[T]) Contains(v T) bool {
	return slices.Contains(s.values, v)
}

// TryParse resolves name to a registered value.
func (s *Set[T]) TryParse(name string) (T, bool) {
	v, ok := s.index[normalize(name)]
	return v, ok
}

// Parse resolves name to a registered value or returns ErrUnknownValue.
func (s *Set[T]) Parse(name string) (T, error) {
	v, ok := s.TryParse(name)
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrUnknownValue, name)
	}
	return v, nil
}

// ParseOr resolves name or returns fallback when it is unknown.
func (s *Set[T]) ParseOr(name string, fallback T) T {
	if v, ok := s.TryParse(name); ok {
		return v
	}
	return fallback
}

// UnmarshalJSON decodes a JSON string in any supported spelling into dst.
// JSON null leaves dst untouched.
func (s *Set[T]) UnmarshalJSON(data []byte, dst *T) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}

	v, err := s.Parse(name)
	if err != nil {
		return err
	}

	*dst = v
	return nil
}

func normalize(name string) string {
	return strutil.ToUnderscore(name)
}
