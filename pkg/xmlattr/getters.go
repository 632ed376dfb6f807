package xmlattr

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/dmitrymomot/essentials/pkg/enum"
	"github.com/dmitrymomot/essentials/pkg/strutil"
)

// Lookup returns the raw attribute value and whether the attribute exists.
func (s *Selector) Lookup(el *etree.Element) (string, bool) {
	a := s.Find(el)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Value returns the raw attribute value or "".
func (s *Selector) Value(el *etree.Element) string {
	v, _ := s.Lookup(el)
	return v
}

func (s *Selector) LookupInt(el *etree.Element) (int, bool) {
	return Map(el, s, func(v string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(v))
	})
}

func (s *Selector) Int(el *etree.Element) int {
	v, _ := s.LookupInt(el)
	return v
}

func (s *Selector) LookupInt64(el *etree.Element) (int64, bool) {
	return Map(el, s, func(v string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	})
}

func (s *Selector) Int64(el *etree.Element) int64 {
	v, _ := s.LookupInt64(el)
	return v
}

func (s *Selector) LookupFloat32(el *etree.Element) (float32, bool) {
	return Map(el, s, func(v string) (float32, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
		return float32(f), err
	})
}

func (s *Selector) Float32(el *etree.Element) float32 {
	v, _ := s.LookupFloat32(el)
	return v
}

func (s *Selector) LookupFloat64(el *etree.Element) (float64, bool) {
	return Map(el, s, func(v string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	})
}

func (s *Selector) Float64(el *etree.Element) float64 {
	v, _ := s.LookupFloat64(el)
	return v
}

// LookupBool interprets the attribute with strutil.ParseBool. The second
// result reports whether the attribute exists, so a present "no" yields
// (false, true).
func (s *Selector) LookupBool(el *etree.Element) (bool, bool) {
	v, ok := s.Lookup(el)
	if !ok {
		return false, false
	}
	return strutil.ParseBool(v), true
}

func (s *Selector) Bool(el *etree.Element) bool {
	v, _ := s.LookupBool(el)
	return v
}

// Map converts the selected attribute with fn. It returns false when the
// attribute is missing or fn fails.
func Map[T any](el *etree.Element, s *Selector, fn func(string) (T, error)) (T, bool) {
	var zero T
	raw, ok := s.Lookup(el)
	if !ok {
		return zero, false
	}
	v, err := fn(raw)
	if err != nil {
		return zero, false
	}
	return v, true
}

// Enum resolves the selected attribute against set, returning fallback when
// the attribute is missing or names no known value.
func Enum[T enum.Value](el *etree.Element, s *Selector, set *enum.Set[T], fallback T) T {
	raw, ok := s.Lookup(el)
	if !ok {
		return fallback
	}
	return set.ParseOr(raw, fallback)
}
