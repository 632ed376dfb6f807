package month

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver maps a month name to its numeric month.
// Implementations report failure through the boolean rather than panicking.
type Resolver interface {
	Resolve(name string) (time.Month, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string) (time.Month, bool)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (time.Month, bool) {
	return f(name)
}

// Names holds the full and abbreviated month names of one locale,
// January first.
type Names struct {
	Months        []string `yaml:"months" json:"months"`
	Abbreviations []string `yaml:"abbreviations,omitempty" json:"abbreviations,omitempty"`
}

// table is the Resolver built from a Names value. Keys are folded.
type table struct {
	tag    language.Tag
	lookup map[string]time.Month
}

func newTable(tag language.Tag, names Names) *table {
	t := &table{
		tag:    tag,
		lookup: make(map[string]time.Month, len(names.Months)+len(names.Abbreviations)),
	}
	for i, name := range names.Months {
		t.lookup[normalize(name)] = time.Month(i + 1)
	}
	for i, name := range names.Abbreviations {
		key := normalize(name)
		// Full names win when an abbreviation collides with another month.
		if _, taken := t.lookup[key]; !taken {
			t.lookup[key] = time.Month(i + 1)
		}
	}
	return t
}

// Resolve implements Resolver.
func (t *table) Resolve(name string) (time.Month, bool) {
	key := normalize(name)
	if key == "" {
		return 0, false
	}
	m, ok := t.lookup[key]
	return m, ok
}

// normalize folds case and drops surrounding whitespace and a trailing period.
// A new Caser is created per call because cases.Caser is not safe for
// concurrent use.
func normalize(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return ""
	}
	return cases.Fold().String(name)
}

// Invariant returns the English resolver of the default catalog.
func Invariant() Resolver {
	return DefaultCatalog().Resolver(language.English)
}

// Parse resolves name using the default catalog entry that best matches tag.
func Parse(name string, tag language.Tag) (time.Month, bool) {
	return DefaultCatalog().Resolver(tag).Resolve(name)
}
