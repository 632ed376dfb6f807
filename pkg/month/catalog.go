package month

import (
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales.yaml
var localesYAML []byte

// Catalog is an immutable set of month-name tables keyed by language tag.
type Catalog struct {
	tags     []language.Tag
	tables   []*table
	matcher  language.Matcher
	fallback int
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(localesYAML)
	if err != nil {
		panic(fmt.Sprintf("month: embedded catalog: %v", err))
	}
	return c
})

// DefaultCatalog returns the catalog embedded in the package.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// ParseCatalog decodes YAML catalog data of the form
//
//	<tag>:
//	  months: [...12 names...]
//	  abbreviations: [...12 names...]
//
// Abbreviations are optional. English becomes the fallback locale when
// present, otherwise the first locale in tag order.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw map[string]Names
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	locales := make(map[language.Tag]Names, len(raw))
	for _, key := range keys {
		tag, err := language.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, key, err)
		}
		locales[tag] = raw[key]
	}
	return NewCatalog(locales)
}

// NewCatalog builds a catalog from already decoded names.
func NewCatalog(locales map[language.Tag]Names) (*Catalog, error) {
	if len(locales) == 0 {
		return nil, ErrEmptyCatalog
	}

	tags := make([]language.Tag, 0, len(locales))
	for tag, names := range locales {
		if len(names.Months) != 12 {
			return nil, fmt.Errorf("%w: %s lists %d months", ErrInvalidCatalog, tag, len(names.Months))
		}
		if n := len(names.Abbreviations); n != 0 && n != 12 {
			return nil, fmt.Errorf("%w: %s lists %d abbreviations", ErrInvalidCatalog, tag, n)
		}
		tags = append(tags, tag)
	}
	slices.SortFunc(tags, func(a, b language.Tag) int {
		return cmp.Compare(a.String(), b.String())
	})

	c := &Catalog{
		tags:   tags,
		tables: make([]*table, len(tags)),
	}
	for i, tag := range tags {
		c.tables[i] = newTable(tag, locales[tag])
		if tag == language.English {
			c.fallback = i
		}
	}
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

// Locales returns the tags present in the catalog in sorted order.
func (c *Catalog) Locales() []language.Tag {
	return slices.Clone(c.tags)
}

// Resolver returns the resolver of the locale best matching tag. Tags with no
// reasonable match fall back to English, or the first locale when the catalog
// has no English entry.
func (c *Catalog) Resolver(tag language.Tag) Resolver {
	return c.tables[c.index(tag)]
}

// Lookup reports whether the catalog has a locale matching tag with at least
// low confidence, and returns its resolver.
func (c *Catalog) Lookup(tag language.Tag) (Resolver, bool) {
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return nil, false
	}
	return c.tables[idx], true
}

func (c *Catalog) index(tag language.Tag) int {
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.fallback
	}
	return idx
}
