package month

import "errors"

var (
	// ErrInvalidCatalog is returned when catalog data cannot be decoded or a
	// locale does not list exactly twelve names.
	ErrInvalidCatalog = errors.New("invalid month catalog")

	// ErrInvalidLocale is returned when a catalog key is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale tag")

	// ErrEmptyCatalog is returned when catalog data holds no locales.
	ErrEmptyCatalog = errors.New("month catalog has no locales")
)
