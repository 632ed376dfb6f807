package partialdate

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/essentials/pkg/month"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	resolver month.Resolver
}

func defaultOptions() *options {
	return &options{resolver: month.Invariant()}
}

// WithLocale resolves month names using the default month catalog entry that
// best matches tag.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.resolver = month.DefaultCatalog().Resolver(tag)
	}
}

// WithResolver resolves month names with r. Nil resolvers are ignored.
func WithResolver(r month.Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}
