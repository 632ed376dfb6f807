// Package month resolves locale-specific month names to their numeric
// time.Month value.
//
// The package ships with an embedded catalog of full and abbreviated month
// names for a handful of European locales. Catalogs are keyed by BCP 47
// language tags and use golang.org/x/text/language matching, so regional
// variants such as "en-GB" or "de-AT" resolve through their base language.
//
// # Usage
//
//	r := month.DefaultCatalog().Resolver(language.Danish)
//	m, ok := r.Resolve("marts") // time.March, true
//
// Matching is case-insensitive using Unicode case folding, accepts both full
// names and abbreviations, and ignores a trailing period on abbreviations
// ("févr." and "févr" both resolve to February).
//
// Custom catalogs can be loaded from YAML with ParseCatalog:
//
//	en:
//	  months: [January, February, ...]
//	  abbreviations: [Jan, Feb, ...]
//
// # Error handling
//
// Resolvers never fail loudly: an unknown name yields (0, false). Loading a
// malformed catalog returns ErrInvalidCatalog or ErrInvalidLocale.
//
// All exported values are safe for concurrent use.
package month
