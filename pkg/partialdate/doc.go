// Package partialdate represents calendar dates where the year, month or day
// may be unknown, and parses them from free-form text.
//
// A PartialDate stores each component as an int where zero means
// "unspecified". Values are immutable; construct them with New, OfYear,
// OfYearMonth, FromTime or one of the parse functions.
//
// # Parsing
//
// Parse, TryParse and MustParse accept the following inputs (commas are
// ignored):
//
//	2021-03-15        full date
//	15 March 2021     full date
//	March 15 2021     full date
//	2021              year only
//	2021-03           year and month
//	2021-03-00        numeric form with unknown components, as produced by String
//	March 2021        month name and year
//	March 15th 2021   month name, ordinal day and year
//
// Patterns are evaluated in that order and the first match wins. Month names
// are resolved through a month.Resolver, English by default; use WithLocale or
// WithResolver to change it. A month name that cannot be resolved fails the
// whole parse. Abbreviations may carry a trailing period ("Sep. 2021").
//
//	d, ok := partialdate.TryParse("marts 2021", partialdate.WithLocale(language.Danish))
//	// d.String() == "2021-03-00", ok == true
//
// # Unknown components
//
// Use HasYear, HasMonth and HasDay to inspect which parts are known. Time
// returns a time.Time only for complete dates. Earliest substitutes 1 for
// every unknown component and exists for ordering or range queries; its
// result must not be read back as the value of unknown fields.
//
// # Encoding
//
// PartialDate implements encoding.TextMarshaler (and therefore JSON),
// yaml.Marshaler and the database/sql Scanner and Valuer interfaces, all using
// the YYYY-MM-DD form returned by String.
package partialdate
