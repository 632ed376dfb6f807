package partialdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Explicit 0-9 so that other Unicode digits are rejected. Month names may end
// in a period ("Sep.", "févr.").
var (
	numericDateRe  = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})-([0-9]{2})$`)
	dayMonthYearRe = regexp.MustCompile(`^([0-9]{1,2}) (\p{L}+\.?) ([0-9]{4})$`)
	monthDayYearRe = regexp.MustCompile(`^(\p{L}+\.?) ([0-9]{1,2}) ([0-9]{4})$`)
	yearRe         = regexp.MustCompile(`^([0-9]{4})$`)
	yearMonthRe    = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})$`)
	monthYearRe    = regexp.MustCompile(`^(\p{L}+\.?) ([0-9]{4})$`)
	monthOrdinalRe = regexp.MustCompile(`^(\p{L}+\.?) ([0-9]{1,2})(?:st|nd|rd|th) ([0-9]{4})$`)
)

// result of a single pattern: matched reports whether the pattern applied at
// all, ok whether it produced a valid date. A matched but invalid pattern ends
// the evaluation.
type result struct {
	date    PartialDate
	matched bool
	ok      bool
}

type pattern func(s string, o *options) result

// fullDatePatterns describe complete dates and are tried first.
var fullDatePatterns = []pattern{
	parseFullNumeric,
	parseDayMonthYear,
	parseMonthDayYear,
}

// partialPatterns are tried in order after the full date patterns; the first
// pattern that matches decides the outcome.
var partialPatterns = []pattern{
	parseYear,
	parseYearMonth,
	parseNumeric,
	parseMonthYear,
	parseMonthOrdinal,
}

// TryParse converts s to a PartialDate. The boolean is false when s is blank
// or is not a recognised date.
func TryParse(s string, opts ...Option) (PartialDate, bool) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return PartialDate{}, false
	}

	for _, p := range fullDatePatterns {
		if r := p(s, o); r.matched && r.ok {
			return r.date, true
		}
	}
	for _, p := range partialPatterns {
		if r := p(s, o); r.matched {
			return r.date, r.ok
		}
	}
	return PartialDate{}, false
}

// Parse converts s to a PartialDate. Blank input is not an error: Parse
// returns nil, nil. Unrecognised input returns an error wrapping
// ErrInvalidDate that quotes s.
func Parse(s string, opts ...Option) (*PartialDate, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, ok := TryParse(s, opts...)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return &d, nil
}

// MustParse is like Parse but panics on blank or unrecognised input.
func MustParse(s string, opts ...Option) PartialDate {
	d, err := Parse(s, opts...)
	if err != nil {
		panic(err)
	}
	if d == nil {
		panic(fmt.Errorf("%w: %q", ErrEmptyInput, s))
	}
	return *d
}

func parseFullNumeric(s string, _ *options) result {
	m := numericDateRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	return fullDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
}

func parseDayMonthYear(s string, o *options) result {
	m := dayMonthYearRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	month, ok := o.resolver.Resolve(m[2])
	if !ok {
		return result{matched: true}
	}
	return fullDate(atoi(m[3]), int(month), atoi(m[1]))
}

func parseMonthDayYear(s string, o *options) result {
	m := monthDayYearRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	month, ok := o.resolver.Resolve(m[1])
	if !ok {
		return result{matched: true}
	}
	return fullDate(atoi(m[3]), int(month), atoi(m[2]))
}

func parseYear(s string, _ *options) result {
	m := yearRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	return result{date: OfYear(atoi(m[1])), matched: true, ok: true}
}

func parseYearMonth(s string, _ *options) result {
	m := yearMonthRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	return components(atoi(m[1]), atoi(m[2]), 0)
}

func parseNumeric(s string, _ *options) result {
	m := numericDateRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	return components(atoi(m[1]), atoi(m[2]), atoi(m[3]))
}

func parseMonthYear(s string, o *options) result {
	m := monthYearRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	month, ok := o.resolver.Resolve(m[1])
	if !ok {
		return result{matched: true}
	}
	return components(atoi(m[2]), int(month), 0)
}

func parseMonthOrdinal(s string, o *options) result {
	m := monthOrdinalRe.FindStringSubmatch(s)
	if m == nil {
		return result{}
	}
	month, ok := o.resolver.Resolve(m[1])
	if !ok {
		return result{matched: true}
	}
	day := atoi(m[2])
	if day == 0 {
		return result{matched: true}
	}
	return components(atoi(m[3]), int(month), day)
}

// fullDate validates a complete calendar date.
func fullDate(year, month, day int) result {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return result{matched: true}
	}
	return result{date: New(year, time.Month(month), day), matched: true, ok: true}
}

// components validates a date where zero components mean unknown.
func components(year, month, day int) result {
	if month > 12 || day > maxDay(year, time.Month(month)) {
		return result{matched: true}
	}
	return result{date: New(year, time.Month(month), day), matched: true, ok: true}
}

// maxDay is the largest day allowed for the known components. Without a month
// any day up to 31 is accepted; without a year February allows the 29th.
func maxDay(year int, month time.Month) int {
	switch {
	case month == 0:
		return 31
	case year == 0:
		return daysIn(2000, month)
	}
	return daysIn(year, month)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// atoi is only called on regexp groups of ASCII digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
