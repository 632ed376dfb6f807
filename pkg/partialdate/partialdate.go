package partialdate

import (
	"fmt"
	"time"
)

// PartialDate is a calendar date with optional components.
// The zero value is a date where nothing is known.
type PartialDate struct {
	year  int
	month time.Month
	day   int
}

// maxYear is the largest year that fits the four digit text form.
const maxYear = 9999

// New returns a date from the given components. Negative components are
// clamped to zero, which marks them as unknown. A year above 9999, a month
// above 12 or a day past the end of the month is unknown as well.
func New(year int, month time.Month, day int) PartialDate {
	year, month, day = max(0, year), max(0, month), max(0, day)
	if year > maxYear {
		year = 0
	}
	if month > time.December {
		month = 0
	}
	if day > maxDay(year, month) {
		day = 0
	}
	return PartialDate{year: year, month: month, day: day}
}

// OfYear returns a date where only the year is known.
func OfYear(year int) PartialDate {
	return New(year, 0, 0)
}

// OfYearMonth returns a date where the year and month are known.
func OfYearMonth(year int, month time.Month) PartialDate {
	return New(year, month, 0)
}

// FromTime returns the complete date of t in t's location. Years outside
// 1 to 9999 are unknown.
func FromTime(t time.Time) PartialDate {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Year returns the year, or 0 when unknown.
func (d PartialDate) Year() int { return d.year }

// Month returns the month, or 0 when unknown.
func (d PartialDate) Month() time.Month { return d.month }

// Day returns the day of the month, or 0 when unknown.
func (d PartialDate) Day() int { return d.day }

// HasYear reports whether the year is known.
func (d PartialDate) HasYear() bool { return d.year > 0 }

// HasMonth reports whether the month is known.
func (d PartialDate) HasMonth() bool { return d.month > 0 }

// HasDay reports whether the day is known.
func (d PartialDate) HasDay() bool { return d.day > 0 }

// IsPartial reports whether any of year, month or day is unknown.
func (d PartialDate) IsPartial() bool {
	return !(d.HasYear() && d.HasMonth() && d.HasDay())
}

// IsZero reports whether no component is known.
func (d PartialDate) IsZero() bool {
	return d == PartialDate{}
}

// String returns the date as zero padded YYYY-MM-DD, using zeros for unknown
// components ("0000-00-00" for the zero value).
func (d PartialDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Time returns midnight of the date in loc (UTC when nil). The boolean is
// false, and the time zero, unless the date is complete.
func (d PartialDate) Time(loc *time.Location) (time.Time, bool) {
	if d.IsPartial() || d.day > daysIn(d.year, d.month) {
		return time.Time{}, false
	}
	return d.Earliest(loc), true
}

// Earliest returns midnight of the date in loc (UTC when nil) with every
// unknown component replaced by 1. The result is synthetic for partial dates.
func (d PartialDate) Earliest(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	year, month, day := d.year, d.month, d.day
	if year == 0 {
		year = 1
	}
	if month == 0 {
		month = time.January
	}
	if day == 0 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// Compare orders dates by year, then month, then day. Unknown components sort
// before known ones. It returns -1, 0 or +1.
func (d PartialDate) Compare(other PartialDate) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

// Equal reports whether both dates have the same components.
func (d PartialDate) Equal(other PartialDate) bool {
	return d == other
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
