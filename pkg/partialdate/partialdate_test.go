package partialdate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/essentials/pkg/partialdate"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		date      partialdate.PartialDate
		year      int
		month     time.Month
		day       int
		partial   bool
		formatted string
	}{
		{
			name:      "complete date",
			date:      partialdate.New(2021, time.March, 15),
			year:      2021,
			month:     time.March,
			day:       15,
			partial:   false,
			formatted: "2021-03-15",
		},
		{
			name:      "year only",
			date:      partialdate.OfYear(1999),
			year:      1999,
			partial:   true,
			formatted: "1999-00-00",
		},
		{
			name:      "year and month",
			date:      partialdate.OfYearMonth(2021, time.December),
			year:      2021,
			month:     time.December,
			partial:   true,
			formatted: "2021-12-00",
		},
		{
			name:      "negative components are clamped",
			date:      partialdate.New(-5, -1, -20),
			partial:   true,
			formatted: "0000-00-00",
		},
		{
			name:      "zero value",
			date:      partialdate.PartialDate{},
			partial:   true,
			formatted: "0000-00-00",
		},
		{
			name:      "out of range month and day are unknown",
			date:      partialdate.New(2021, 13, 40),
			year:      2021,
			partial:   true,
			formatted: "2021-00-00",
		},
		{
			name:      "day past end of month is unknown",
			date:      partialdate.New(2021, time.February, 30),
			year:      2021,
			month:     time.February,
			partial:   true,
			formatted: "2021-02-00",
		},
		{
			name:      "leap day kept",
			date:      partialdate.New(2020, time.February, 29),
			year:      2020,
			month:     time.February,
			day:       29,
			formatted: "2020-02-29",
		},
		{
			name:      "leap day kept without year",
			date:      partialdate.New(0, time.February, 29),
			month:     time.February,
			day:       29,
			partial:   true,
			formatted: "0000-02-29",
		},
		{
			name:      "non leap february 29th is unknown",
			date:      partialdate.New(2021, time.February, 29),
			year:      2021,
			month:     time.February,
			partial:   true,
			formatted: "2021-02-00",
		},
		{
			name:      "five digit year is unknown",
			date:      partialdate.New(12345, time.January, 1),
			month:     time.January,
			day:       1,
			partial:   true,
			formatted: "0000-01-01",
		},
		{
			name:      "day over 31 without month is unknown",
			date:      partialdate.New(2021, 0, 32),
			year:      2021,
			partial:   true,
			formatted: "2021-00-00",
		},
		{
			name:      "small year is padded",
			date:      partialdate.New(987, time.July, 4),
			year:      987,
			month:     time.July,
			day:       4,
			formatted: "0987-07-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.year, tt.date.Year())
			assert.Equal(t, tt.month, tt.date.Month())
			assert.Equal(t, tt.day, tt.date.Day())
			assert.Equal(t, tt.year > 0, tt.date.HasYear())
			assert.Equal(t, tt.month > 0, tt.date.HasMonth())
			assert.Equal(t, tt.day > 0, tt.date.HasDay())
			assert.Equal(t, tt.partial, tt.date.IsPartial())
			assert.Equal(t, tt.formatted, tt.date.String())
		})
	}
}

func TestNewRoundTrip(t *testing.T) {
	t.Parallel()

	dates := []partialdate.PartialDate{
		partialdate.New(2021, 13, 40),
		partialdate.New(2021, time.February, 30),
		partialdate.New(12345, time.January, 1),
		partialdate.New(0, 0, 99),
	}

	for _, d := range dates {
		t.Run(d.String(), func(t *testing.T) {
			t.Parallel()

			parsed, ok := partialdate.TryParse(d.String())
			require.True(t, ok)
			assert.Equal(t, d, parsed)

			v, err := d.Value()
			require.NoError(t, err)
			if v == nil {
				assert.True(t, d.IsZero())
				return
			}
			var scanned partialdate.PartialDate
			require.NoError(t, scanned.Scan(v))
			assert.Equal(t, d, scanned)
		})
	}
}

func TestFromTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2020, time.February, 29, 23, 59, 59, 0, time.UTC)
	d := partialdate.FromTime(ts)

	assert.Equal(t, partialdate.New(2020, time.February, 29), d)
	assert.False(t, d.IsPartial())

	far := partialdate.FromTime(time.Date(10000, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, far.HasYear())
	assert.Equal(t, "0000-03-01", far.String())
}

func TestTime(t *testing.T) {
	t.Parallel()

	t.Run("complete date", func(t *testing.T) {
		t.Parallel()

		got, ok := partialdate.New(2021, time.March, 15).Time(nil)
		require.True(t, ok)
		assert.Equal(t, time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("custom location", func(t *testing.T) {
		t.Parallel()

		loc := time.FixedZone("CET", 3600)
		got, ok := partialdate.New(2021, time.March, 15).Time(loc)
		require.True(t, ok)
		assert.Equal(t, loc, got.Location())
	})

	t.Run("invalid day has no time", func(t *testing.T) {
		t.Parallel()

		got, ok := partialdate.New(2021, time.February, 30).Time(nil)
		assert.False(t, ok)
		assert.True(t, got.IsZero())

		_, ok = partialdate.New(2021, 13, 40).Time(nil)
		assert.False(t, ok)
	})

	t.Run("partial date has no time", func(t *testing.T) {
		t.Parallel()

		got, ok := partialdate.OfYearMonth(2021, time.March).Time(nil)
		assert.False(t, ok)
		assert.True(t, got.IsZero())
	})
}

func TestEarliest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		date     partialdate.PartialDate
		expected time.Time
	}{
		{
			name:     "complete",
			date:     partialdate.New(2021, time.March, 15),
			expected: time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "year and month",
			date:     partialdate.OfYearMonth(2021, time.March),
			expected: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "year only",
			date:     partialdate.OfYear(2021),
			expected: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "nothing known",
			date:     partialdate.PartialDate{},
			expected: time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.date.Earliest(nil))
		})
	}

	// The synthetic value does not leak back into the date.
	d := partialdate.OfYear(2021)
	_ = d.Earliest(nil)
	assert.False(t, d.HasMonth())
	assert.False(t, d.HasDay())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     partialdate.PartialDate
		expected int
	}{
		{name: "equal", a: partialdate.New(2021, 3, 15), b: partialdate.New(2021, 3, 15), expected: 0},
		{name: "earlier year", a: partialdate.OfYear(2020), b: partialdate.OfYear(2021), expected: -1},
		{name: "later month", a: partialdate.OfYearMonth(2021, 4), b: partialdate.OfYearMonth(2021, 3), expected: 1},
		{name: "unknown day sorts first", a: partialdate.OfYearMonth(2021, 3), b: partialdate.New(2021, 3, 1), expected: -1},
		{name: "later day", a: partialdate.New(2021, 3, 16), b: partialdate.New(2021, 3, 15), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Compare(tt.a))
			assert.Equal(t, tt.expected == 0, tt.a.Equal(tt.b))
		})
	}
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, partialdate.PartialDate{}.IsZero())
	assert.True(t, partialdate.New(0, 0, 0).IsZero())
	assert.False(t, partialdate.OfYear(1).IsZero())
}
