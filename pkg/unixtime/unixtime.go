// Package unixtime converts between time.Time and Unix timestamps expressed
// in seconds since 1970-01-01T00:00:00Z.
package unixtime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimestamp is returned by Parse for text that is not an integer
// number of seconds.
var ErrInvalidTimestamp = errors.New("invalid unix timestamp")

// Now returns the current Unix timestamp in whole seconds.
func Now() int64 {
	return time.Now().Unix()
}

// NowFloat returns the current Unix timestamp with sub-second precision.
func NowFloat() float64 {
	return FloatSeconds(time.Now())
}

// Time returns the UTC time sec seconds after the epoch.
func Time(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// FloatTime returns the UTC time for a fractional timestamp, rounded to the
// nearest nanosecond.
func FloatTime(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC()
}

// Parse converts a decimal integer timestamp such as "1615766400" to a UTC
// time. Surrounding whitespace is ignored.
func Parse(s string) (time.Time, error) {
	sec, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	return Time(sec), nil
}

// Seconds returns the Unix timestamp of t in whole seconds.
func Seconds(t time.Time) int64 {
	return t.Unix()
}

// FloatSeconds returns the Unix timestamp of t with sub-second precision.
func FloatSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
