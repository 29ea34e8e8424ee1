package dtime

import (
	"time"

	"github.com/pkg/errors"
)

// TwoDigitYearMax fixes the pivot that disambiguates the 2-digit year of a
// packed date-time: 2000+YY values above it roll back a century, making the
// decodable window 1930..2029. The recorders that write this field relied on
// a machine-local calendar setting whose conventional default is this value;
// a fixed constant keeps decoding portable across machines.
const TwoDigitYearMax = 2029

// ParseTimestamp decodes a packed date-time field of exactly TimestampLen
// ASCII digits (YY MM DD hh mm ss) into a calendar time. The format carries
// no zone, so the result is in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) != TimestampLen || !isDigits(s) {
		return time.Time{}, errors.Wrapf(ErrMalformedTimestamp, "ParseTimestamp %q", s)
	}
	fields := splitPairs(s)
	year := 2000 + fields[0]
	if year > TwoDigitYearMax {
		year -= 100
	}
	month := time.Month(fields[1])
	day, hour, minute, second := fields[2], fields[3], fields[4], fields[5]

	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	// time.Date silently normalizes impossible values (month 13 becomes
	// January of the next year); a packed field holding one is corrupt,
	// so every component has to survive the construction unchanged.
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, errors.Wrapf(ErrInvalidDateValue, "ParseTimestamp %q", s)
	}
	return t, nil
}
