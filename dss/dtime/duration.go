package dtime

import (
	"time"

	"github.com/pkg/errors"
)

// ParseDuration decodes a packed duration field of exactly DurationLen ASCII
// digits (hh mm ss). A recording length is not a time of day: hours run
// 00..99 and values past 24h are fine, so the three values are summed as
// plain arithmetic with no range check.
func ParseDuration(s string) (time.Duration, error) {
	if len(s) != DurationLen || !isDigits(s) {
		return 0, errors.Wrapf(ErrMalformedDuration, "ParseDuration %q", s)
	}
	fields := splitPairs(s)
	return time.Duration(fields[0])*time.Hour +
		time.Duration(fields[1])*time.Minute +
		time.Duration(fields[2])*time.Second, nil
}
