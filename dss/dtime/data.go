// Package dtime decodes the packed ASCII-digit time values of a DSS header:
// 12-digit date-times and 6-digit durations.
package dtime

import (
	"github.com/pkg/errors"
)

const (
	// TimestampLen is the width of a packed date-time field,
	// six 2-digit values laid out as YY MM DD hh mm ss.
	TimestampLen = 12
	// DurationLen is the width of a packed duration field,
	// three 2-digit values laid out as hh mm ss.
	DurationLen = 6
)

var (
	ErrMalformedTimestamp = errors.New("malformed packed date-time")
	ErrInvalidDateValue   = errors.New("impossible calendar date-time")
	ErrMalformedDuration  = errors.New("malformed packed duration")
)
