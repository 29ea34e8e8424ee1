package dheader

import (
	"time"

	"github.com/pkg/errors"
)

type (
	// Header holds the decoded fields of a DSS file header. Once built by
	// Decode it is never mutated.
	Header struct {
		PathName    string        `json:"path_name"`
		CreatedOn   time.Time     `json:"created_on"`
		CompletedOn time.Time     `json:"completed_on"`
		Length      time.Duration `json:"length"`
		Comments    string        `json:"comments"`
	}
)

// Byte layout of the fixed-size header. Offsets are absolute from the start
// of the file; the stretches between the documented fields are opaque and
// never inspected.
const (
	HeaderSize = 1024

	OffsetMagic       = 1
	OffsetCreatedOn   = 38
	OffsetCompletedOn = 50
	OffsetLength      = 62
	OffsetComments    = 798
	CommentsLen       = 100
)

var (
	MagicBytes = []byte("dss")

	ErrNotAValidFile = errors.New("not a valid DSS file")
	ErrEmptyPathName = errors.New("path name must not be empty")
)
