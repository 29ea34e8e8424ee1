package dss

import (
	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dheader"
)

type headerFixture struct {
	CreatedOn   string
	CompletedOn string
	Length      string
	Comments    string
}

// encode builds a well-formed 1024-byte header buffer. Writing DSS files is
// out of scope for the library itself, so the only encoder lives in tests.
func (f headerFixture) encode() []byte {
	bs := make([]byte, dheader.HeaderSize)
	copy(bs[dheader.OffsetMagic:], dheader.MagicBytes)
	copy(bs[dheader.OffsetCreatedOn:], f.CreatedOn)
	copy(bs[dheader.OffsetCompletedOn:], f.CompletedOn)
	copy(bs[dheader.OffsetLength:], f.Length)
	copy(bs[dheader.OffsetComments:], f.Comments)
	return bs
}

func validFixture() headerFixture {
	return headerFixture{
		CreatedOn:   "130123164500",
		CompletedOn: "130123170000",
		Length:      "001500",
		Comments:    "Test",
	}
}
