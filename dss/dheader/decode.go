package dheader

import (
	"bytes"

	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dtime"
	"github.com/arkane-systems/arkane-fileproperties-dss/dss/lbytes"
	"github.com/pkg/errors"
)

// IsValidMagic reports whether bs starts like a DSS file: the 3-byte ASCII
// marker "dss" at offset 1. Only the first 4 bytes matter; shorter input
// cannot be valid.
func IsValidMagic(bs []byte) bool {
	if len(bs) < OffsetMagic+len(MagicBytes) {
		return false
	}
	return bytes.Equal(bs[OffsetMagic:OffsetMagic+len(MagicBytes)], MagicBytes)
}

func createTimestampReadFunction(reader *lbytes.Reader, offset int64) lbytes.ReadFunction {
	return func() (any, error) {
		s, err := reader.ReadStringAt(offset, dtime.TimestampLen)
		if err != nil {
			return nil, err
		}
		t, err := dtime.ParseTimestamp(s)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

func createDurationReadFunction(reader *lbytes.Reader, offset int64) lbytes.ReadFunction {
	return func() (any, error) {
		s, err := reader.ReadStringAt(offset, dtime.DurationLen)
		if err != nil {
			return nil, err
		}
		d, err := dtime.ParseDuration(s)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

func checkMagic(reader *lbytes.Reader) error {
	magicBytes, err := reader.ReadBytesAt(OffsetMagic, len(MagicBytes))
	if err != nil {
		return err
	}
	if !bytes.Equal(magicBytes, MagicBytes) {
		return errors.Wrapf(ErrNotAValidFile, "format marker %q where %q was expected", magicBytes, MagicBytes)
	}
	return nil
}

// Decode reads the fixed 1024-byte header laid out at the start of every DSS
// file and returns its decoded fields. pathName only labels the result and
// its errors; the bytes come from reader alone, which may hold the whole
// file, since everything past the header region is ignored. A buffer shorter
// than the header is treated the same as a missing marker: not a valid file.
func Decode(reader *lbytes.Reader, pathName string) (*Header, error) {
	if pathName == "" {
		return nil, errors.Wrap(ErrEmptyPathName, "dheader.Decode error")
	}
	if reader.Size() < HeaderSize {
		err := errors.Wrapf(
			ErrNotAValidFile,
			"dheader.Decode error reading %q: %d bytes where a full %d-byte header was expected",
			pathName, reader.Size(), HeaderSize,
		)
		return nil, err
	}
	if err := checkMagic(reader); err != nil {
		return nil, errors.Wrapf(err, "dheader.Decode error reading %q", pathName)
	}

	headerInstructions := []lbytes.Instruction{
		{Key: "created_on", ReadFunction: createTimestampReadFunction(reader, OffsetCreatedOn)},
		{Key: "completed_on", ReadFunction: createTimestampReadFunction(reader, OffsetCompletedOn)},
		{Key: "length", ReadFunction: createDurationReadFunction(reader, OffsetLength)},
		{Key: "comments", ReadFunction: lbytes.CreateStringZAtReadFunction(reader, OffsetComments, CommentsLen)},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrapf(err, "dheader.Decode error reading %q", pathName)
	}
	header.PathName = pathName

	return header, nil
}
