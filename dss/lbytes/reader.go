package lbytes

import (
	"bytes"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// ReadBytesAt returns a copy of the n bytes starting at offset. The DSS
// header keeps every field at a fixed offset, so reads are positioned
// instead of sequential.
func (b *Reader) ReadBytesAt(offset int64, n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early to avoid an EOF error
	// when offset sits at the very end of the buffer
	// while the number of bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := b.ReadAt(bs, offset)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadStringAt(offset int64, n int) (string, error) {
	bs, err := b.ReadBytesAt(offset, n)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// ReadStringZAt reads an n-byte field holding a zero-terminated string and
// returns everything before the first zero byte. Bytes past the terminator
// are padding or junk and never part of the result. A field without any
// zero byte is simply full: the whole n bytes are the string.
func (b *Reader) ReadStringZAt(offset int64, n int) (string, error) {
	bs, err := b.ReadBytesAt(offset, n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(bs, 0); i != -1 {
		bs = bs[:i]
	}
	return string(bs), nil
}
