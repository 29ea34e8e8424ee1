package dss

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dheader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReader(t *testing.T) {
	header, err := DecodeReader(bytes.NewReader(validFixture().encode()), "dictation.dss")

	assert.NoError(t, err)
	assert.Equal(t, "dictation.dss", header.PathName)
	assert.Equal(t, 15*time.Minute, header.Length)
}

func TestDecodeReader_ShortStream(t *testing.T) {
	bs := validFixture().encode()

	for _, n := range []int{0, 100, dheader.HeaderSize - 1} {
		_, err := DecodeReader(bytes.NewReader(bs[:n]), "short.dss")
		assert.ErrorIs(t, err, dheader.ErrNotAValidFile, n)
	}
}

func TestDecodeReader_LeavesTrailingBytesUnread(t *testing.T) {
	// the audio payload after the header belongs to the caller
	payload := []byte("payload")
	reader := bytes.NewReader(append(validFixture().encode(), payload...))

	_, err := DecodeReader(reader, "dictation.dss")
	assert.NoError(t, err)
	assert.Equal(t, len(payload), reader.Len())
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictation.dss")
	require.NoError(t, os.WriteFile(path, validFixture().encode(), 0644))

	header, err := DecodeFile(path)
	assert.NoError(t, err)
	assert.Equal(t, path, header.PathName)
	assert.Equal(t, "Test", header.Comments)
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.dss"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, dheader.ErrNotAValidFile)
}

func TestDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	fixtures := []headerFixture{
		{"130123164500", "130123170000", "001500", "first"},
		{"050630081502", "050630102030", "020528", "second"},
		{"291231235959", "300101000000", "250130", "third"},
	}
	paths := make([]string, len(fixtures))
	for i, fixture := range fixtures {
		paths[i] = filepath.Join(dir, fixture.Comments+".dss")
		require.NoError(t, os.WriteFile(paths[i], fixture.encode(), 0644))
	}

	headers, err := DecodeFiles(context.Background(), paths)
	assert.NoError(t, err)
	require.Len(t, headers, len(paths))
	for i, header := range headers {
		assert.Equal(t, paths[i], header.PathName)
		assert.Equal(t, fixtures[i].Comments, header.Comments)
	}
}

func TestDecodeFiles_FailsAtomically(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.dss")
	bad := filepath.Join(dir, "bad.dss")
	require.NoError(t, os.WriteFile(good, validFixture().encode(), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("not a header"), 0644))

	headers, err := DecodeFiles(context.Background(), []string{good, bad})
	assert.ErrorIs(t, err, dheader.ErrNotAValidFile)
	assert.Nil(t, headers)
}

func TestDecodeFiles_Empty(t *testing.T) {
	headers, err := DecodeFiles(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, headers)
}

func TestDecodeFiles_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictation.dss")
	require.NoError(t, os.WriteFile(path, validFixture().encode(), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DecodeFiles(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}
