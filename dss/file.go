package dss

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/arkane-systems/arkane-fileproperties-dss/dss/dheader"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DecodeReader reads the header bytes from r and decodes them. r must be
// positioned at the start of its source; the function does not seek, and it
// leaves r positioned right after the header region. A source too short to
// hold a full header, or one that fails mid-read, is not a valid DSS file.
func DecodeReader(r io.Reader, pathName string) (*dheader.Header, error) {
	bs := make([]byte, dheader.HeaderSize)
	if _, err := io.ReadFull(r, bs); err != nil {
		err := errors.Wrapf(
			dheader.ErrNotAValidFile,
			"DecodeReader error reading %q: %v", pathName, err,
		)
		return nil, err
	}
	return Decode(bs, pathName)
}

// DecodeFile opens the file at path, decodes its header with the path as
// label, and closes it. An open failure is reported as is: it says something
// about the environment, not about the file's format.
func DecodeFile(path string) (*dheader.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeFile error")
	}
	defer f.Close()
	return DecodeReader(f, path)
}

// DecodeFiles decodes every path concurrently and returns the headers in
// input order. The first failure cancels the remaining work and fails the
// whole batch; no partial result is returned.
func DecodeFiles(ctx context.Context, paths []string) ([]*dheader.Header, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	headers := make([]*dheader.Header, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			header, err := DecodeFile(path)
			if err != nil {
				return err
			}
			headers[i] = header
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return headers, nil
}
