package parser

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// openSource opens path for reading, transparently decompressing .gz and
// .zst files. Rotated logs are commonly shipped compressed; the parser
// treats them the same as plain text.
func openSource(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open %s: %w", path, err)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("parser: gzip %s: %w", path, err)
		}
		return &wrappedCloser{Reader: gz, close: func() error {
			gz.Close()
			return f.Close()
		}}, nil
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("parser: zstd %s: %w", path, err)
		}
		return &wrappedCloser{Reader: dec, close: func() error {
			dec.Close()
			return f.Close()
		}}, nil
	default:
		return f, nil
	}
}

// wrappedCloser pairs a decompressing reader with the file it wraps so both
// are released on Close.
type wrappedCloser struct {
	io.Reader
	close func() error
}

func (w *wrappedCloser) Close() error {
	return w.close()
}
