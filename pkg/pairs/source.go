package pairs

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/UTD-JLA/dictionary/pkg/dictionary"
	"github.com/klauspost/compress/zstd"
)

type Format string

const (
	FormatJSONL Format = "jsonl"
	FormatTOML  Format = "toml"
)

type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// Source describes one pair file. Empty Format or Compression fields are
// filled in from the file extension by Detect.
type Source struct {
	Path        string      `toml:"path"`
	Format      Format      `toml:"format"`
	Compression Compression `toml:"compression"`
}

func NewSource(path string) Source {
	return Source{Path: path}.Detect()
}

func (s Source) WithFormat(format Format) Source {
	s.Format = format
	return s
}

func (s Source) WithCompression(compression Compression) Source {
	s.Compression = compression
	return s
}

// Detect guesses missing settings from names such as pairs.jsonl.zst.
func (s Source) Detect() Source {
	name := strings.ToLower(filepath.Base(s.Path))

	if s.Compression == "" {
		switch filepath.Ext(name) {
		case ".gz":
			s.Compression = CompressionGzip
		case ".zst", ".zstd":
			s.Compression = CompressionZstd
		default:
			s.Compression = CompressionNone
		}
	}

	switch ext := filepath.Ext(name); ext {
	case ".gz", ".zst", ".zstd":
		name = strings.TrimSuffix(name, ext)
	}

	if s.Format == "" {
		switch filepath.Ext(name) {
		case ".toml":
			s.Format = FormatTOML
		default:
			s.Format = FormatJSONL
		}
	}

	return s
}

// Load reads every pair in the file s points to. Decoding stops early if ctx
// is cancelled.
func Load[K comparable, V any](ctx context.Context, s Source) ([]dictionary.Pair[K, V], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s = s.Detect()

	file, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	ps, err := ReadContext[K, V](ctx, file, s.Format, s.Compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	return ps, nil
}

// contextReader fails reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}

// Decompress wraps r so reads return decompressed bytes. Closing the result
// releases the decompressor but leaves r open.
func Decompress(r io.Reader, compression Compression) (io.ReadCloser, error) {
	switch compression {
	case CompressionNone, "":
		return io.NopCloser(r), nil
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case CompressionZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return decoder.IOReadCloser(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, compression)
}
