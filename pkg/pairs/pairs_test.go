package pairs_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UTD-JLA/dictionary/pkg/dictionary"
	"github.com/UTD-JLA/dictionary/pkg/pairs"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonl = `{"key": "alpha", "value": 1}
{"key": "beta", "value": 2}
{"key": "gamma", "value": 3}
`

const tomlDoc = `
[[pair]]
key = "alpha"
value = 1

[[pair]]
key = "beta"
value = 2

[[pair]]
key = "gamma"
value = 3
`

var want = []dictionary.Pair[string, int]{
	{Key: "alpha", Value: 1},
	{Key: "beta", Value: 2},
	{Key: "gamma", Value: 3},
}

func gzipped(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadJSONL(t *testing.T) {
	got, err := pairs.ReadJSONL[string, int](strings.NewReader(jsonl))
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadJSONL mismatch (-want +got):\n%s", diff)
	}

	_, err = pairs.ReadJSONL[string, int](strings.NewReader(`{"key": "a", "value": "x"}`))
	assert.Error(t, err)

	got, err = pairs.ReadJSONL[string, int](strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadTOML(t *testing.T) {
	got, err := pairs.ReadTOML[string, int](strings.NewReader(tomlDoc))
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadTOML mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCompressed(t *testing.T) {
	t.Run("gzip", func(t *testing.T) {
		got, err := pairs.Read[string, int](bytes.NewReader(gzipped(t, jsonl)), pairs.FormatJSONL, pairs.CompressionGzip)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("zstd", func(t *testing.T) {
		got, err := pairs.Read[string, int](bytes.NewReader(zstded(t, jsonl)), pairs.FormatJSONL, pairs.CompressionZstd)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("zstd toml", func(t *testing.T) {
		got, err := pairs.Read[string, int](bytes.NewReader(zstded(t, tomlDoc)), pairs.FormatTOML, pairs.CompressionZstd)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown settings", func(t *testing.T) {
		_, err := pairs.Read[string, int](strings.NewReader(jsonl), pairs.FormatJSONL, "lz4")
		assert.ErrorIs(t, err, pairs.ErrUnknownCompression)

		_, err = pairs.Read[string, int](strings.NewReader(jsonl), "csv", pairs.CompressionNone)
		assert.ErrorIs(t, err, pairs.ErrUnknownFormat)
	})
}

func TestDetect(t *testing.T) {
	tests := map[string]pairs.Source{
		"pairs.jsonl":        {Path: "pairs.jsonl", Format: pairs.FormatJSONL, Compression: pairs.CompressionNone},
		"pairs.jsonl.gz":     {Path: "pairs.jsonl.gz", Format: pairs.FormatJSONL, Compression: pairs.CompressionGzip},
		"dir/Pairs.TOML.zst": {Path: "dir/Pairs.TOML.zst", Format: pairs.FormatTOML, Compression: pairs.CompressionZstd},
		"pairs.toml":         {Path: "pairs.toml", Format: pairs.FormatTOML, Compression: pairs.CompressionNone},
	}

	for path, expected := range tests {
		assert.Equal(t, expected, pairs.NewSource(path), path)
	}

	explicit := map[string]pairs.Source{
		"pairs.toml":     {Path: "pairs.toml", Compression: pairs.CompressionGzip},
		"pairs.toml.zst": {Path: "pairs.toml.zst", Compression: pairs.CompressionZstd},
		"PAIRS.TOML":     {Path: "PAIRS.TOML", Compression: pairs.CompressionNone},
	}

	for path, source := range explicit {
		assert.Equal(t, pairs.FormatTOML, source.Detect().Format, path)
		assert.Equal(t, source.Compression, source.Detect().Compression, path)
	}

	s := pairs.Source{Path: "pairs.dat"}.WithFormat(pairs.FormatTOML).WithCompression(pairs.CompressionGzip).Detect()
	assert.Equal(t, pairs.FormatTOML, s.Format)
	assert.Equal(t, pairs.CompressionGzip, s.Compression)
}

// cancellingReader cancels its context on the first read.
type cancellingReader struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c *cancellingReader) Read(p []byte) (int, error) {
	c.cancel()
	return c.r.Read(p)
}

func TestReadContext(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&b, "{\"key\": \"k%d\", \"value\": %d}\n", i, i)
	}

	t.Run("cancelled while decoding", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		r := &cancellingReader{r: strings.NewReader(b.String()), cancel: cancel}
		_, err := pairs.ReadContext[string, int](ctx, r, pairs.FormatJSONL, pairs.CompressionNone)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancelled while decompressing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		r := &cancellingReader{r: bytes.NewReader(gzipped(t, b.String())), cancel: cancel}
		_, err := pairs.ReadContext[string, int](ctx, r, pairs.FormatJSONL, pairs.CompressionGzip)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("not cancelled", func(t *testing.T) {
		got, err := pairs.ReadContext[string, int](context.Background(), strings.NewReader(b.String()), pairs.FormatJSONL, pairs.CompressionNone)
		require.NoError(t, err)
		assert.Len(t, got, 10000)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	files := map[string][]byte{
		"a.jsonl":    []byte(jsonl),
		"b.jsonl.gz": gzipped(t, jsonl),
		"c.toml.zst": zstded(t, tomlDoc),
		"d.toml":     []byte(tomlDoc),
	}

	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))

		got, err := pairs.Load[string, int](context.Background(), pairs.NewSource(filepath.Join(dir, name)))
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	path := filepath.Join(dir, "e.toml")
	require.NoError(t, os.WriteFile(path, gzipped(t, tomlDoc), 0o644))

	got, err := pairs.Load[string, int](context.Background(), pairs.Source{Path: path, Compression: pairs.CompressionGzip})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = pairs.Load[string, int](context.Background(), pairs.NewSource(filepath.Join(dir, "missing.jsonl")))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pairs.Load[string, int](ctx, pairs.NewSource(filepath.Join(dir, "a.jsonl")))
	assert.ErrorIs(t, err, context.Canceled)
}
