// Package pairs reads key/value pairs from JSONL and TOML files, optionally
// compressed with gzip or zstd.
package pairs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/UTD-JLA/dictionary/pkg/dictionary"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrUnknownFormat      = errors.New("unknown pair format")
	ErrUnknownCompression = errors.New("unknown compression")
)

// ReadJSONL decodes one {"key": ..., "value": ...} object per line.
func ReadJSONL[K comparable, V any](r io.Reader) (ps []dictionary.Pair[K, V], err error) {
	decoder := json.NewDecoder(r)

	for decoder.More() {
		var p dictionary.Pair[K, V]
		if err = decoder.Decode(&p); err != nil {
			err = fmt.Errorf("decoding pair %d: %w", len(ps), err)
			return
		}
		ps = append(ps, p)
	}

	return
}

type tomlFile[K comparable, V any] struct {
	Pairs []dictionary.Pair[K, V] `toml:"pair"`
}

// ReadTOML decodes a document made of [[pair]] tables.
func ReadTOML[K comparable, V any](r io.Reader) ([]dictionary.Pair[K, V], error) {
	var f tomlFile[K, V]

	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding toml pairs: %w", err)
	}

	return f.Pairs, nil
}

// Read decodes r according to format after undoing compression.
func Read[K comparable, V any](r io.Reader, format Format, compression Compression) ([]dictionary.Pair[K, V], error) {
	return ReadContext[K, V](context.Background(), r, format, compression)
}

// ReadContext is Read, but gives up with ctx's error once ctx is done.
func ReadContext[K comparable, V any](ctx context.Context, r io.Reader, format Format, compression Compression) ([]dictionary.Pair[K, V], error) {
	rc, err := Decompress(&contextReader{ctx: ctx, r: r}, compression)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	ps, err := Decode[K, V](rc, format)
	if err != nil {
		return nil, err
	}

	// the JSONL decoder treats a failed read between values as the end of input
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}

func Decode[K comparable, V any](r io.Reader, format Format) ([]dictionary.Pair[K, V], error) {
	switch format {
	case FormatJSONL, "":
		return ReadJSONL[K, V](r)
	case FormatTOML:
		return ReadTOML[K, V](r)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
