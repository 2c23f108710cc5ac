/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package zlib compresses and inflates status lists with ZLIB (RFC 1950) over DEFLATE (RFC 1951).
package zlib

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

// DefaultMaxSize is the default limit of an inflated status list.
const DefaultMaxSize = 64 << 20

// ErrTooLarge is returned when the inflated data exceeds the configured max size.
var ErrTooLarge = errors.New("inflated data exceeds max size")

// Codec is a ZLIB Compressor and Decompressor. Compression uses the best compression level.
// Inflation accepts ZLIB streams and falls back to raw DEFLATE when the ZLIB header is missing.
// The zero value is not usable, use New.
type Codec struct {
	maxSize int64
}

// Opt configures a Codec.
type Opt func(c *Codec)

// WithMaxSize sets the limit of inflated data in bytes.
func WithMaxSize(n int64) Opt {
	return func(c *Codec) {
		c.maxSize = n
	}
}

// New returns a Codec.
func New(opts ...Opt) *Codec {
	c := &Codec{maxSize: DefaultMaxSize}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compress deflates raw into a ZLIB stream.
func (c *Codec) Compress(ctx context.Context, raw []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}

	if _, err = w.Write(raw); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}

	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a ZLIB stream, or a raw DEFLATE stream.
func (c *Codec) Decompress(ctx context.Context, compressed []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		if !errors.Is(err, zlib.ErrHeader) {
			return nil, fmt.Errorf("zlib decompress: %w", err)
		}

		r = flate.NewReader(bytes.NewReader(compressed))
	}

	defer r.Close() //nolint:errcheck

	return c.readAll(r)
}

func (c *Codec) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, c.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}

	if int64(len(data)) > c.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, c.maxSize)
	}

	return data, nil
}
