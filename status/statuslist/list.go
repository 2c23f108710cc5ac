/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Compressor compresses a bit-packed status list.
type Compressor interface {
	Compress(ctx context.Context, raw []byte) ([]byte, error)
}

// Decompressor inflates the compressed bytes of a status list.
type Decompressor interface {
	Decompress(ctx context.Context, compressed []byte) ([]byte, error)
}

// StatusList is a compressed, bit-packed array of statuses. Two status lists are equal when they have
// the same bits, aggregation uri and compressed bytes.
type StatusList struct {
	bits           BitsPerStatus
	compressed     []byte
	aggregationURI string
}

type jsonStatusList struct {
	Bits           int    `json:"bits"`
	List           string `json:"lst"`
	AggregationURI string `json:"aggregation_uri,omitempty"`
}

type cborStatusList struct {
	Bits           int    `cbor:"bits"`
	List           []byte `cbor:"lst"`
	AggregationURI string `cbor:"aggregation_uri,omitempty"`
}

// New wraps already compressed bytes into a StatusList.
func New(bits BitsPerStatus, compressed []byte, aggregationURI string) (StatusList, error) {
	if !bits.Valid() {
		return StatusList{}, fmt.Errorf("%w: unsupported bits per status %d", ErrInvalidArgument, bits)
	}

	return StatusList{
		bits:           bits,
		compressed:     bytes.Clone(compressed),
		aggregationURI: aggregationURI,
	}, nil
}

// FromRawBytes compresses the decompressed, bit-packed raw bytes and wraps them into a StatusList.
func FromRawBytes(ctx context.Context, bits BitsPerStatus, raw []byte, compressor Compressor) (StatusList, error) {
	if !bits.Valid() {
		return StatusList{}, fmt.Errorf("%w: unsupported bits per status %d", ErrInvalidArgument, bits)
	}

	compressed, err := compressor.Compress(ctx, raw)
	if err != nil {
		return StatusList{}, fmt.Errorf("compress status list: %w", err)
	}

	return StatusList{bits: bits, compressed: compressed}, nil
}

// FromBase64URL decodes the base64url (no padding) encoded compressed list.
func FromBase64URL(bits BitsPerStatus, text, aggregationURI string) (StatusList, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return StatusList{}, fmt.Errorf("%w: lst is not base64url without padding: %w", ErrDecode, err)
	}

	return New(bits, compressed, aggregationURI)
}

// Bits returns the bits per status.
func (l StatusList) Bits() BitsPerStatus {
	return l.bits
}

// Compressed returns a copy of the compressed list.
func (l StatusList) Compressed() []byte {
	return bytes.Clone(l.compressed)
}

// EncodedList returns the compressed list encoded as base64url without padding.
func (l StatusList) EncodedList() string {
	return base64.RawURLEncoding.EncodeToString(l.compressed)
}

// AggregationURI returns the uri to retrieve the Status List Aggregation, or "" if none.
func (l StatusList) AggregationURI() string {
	return l.aggregationURI
}

// WithAggregationURI returns a copy of l with the given aggregation uri.
func (l StatusList) WithAggregationURI(uri string) StatusList {
	l.aggregationURI = uri

	return l
}

// Equal reports whether l and other hold the same content.
func (l StatusList) Equal(other StatusList) bool {
	return l.bits == other.bits &&
		l.aggregationURI == other.aggregationURI &&
		bytes.Equal(l.compressed, other.compressed)
}

// Decompress inflates the list with d. Cancellation of ctx is returned as is.
func (l StatusList) Decompress(ctx context.Context, d Decompressor) ([]byte, error) {
	raw, err := d.Decompress(ctx, l.compressed)
	if err != nil {
		if ctxErr := ContextError(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}

	return raw, nil
}

// Status decompresses the list with d and reads the status at idx.
func (l StatusList) Status(ctx context.Context, d Decompressor, idx StatusIndex) (Status, error) {
	raw, err := l.Decompress(ctx, d)
	if err != nil {
		return 0, err
	}

	return ReadStatus(l.bits, raw, idx)
}

// MarshalJSON encodes l as {"bits": .., "lst": .., "aggregation_uri": ..}.
func (l StatusList) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonStatusList{
		Bits:           int(l.bits),
		List:           l.EncodedList(),
		AggregationURI: l.aggregationURI,
	})
}

// UnmarshalJSON decodes l from its JSON representation.
func (l *StatusList) UnmarshalJSON(data []byte) error {
	var raw jsonStatusList

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: status list: %w", ErrMalformedToken, err)
	}

	bits, err := ParseBitsPerStatus(raw.Bits)
	if err != nil {
		return err
	}

	decoded, err := FromBase64URL(bits, raw.List, raw.AggregationURI)
	if err != nil {
		return err
	}

	*l = decoded

	return nil
}

// MarshalCBOR encodes l as a CBOR map with "lst" as a byte string.
func (l StatusList) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(cborStatusList{
		Bits:           int(l.bits),
		List:           l.compressed,
		AggregationURI: l.aggregationURI,
	})
}

// UnmarshalCBOR decodes l from its CBOR representation.
func (l *StatusList) UnmarshalCBOR(data []byte) error {
	var raw cborStatusList

	if err := decMode.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: status list: %w", ErrMalformedToken, err)
	}

	bits, err := ParseBitsPerStatus(raw.Bits)
	if err != nil {
		return err
	}

	decoded, err := New(bits, raw.List, raw.AggregationURI)
	if err != nil {
		return err
	}

	*l = decoded

	return nil
}

// ContextError returns the cancellation error when ctx is done or err is a context cancellation or deadline,
// or nil otherwise. Such errors are never wrapped into a status list error kind.
func ContextError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return nil
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}

	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}
