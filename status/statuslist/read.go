/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"errors"
	"fmt"

	"github.com/trustbloc/statuslist-go/status/internal/bitstring"
)

// PositionOf returns the byte position and the bit offset within that byte of the status at idx.
// An invalid bits yields (0, 0).
func PositionOf(bits BitsPerStatus, idx StatusIndex) (int, int) {
	return bitstring.Position(int(bits), idx.Value())
}

// ReadStatusByte extracts the raw status value found at bitOffset of b.
func ReadStatusByte(bits BitsPerStatus, b byte, bitOffset int) (uint8, error) {
	v, err := bitstring.Extract(int(bits), b, bitOffset)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return v, nil
}

// ReadStatus reads the status at idx of the decompressed status list.
func ReadStatus(bits BitsPerStatus, decompressed []byte, idx StatusIndex) (Status, error) {
	v, err := bitstring.ValueAt(decompressed, int(bits), idx.Value())
	if err != nil {
		if errors.Is(err, bitstring.ErrPositionInvalid) {
			pos, _ := PositionOf(bits, idx)

			return 0, fmt.Errorf("%w: index %d at byte %d of a %d byte status list",
				ErrOutOfRange, idx.Value(), pos, len(decompressed))
		}

		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewStatus(bits, v)
}

// Pack bit-packs statuses, the i'th status at index i, into a decompressed status list.
func Pack(bits BitsPerStatus, statuses []Status) ([]byte, error) {
	if !bits.Valid() {
		return nil, fmt.Errorf("%w: unsupported bits per status %d", ErrInvalidArgument, bits)
	}

	out := make([]byte, bitstring.Len(int(bits), len(statuses)))

	for i, s := range statuses {
		if err := bitstring.SetValueAt(out, int(bits), i, s.Value()); err != nil {
			return nil, fmt.Errorf("%w: status %d at index %d: %w", ErrInvalidArgument, s.Value(), i, err)
		}
	}

	return out, nil
}
