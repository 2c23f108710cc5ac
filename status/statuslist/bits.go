/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"fmt"

	"github.com/trustbloc/statuslist-go/status/internal/bitstring"
)

// BitsPerStatus is the number of bits used to encode a single status in a status list.
type BitsPerStatus int

// Supported bits per status.
const (
	BitsOne   BitsPerStatus = 1
	BitsTwo   BitsPerStatus = 2
	BitsFour  BitsPerStatus = 4
	BitsEight BitsPerStatus = 8
)

// ParseBitsPerStatus returns the BitsPerStatus for n, failing with ErrInvalidArgument unless n is 1, 2, 4 or 8.
func ParseBitsPerStatus(n int) (BitsPerStatus, error) {
	b := BitsPerStatus(n)
	if !b.Valid() {
		return 0, fmt.Errorf("%w: bits per status must be one of 1, 2, 4, 8, got %d", ErrInvalidArgument, n)
	}

	return b, nil
}

// Valid reports whether b is a supported bits per status.
func (b BitsPerStatus) Valid() bool {
	return bitstring.ValidWidth(int(b))
}

// StatusesPerByte returns how many statuses are packed in a single byte, 0 when b is not valid.
func (b BitsPerStatus) StatusesPerByte() int {
	return bitstring.PerByte(int(b))
}

// MaxValue returns the largest status value representable with b bits.
func (b BitsPerStatus) MaxValue() uint8 {
	return bitstring.Mask(int(b))
}
