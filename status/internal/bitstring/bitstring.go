/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bitstring provides functions for operating on byte slices as if they are 0-indexed arrays of
// fixed-width values (1, 2, 4 or 8 bits), packed into bytes LSB-first.
package bitstring

import (
	"errors"
	"fmt"
)

// BitsPerByte is the number of bits in a byte of the bitstring.
const BitsPerByte = 8

var (
	// ErrInvalidWidth is returned when the value width is not one of 1, 2, 4 or 8.
	ErrInvalidWidth = errors.New("width must be one of 1, 2, 4, 8")
	// ErrInvalidOffset is returned when a bit offset is outside [0, 7].
	ErrInvalidOffset = errors.New("bit offset must be in range [0, 7]")
	// ErrPositionInvalid is returned when an index does not address a byte of the bitstring.
	ErrPositionInvalid = errors.New("position is invalid")
)

// ValidWidth reports whether width is a supported value width.
func ValidWidth(width int) bool {
	switch width {
	case 1, 2, 4, 8:
		return true
	default:
		return false
	}
}

// Mask returns the mask selecting a single value of the given width.
func Mask(width int) uint8 {
	return uint8(int(1)<<width - 1)
}

// PerByte returns how many values of the given width are packed in a byte, 0 for an unsupported width.
func PerByte(width int) int {
	if !ValidWidth(width) {
		return 0
	}

	return BitsPerByte / width
}

// Position returns the byte position and the bit offset (within that byte) of the idx'th value.
// An unsupported width yields (0, 0).
func Position(width, idx int) (int, int) {
	perByte := PerByte(width)
	if perByte == 0 {
		return 0, 0
	}

	return idx / perByte, (idx % perByte) * width
}

// Extract reads the value of the given width starting at bitOffset of b.
func Extract(width int, b byte, bitOffset int) (uint8, error) {
	if !ValidWidth(width) {
		return 0, ErrInvalidWidth
	}

	if bitOffset < 0 || bitOffset > BitsPerByte-1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOffset, bitOffset)
	}

	return (b >> bitOffset) & Mask(width), nil
}

// ValueAt returns the value in the idx'th position (zero-indexed) in the given bitstring.
func ValueAt(bitString []byte, width, idx int) (uint8, error) {
	if !ValidWidth(width) {
		return 0, ErrInvalidWidth
	}

	nByte, nBit := Position(width, idx)

	if idx < 0 || nByte >= len(bitString) {
		return 0, ErrPositionInvalid
	}

	return Extract(width, bitString[nByte], nBit)
}

// SetValueAt writes value in the idx'th position of the given bitstring. Bits of value above width are rejected.
func SetValueAt(bitString []byte, width, idx int, value uint8) error {
	if !ValidWidth(width) {
		return ErrInvalidWidth
	}

	if value > Mask(width) {
		return fmt.Errorf("value %d does not fit in %d bits", value, width)
	}

	nByte, nBit := Position(width, idx)

	if idx < 0 || nByte >= len(bitString) {
		return ErrPositionInvalid
	}

	bitString[nByte] = bitString[nByte]&^(Mask(width)<<nBit) | value<<nBit

	return nil
}

// Len returns the number of bytes needed to hold n values of the given width, 0 for an unsupported width.
func Len(width, n int) int {
	perByte := PerByte(width)
	if perByte == 0 {
		return 0
	}

	return (n + perByte - 1) / perByte
}
