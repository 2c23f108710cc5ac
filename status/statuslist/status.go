/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import "fmt"

// Status is the status of a Referenced Token as held by a status list.
// Statuses are ordered by their raw value.
type Status uint8

// Status values defined by draft-ietf-oauth-status-list.
const (
	StatusValid               Status = 0x00
	StatusInvalid             Status = 0x01
	StatusSuspended           Status = 0x02
	StatusApplicationSpecific Status = 0x03

	applicationSpecificRangeStart Status = 0x0B
	applicationSpecificRangeEnd   Status = 0x0F
)

// Kind classifies a Status value.
type Kind int

// Status kinds.
const (
	KindValid Kind = iota
	KindInvalid
	KindSuspended
	KindApplicationSpecific
	KindReserved
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindInvalid:
		return "invalid"
	case KindSuspended:
		return "suspended"
	case KindApplicationSpecific:
		return "application_specific"
	default:
		return "reserved"
	}
}

// NewStatus returns the status for value, failing with ErrInvalidArgument when value does not fit in bits.
func NewStatus(bits BitsPerStatus, value uint8) (Status, error) {
	if !bits.Valid() {
		return 0, fmt.Errorf("%w: unsupported bits per status %d", ErrInvalidArgument, bits)
	}

	if value > bits.MaxValue() {
		return 0, fmt.Errorf("%w: status value %d exceeds max %d for %d bits per status",
			ErrInvalidArgument, value, bits.MaxValue(), bits)
	}

	return Status(value), nil
}

// Kind returns the classification of s.
func (s Status) Kind() Kind {
	switch {
	case s == StatusValid:
		return KindValid
	case s == StatusInvalid:
		return KindInvalid
	case s == StatusSuspended:
		return KindSuspended
	case s.IsApplicationSpecific():
		return KindApplicationSpecific
	default:
		return KindReserved
	}
}

// IsApplicationSpecific reports whether s is 0x03 or in the 0x0B..0x0F range.
func (s Status) IsApplicationSpecific() bool {
	return s == StatusApplicationSpecific ||
		(s >= applicationSpecificRangeStart && s <= applicationSpecificRangeEnd)
}

// Value returns the raw status value.
func (s Status) Value() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	switch s.Kind() {
	case KindApplicationSpecific, KindReserved:
		return fmt.Sprintf("%s(0x%02X)", s.Kind(), uint8(s))
	default:
		return s.Kind().String()
	}
}
