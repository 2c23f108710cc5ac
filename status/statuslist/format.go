/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Format is the envelope format of a status list token.
type Format int

const (
	// FormatJWT is a status list token signed as a compact JWT.
	FormatJWT Format = iota
	// FormatCWT is a status list token signed as a COSE_Sign1 CWT.
	FormatCWT
)

// ParseFormat parses "jwt" or "cwt", case insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "jwt":
		return FormatJWT, nil
	case "cwt":
		return FormatCWT, nil
	default:
		return 0, fmt.Errorf("%w: unsupported status list token format %q", ErrInvalidArgument, s)
	}
}

// MediaType returns the media type to request the status list token with.
func (f Format) MediaType() string {
	if f == FormatCWT {
		return MediaTypeCWT
	}

	return MediaTypeJWT
}

// MediaSubtype returns the media subtype expected as declared token type.
func (f Format) MediaSubtype() string {
	if f == FormatCWT {
		return MediaSubtypeCWT
	}

	return MediaSubtypeJWT
}

// AcceptsType reports whether typ, as declared in the protected header of a token, is the status list media
// type of this format. Both the subtype and the full media type are accepted.
func (f Format) AcceptsType(typ string) bool {
	return lo.Contains([]string{f.MediaSubtype(), f.MediaType()}, typ)
}

func (f Format) String() string {
	if f == FormatCWT {
		return "cwt"
	}

	return "jwt"
}
