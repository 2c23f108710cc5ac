/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cwt extracts the protected header and the claims of a CWT signed as a COSE_Sign1 message.
// The signature is not checked here, see SignatureVerifier.
package cwt

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/trustbloc/statuslist-go/status/statuslist"
)

const (
	// TagSign1 is the CBOR tag of a COSE_Sign1 message (RFC 9052).
	TagSign1 = 18
	// HeaderLabelTyp is the COSE header label of the content type of the complete message (RFC 9596).
	HeaderLabelTyp = 16
)

// ProtectedHeader is the COSE protected header of a CWT.
type ProtectedHeader struct {
	// Algorithm is an integer or a text string.
	Algorithm interface{} `cbor:"1,keyasint,omitempty"`
	// ContentType is an unsigned integer (CoAP content format) or a text string.
	ContentType interface{} `cbor:"3,keyasint,omitempty"`
	KeyID       []byte      `cbor:"4,keyasint,omitempty"`
	// Type is an unsigned integer (CoAP content format) or a text string.
	Type interface{} `cbor:"16,keyasint,omitempty"`
}

// TypeString returns the typ header when it is a text string.
func (h *ProtectedHeader) TypeString() (string, bool) {
	typ, ok := h.Type.(string)

	return typ, ok
}

// sign1Message is COSE_Sign1 = [protected: bstr, unprotected: map, payload: bstr / nil, signature: bstr].
type sign1Message struct {
	_           struct{} `cbor:",toarray"`
	Protected   []byte
	Unprotected cbor.RawMessage
	Payload     []byte
	Signature   []byte
}

// ParseHeaderAndPayload decodes the tagged COSE_Sign1 message, returns its protected header and decodes the
// CWT claims into payload. Any failure is reported as statuslist.ErrMalformedToken.
func ParseHeaderAndPayload(cwtSerialized []byte, payload interface{}) (*ProtectedHeader, error) {
	var tag cbor.RawTag

	if err := decMode.Unmarshal(cwtSerialized, &tag); err != nil {
		return nil, fmt.Errorf("%w: CWT is not a tagged CBOR data item: %w", statuslist.ErrMalformedToken, err)
	}

	if tag.Number != TagSign1 {
		return nil, fmt.Errorf("%w: expected COSE_Sign1 tag %d, got %d",
			statuslist.ErrMalformedToken, TagSign1, tag.Number)
	}

	var msg sign1Message

	if err := decMode.Unmarshal(tag.Content, &msg); err != nil {
		return nil, fmt.Errorf("%w: decode COSE_Sign1: %w", statuslist.ErrMalformedToken, err)
	}

	header := &ProtectedHeader{}

	// A zero length protected header is an empty map.
	if len(msg.Protected) > 0 {
		if err := decMode.Unmarshal(msg.Protected, header); err != nil {
			return nil, fmt.Errorf("%w: decode COSE protected header: %w", statuslist.ErrMalformedToken, err)
		}
	}

	if len(msg.Payload) == 0 {
		return nil, fmt.Errorf("%w: missing claims in CWT", statuslist.ErrMalformedToken)
	}

	if err := decMode.Unmarshal(msg.Payload, payload); err != nil {
		return nil, fmt.Errorf("%w: decode CWT claims: %w", statuslist.ErrMalformedToken, err)
	}

	return header, nil
}

var decMode cbor.DecMode

func init() {
	var err error

	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}
