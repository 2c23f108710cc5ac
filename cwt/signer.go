/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cwt

import (
	"crypto"
	"crypto/rand"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

// SignParameters contains parameters of signing a CWT.
type SignParameters struct {
	KeyID  string
	CWTAlg cose.Algorithm
	Type   string
}

// Sign serializes claims as CBOR and signs them into a tagged COSE_Sign1 message.
func Sign(claims interface{}, params SignParameters, key crypto.Signer) ([]byte, error) {
	signer, err := cose.NewSigner(params.CWTAlg, key)
	if err != nil {
		return nil, fmt.Errorf("create COSE signer: %w", err)
	}

	payload, err := cbor.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("marshal CWT claims: %w", err)
	}

	protected := cose.ProtectedHeader{
		cose.HeaderLabelAlgorithm: params.CWTAlg,
	}

	if params.Type != "" {
		protected[int64(HeaderLabelTyp)] = params.Type
	}

	msg := &cose.Sign1Message{
		Headers: cose.Headers{
			Protected:   protected,
			Unprotected: cose.UnprotectedHeader{},
		},
		Payload: payload,
	}

	if params.KeyID != "" {
		msg.Headers.Unprotected[cose.HeaderLabelKeyID] = []byte(params.KeyID)
	}

	if err = msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, fmt.Errorf("sign CWT: %w", err)
	}

	return msg.MarshalCBOR()
}
