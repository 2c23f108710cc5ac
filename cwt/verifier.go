/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cwt

import (
	"context"
	"crypto"
	"fmt"
	"time"

	"github.com/veraison/go-cose"
)

// SignatureVerifier verifies the COSE_Sign1 signature of a CWT with a single public key.
type SignatureVerifier struct {
	verifier cose.Verifier
}

// NewSignatureVerifier returns a SignatureVerifier accepting signatures of alg made by the private key of key.
func NewSignatureVerifier(alg cose.Algorithm, key crypto.PublicKey) (*SignatureVerifier, error) {
	verifier, err := cose.NewVerifier(alg, key)
	if err != nil {
		return nil, fmt.Errorf("create COSE verifier: %w", err)
	}

	return &SignatureVerifier{verifier: verifier}, nil
}

// VerifyCWT verifies the signature of the serialized COSE_Sign1 token.
func (v *SignatureVerifier) VerifyCWT(_ context.Context, token []byte, _ time.Time) error {
	var msg cose.Sign1Message

	if err := msg.UnmarshalCBOR(token); err != nil {
		return fmt.Errorf("decode COSE_Sign1: %w", err)
	}

	alg, err := msg.Headers.Protected.Algorithm()
	if err != nil {
		return fmt.Errorf("check cwt failure: %w", err)
	}

	if alg != v.verifier.Algorithm() {
		return fmt.Errorf("check cwt failure: signature algorithm %s is not accepted", alg)
	}

	return msg.Verify(nil, v.verifier)
}
