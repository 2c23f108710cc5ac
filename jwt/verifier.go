/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/samber/lo"
)

// SignatureVerifier verifies the JWS signature of a JWT with a single public key.
type SignatureVerifier struct {
	key        interface{}
	algorithms []jose.SignatureAlgorithm
}

// NewSignatureVerifier returns a SignatureVerifier for key, which is a crypto public key or a *jose.JSONWebKey.
// When algorithms are given, tokens signed with any other algorithm are rejected.
func NewSignatureVerifier(key interface{}, algorithms ...jose.SignatureAlgorithm) *SignatureVerifier {
	return &SignatureVerifier{key: key, algorithms: algorithms}
}

// VerifyJWT verifies the signature of the compact serialized token.
func (v *SignatureVerifier) VerifyJWT(_ context.Context, token string, _ time.Time) error {
	jws, err := jose.ParseSigned(token)
	if err != nil {
		return fmt.Errorf("parse JWS: %w", err)
	}

	if len(jws.Signatures) != 1 {
		return fmt.Errorf("expected a single signature, got %d", len(jws.Signatures))
	}

	alg := jose.SignatureAlgorithm(jws.Signatures[0].Header.Algorithm)

	if alg == AlgorithmNone {
		return errors.New("unsecured JWT is not accepted")
	}

	if len(v.algorithms) > 0 && !lo.Contains(v.algorithms, alg) {
		return fmt.Errorf("signature algorithm %s is not accepted", alg)
	}

	if _, err = jws.Verify(v.key); err != nil {
		return fmt.Errorf("verify JWS: %w", err)
	}

	return nil
}
