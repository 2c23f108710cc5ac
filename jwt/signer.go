/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jwt

import (
	"fmt"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/json"
)

// SignParameters contains parameters of signing a JWT.
type SignParameters struct {
	Algorithm jose.SignatureAlgorithm
	KeyID     string
	Type      string
}

// Sign serializes claims as JSON and signs them into a compact JWS with key, a crypto private key
// or a *jose.JSONWebKey.
func Sign(claims interface{}, params SignParameters, key interface{}) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal JWT claims: %w", err)
	}

	opts := &jose.SignerOptions{}

	if params.Type != "" {
		opts = opts.WithType(jose.ContentType(params.Type))
	}

	if params.KeyID != "" {
		opts = opts.WithHeader("kid", params.KeyID)
	}

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: params.Algorithm, Key: key}, opts)
	if err != nil {
		return "", fmt.Errorf("create JWS signer: %w", err)
	}

	jws, err := signer.Sign(payload)
	if err != nil {
		return "", fmt.Errorf("sign JWT: %w", err)
	}

	return jws.CompactSerialize()
}
