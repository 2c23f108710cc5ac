/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jwt extracts the protected header and the claims of a JWT in compact serialization.
// The signature is not checked here, see SignatureVerifier.
package jwt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3/json"

	"github.com/trustbloc/statuslist-go/status/statuslist"
)

const (
	// TypeJWT defines JWT type.
	TypeJWT = "JWT"

	// AlgorithmNone used to indicate unsecured JWT.
	AlgorithmNone = "none"

	compactParts = 3
)

// Header is the JOSE header of a JWT.
type Header struct {
	Algorithm   string `json:"alg"`
	Type        string `json:"typ,omitempty"`
	ContentType string `json:"cty,omitempty"`
	KeyID       string `json:"kid,omitempty"`
}

// ParseHeaderAndPayload splits the compact serialized JWT, checks and returns its header and decodes the
// claims into payload. Any failure is reported as statuslist.ErrMalformedToken.
func ParseHeaderAndPayload(jwtSerialized string, payload interface{}) (*Header, error) {
	parts := strings.Split(jwtSerialized, ".")
	if len(parts) != compactParts {
		return nil, fmt.Errorf("%w: JWT of compact serialization must have %d parts, got %d",
			statuslist.ErrMalformedToken, compactParts, len(parts))
	}

	header := &Header{}

	if err := decodePart(parts[0], header); err != nil {
		return nil, fmt.Errorf("%w: decode JWT header: %w", statuslist.ErrMalformedToken, err)
	}

	if err := CheckHeader(header); err != nil {
		return nil, fmt.Errorf("%w: check JWT header: %w", statuslist.ErrMalformedToken, err)
	}

	if err := decodePart(parts[1], payload); err != nil {
		return nil, fmt.Errorf("%w: decode JWT claims: %w", statuslist.ErrMalformedToken, err)
	}

	return header, nil
}

// CheckHeader checks jwt headers.
func CheckHeader(header *Header) error {
	if strings.TrimSpace(header.Algorithm) == "" {
		return errors.New("alg header is not defined")
	}

	if strings.EqualFold(header.ContentType, TypeJWT) { // https://tools.ietf.org/html/rfc7519#section-5.2
		return errors.New("nested JWT is not supported")
	}

	return nil
}

// IsJWS checks if JWT is a JWS of valid structure.
func IsJWS(s string) bool {
	parts := strings.Split(s, ".")

	return len(parts) == compactParts &&
		isValidJSON(parts[0]) &&
		isValidJSON(parts[1]) &&
		parts[2] != ""
}

func isValidJSON(s string) bool {
	var j map[string]interface{}

	return decodePart(s, &j) == nil
}

func decodePart(part string, v interface{}) error {
	b, err := base64.RawURLEncoding.DecodeString(part)
	if err != nil {
		return fmt.Errorf("base64url: %w", err)
	}

	return json.Unmarshal(b, v)
}
