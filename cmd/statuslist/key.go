/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/go-jose/go-jose/v3"
	"github.com/veraison/go-cose"
)

var coseAlgorithms = map[string]cose.Algorithm{
	"ES256": cose.AlgorithmES256,
	"ES384": cose.AlgorithmES384,
	"ES512": cose.AlgorithmES512,
	"PS256": cose.AlgorithmPS256,
	"PS384": cose.AlgorithmPS384,
	"PS512": cose.AlgorithmPS512,
	"EdDSA": cose.AlgorithmEdDSA,
}

// loadPublicKey reads a PEM encoded PKIX public key or a JWK from path.
func loadPublicKey(path string) (crypto.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		var jwk jose.JSONWebKey

		if err = jwk.UnmarshalJSON(data); err != nil {
			return nil, fmt.Errorf("parse JWK: %w", err)
		}

		if !jwk.IsPublic() {
			jwk = jwk.Public()
		}

		if !jwk.Valid() {
			return nil, errors.New("JWK is not a valid public key")
		}

		return jwk.Key, nil
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("key is neither PEM nor JWK")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse PEM public key: %w", err)
	}

	return key, nil
}

// coseAlgorithm returns the algorithm named alg, or the default algorithm of key when alg is empty.
func coseAlgorithm(alg string, key crypto.PublicKey) (cose.Algorithm, error) {
	if alg != "" {
		a, ok := coseAlgorithms[alg]
		if !ok {
			return 0, fmt.Errorf("unsupported COSE algorithm '%s'", alg)
		}

		return a, nil
	}

	switch k := key.(type) {
	case *ecdsa.PublicKey:
		switch k.Curve {
		case elliptic.P256():
			return cose.AlgorithmES256, nil
		case elliptic.P384():
			return cose.AlgorithmES384, nil
		case elliptic.P521():
			return cose.AlgorithmES512, nil
		}
	case ed25519.PublicKey:
		return cose.AlgorithmEdDSA, nil
	case *rsa.PublicKey:
		return cose.AlgorithmPS256, nil
	}

	return 0, fmt.Errorf("cannot infer COSE algorithm of %T, set --%s", key, algFlag)
}
