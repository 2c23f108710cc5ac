/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package api holds the capabilities a status list Client is composed of.
package api

//go:generate mockgen -destination ../api_mocks_test.go -package status_test -source=api.go

import (
	"context"
	"time"

	"github.com/trustbloc/statuslist-go/status/statuslist"
)

// TokenFetcher retrieves a Status List Token.
type TokenFetcher interface {
	// FetchToken retrieves the Status List Token at uri, in the given format. When at is not nil the
	// status list valid at that time is requested. Failures are reported as statuslist.ErrFetchFailed.
	FetchToken(ctx context.Context, uri string, format statuslist.Format, at *time.Time) ([]byte, error)
}

// JWTSignatureVerifier verifies the signature of a Status List Token in JWT format.
type JWTSignatureVerifier interface {
	VerifyJWT(ctx context.Context, token string, at time.Time) error
}

// CWTSignatureVerifier verifies the signature of a Status List Token in CWT format.
type CWTSignatureVerifier interface {
	VerifyCWT(ctx context.Context, token []byte, at time.Time) error
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Ignore accepts every signature. Use it only in tests, or where the provenance of Status List Tokens
// is established otherwise.
type Ignore struct{}

// VerifyJWT accepts token.
func (Ignore) VerifyJWT(context.Context, string, time.Time) error {
	return nil
}

// VerifyCWT accepts token.
func (Ignore) VerifyCWT(context.Context, []byte, time.Time) error {
	return nil
}

// SystemClock is the Clock of the operating system.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
