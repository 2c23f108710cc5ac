/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/statuslist-go/cwt"
	"github.com/trustbloc/statuslist-go/jwt"
	"github.com/trustbloc/statuslist-go/status/api"
	"github.com/trustbloc/statuslist-go/status/statuslist"
)

// TokenGetter obtains the validated claims of the Status List Token found at uri.
type TokenGetter interface {
	// GetClaims fetches, verifies, parses and validates the Status List Token at uri. When at is not nil the
	// token is requested and validated for that time, otherwise for the current time.
	GetClaims(ctx context.Context, uri string, at *time.Time) (statuslist.TokenClaims, error)
}

type getterOpts struct {
	clock api.Clock
	skew  time.Duration
}

// GetterOpt configures a JWTTokenGetter or a CWTTokenGetter.
type GetterOpt func(opts *getterOpts)

// WithClock sets the clock providing the validation time when none is requested. Defaults to the system clock.
func WithClock(clock api.Clock) GetterOpt {
	return func(opts *getterOpts) {
		opts.clock = clock
	}
}

// WithAllowedClockSkew sets the tolerance applied to the iat and exp claims. Defaults to zero.
func WithAllowedClockSkew(skew time.Duration) GetterOpt {
	return func(opts *getterOpts) {
		opts.skew = skew
	}
}

// getter holds the steps shared by the JWT and CWT pipelines.
type getter struct {
	fetcher api.TokenFetcher
	format  statuslist.Format
	clock   api.Clock
	skew    time.Duration
}

func newGetter(fetcher api.TokenFetcher, format statuslist.Format, opts []GetterOpt) (getter, error) {
	o := &getterOpts{clock: api.SystemClock{}}

	for _, opt := range opts {
		opt(o)
	}

	if fetcher == nil {
		return getter{}, fmt.Errorf("%w: token fetcher is required", statuslist.ErrInvalidArgument)
	}

	if o.clock == nil {
		return getter{}, fmt.Errorf("%w: clock is required", statuslist.ErrInvalidArgument)
	}

	if o.skew < 0 {
		return getter{}, fmt.Errorf("%w: allowed clock skew must not be negative, got %s",
			statuslist.ErrInvalidArgument, o.skew)
	}

	return getter{fetcher: fetcher, format: format, clock: o.clock, skew: o.skew}, nil
}

func (g *getter) fetch(ctx context.Context, uri string, at *time.Time) ([]byte, error) {
	raw, err := g.fetcher.FetchToken(ctx, uri, g.format, at)
	if err != nil {
		if ctxErr := statuslist.ContextError(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}

		if errors.Is(err, statuslist.ErrFetchFailed) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %s: %w", statuslist.ErrFetchFailed, uri, err)
	}

	return raw, nil
}

func (g *getter) validationTime(at *time.Time) time.Time {
	if at != nil {
		return *at
	}

	return g.clock.Now()
}

func (g *getter) signatureError(ctx context.Context, uri string, err error) error {
	if ctxErr := statuslist.ContextError(ctx, err); ctxErr != nil {
		return ctxErr
	}

	return fmt.Errorf("%w: %s token at %s: %w", statuslist.ErrInvalidSignature, g.format, uri, err)
}

func (g *getter) ensureType(typ string, present bool) error {
	if !present {
		return fmt.Errorf("%w: missing type header, expected %s", statuslist.ErrWrongMediaType,
			g.format.MediaSubtype())
	}

	if !g.format.AcceptsType(typ) {
		return fmt.Errorf("%w: expected %s, got %q", statuslist.ErrWrongMediaType, g.format.MediaSubtype(), typ)
	}

	return nil
}

// JWTTokenGetter obtains Status List Tokens in JWT format.
type JWTTokenGetter struct {
	getter
	verifier api.JWTSignatureVerifier
}

// NewJWTTokenGetter returns a JWTTokenGetter. A negative allowed clock skew fails with
// statuslist.ErrInvalidArgument.
func NewJWTTokenGetter(
	fetcher api.TokenFetcher,
	verifier api.JWTSignatureVerifier,
	opts ...GetterOpt,
) (*JWTTokenGetter, error) {
	g, err := newGetter(fetcher, statuslist.FormatJWT, opts)
	if err != nil {
		return nil, err
	}

	if verifier == nil {
		return nil, fmt.Errorf("%w: JWT signature verifier is required", statuslist.ErrInvalidArgument)
	}

	return &JWTTokenGetter{getter: g, verifier: verifier}, nil
}

// GetClaims implements TokenGetter.
func (g *JWTTokenGetter) GetClaims(ctx context.Context, uri string, at *time.Time) (statuslist.TokenClaims, error) {
	raw, err := g.fetch(ctx, uri, at)
	if err != nil {
		return statuslist.TokenClaims{}, err
	}

	token := string(raw)
	validationTime := g.validationTime(at)

	if err = g.verifier.VerifyJWT(ctx, token, validationTime); err != nil {
		return statuslist.TokenClaims{}, g.signatureError(ctx, uri, err)
	}

	var claims statuslist.TokenClaims

	header, err := jwt.ParseHeaderAndPayload(token, &claims)
	if err != nil {
		return statuslist.TokenClaims{}, err
	}

	if err = g.ensureType(header.Type, header.Type != ""); err != nil {
		return statuslist.TokenClaims{}, err
	}

	return claims.EnsureValid(uri, validationTime, g.skew)
}

// CWTTokenGetter obtains Status List Tokens in CWT format.
type CWTTokenGetter struct {
	getter
	verifier api.CWTSignatureVerifier
}

// NewCWTTokenGetter returns a CWTTokenGetter. A negative allowed clock skew fails with
// statuslist.ErrInvalidArgument.
func NewCWTTokenGetter(
	fetcher api.TokenFetcher,
	verifier api.CWTSignatureVerifier,
	opts ...GetterOpt,
) (*CWTTokenGetter, error) {
	g, err := newGetter(fetcher, statuslist.FormatCWT, opts)
	if err != nil {
		return nil, err
	}

	if verifier == nil {
		return nil, fmt.Errorf("%w: CWT signature verifier is required", statuslist.ErrInvalidArgument)
	}

	return &CWTTokenGetter{getter: g, verifier: verifier}, nil
}

// GetClaims implements TokenGetter.
func (g *CWTTokenGetter) GetClaims(ctx context.Context, uri string, at *time.Time) (statuslist.TokenClaims, error) {
	raw, err := g.fetch(ctx, uri, at)
	if err != nil {
		return statuslist.TokenClaims{}, err
	}

	validationTime := g.validationTime(at)

	if err = g.verifier.VerifyCWT(ctx, raw, validationTime); err != nil {
		return statuslist.TokenClaims{}, g.signatureError(ctx, uri, err)
	}

	var claims statuslist.TokenClaims

	header, err := cwt.ParseHeaderAndPayload(raw, &claims)
	if err != nil {
		return statuslist.TokenClaims{}, err
	}

	if header.Type != nil {
		typ, ok := header.TypeString()
		if !ok {
			return statuslist.TokenClaims{}, fmt.Errorf("%w: expected %s, got content format %v",
				statuslist.ErrWrongMediaType, g.format.MediaSubtype(), header.Type)
		}

		err = g.ensureType(typ, true)
	} else {
		err = g.ensureType("", false)
	}

	if err != nil {
		return statuslist.TokenClaims{}, err
	}

	return claims.EnsureValid(uri, validationTime, g.skew)
}
