/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"fmt"
	"time"
)

// EnsureSubject fails with ErrSubjectMismatch unless the subject of c is expected.
func (c TokenClaims) EnsureSubject(expected string) error {
	if c.Subject != expected {
		return fmt.Errorf("%w: expected %q, got %q", ErrSubjectMismatch, expected, c.Subject)
	}

	return nil
}

// EnsureIssuedBefore fails with ErrNotYetValid unless c was issued at or before t + skew.
func (c TokenClaims) EnsureIssuedBefore(t time.Time, skew time.Duration) error {
	if c.IssuedAt.After(t.Add(skew)) {
		return fmt.Errorf("%w: issued at %s, validation time %s, allowed clock skew %s",
			ErrNotYetValid, c.IssuedAt.Format(time.RFC3339), t.Format(time.RFC3339), skew)
	}

	return nil
}

// EnsureNotExpired fails with ErrExpired when c expires before t - skew. Claims without expiration never expire.
func (c TokenClaims) EnsureNotExpired(t time.Time, skew time.Duration) error {
	if c.ExpirationTime == nil {
		return nil
	}

	if c.ExpirationTime.Before(t.Add(-skew)) {
		return fmt.Errorf("%w: expired at %s, validation time %s, allowed clock skew %s",
			ErrExpired, c.ExpirationTime.Format(time.RFC3339), t.Format(time.RFC3339), skew)
	}

	return nil
}

// EnsureValid checks subject, issuance and expiration of c in that order and returns c unchanged.
func (c TokenClaims) EnsureValid(expectedSubject string, t time.Time, skew time.Duration) (TokenClaims, error) {
	if err := c.EnsureSubject(expectedSubject); err != nil {
		return TokenClaims{}, err
	}

	if err := c.EnsureIssuedBefore(t, skew); err != nil {
		return TokenClaims{}, err
	}

	if err := c.EnsureNotExpired(t, skew); err != nil {
		return TokenClaims{}, err
	}

	return c, nil
}
