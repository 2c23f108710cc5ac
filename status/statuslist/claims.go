/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
)

// TokenClaims are the claims of a Status List Token.
type TokenClaims struct {
	// Subject is the uri of the Status List Token.
	Subject        string
	IssuedAt       time.Time
	ExpirationTime *time.Time
	TimeToLive     *TimeToLive
	StatusList     StatusList
}

type jsonClaims struct {
	Subject        string           `json:"sub"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	ExpirationTime *jwt.NumericDate `json:"exp,omitempty"`
	TimeToLive     *int64           `json:"ttl,omitempty"`
	StatusList     *StatusList      `json:"status_list"`
}

type cborClaims struct {
	Subject        string       `cbor:"2,keyasint"`
	ExpirationTime *numericDate `cbor:"4,keyasint,omitempty"`
	IssuedAt       *numericDate `cbor:"6,keyasint"`
	StatusList     *StatusList  `cbor:"65533,keyasint"`
	TimeToLive     *int64       `cbor:"65534,keyasint,omitempty"`
}

// maxTimeToLive is the largest ttl claim, in seconds, representable as a time.Duration.
const maxTimeToLive = math.MaxInt64 / int64(time.Second)

// numericDate is a CWT NumericDate, seconds since the epoch encoded as an integer or a floating point number.
// Fractional seconds are truncated. It is encoded as an integer.
type numericDate int64

func (d *numericDate) UnmarshalCBOR(data []byte) error {
	var v interface{}

	if err := decMode.Unmarshal(data, &v); err != nil {
		return err
	}

	switch n := v.(type) {
	case uint64:
		if n > math.MaxInt64 {
			return fmt.Errorf("numeric date %d out of range", n)
		}

		*d = numericDate(n)
	case int64:
		*d = numericDate(n)
	case float64:
		if math.IsNaN(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return fmt.Errorf("numeric date %v out of range", n)
		}

		*d = numericDate(n)
	default:
		return errors.New("numeric date must be a number")
	}

	return nil
}

func (d *numericDate) seconds() *int64 {
	if d == nil {
		return nil
	}

	v := int64(*d)

	return &v
}

// MarshalJSON encodes c with the JWT claim names sub, iat, exp, ttl and status_list.
func (c TokenClaims) MarshalJSON() ([]byte, error) {
	raw := jsonClaims{
		Subject:    c.Subject,
		IssuedAt:   jwt.NewNumericDate(c.IssuedAt),
		StatusList: &c.StatusList,
	}

	if c.ExpirationTime != nil {
		raw.ExpirationTime = jwt.NewNumericDate(*c.ExpirationTime)
	}

	if c.TimeToLive != nil {
		ttl := int64(c.TimeToLive.Duration() / time.Second)
		raw.TimeToLive = &ttl
	}

	return json.Marshal(raw)
}

// UnmarshalJSON decodes c from JWT claims. Missing sub, iat or status_list fail with ErrMalformedToken.
func (c *TokenClaims) UnmarshalJSON(data []byte) error {
	var raw jsonClaims

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: status list token claims: %w", ErrMalformedToken, err)
	}

	var iat, exp *int64

	if raw.IssuedAt != nil {
		v := int64(*raw.IssuedAt)
		iat = &v
	}

	if raw.ExpirationTime != nil {
		v := int64(*raw.ExpirationTime)
		exp = &v
	}

	claims, err := newTokenClaims(raw.Subject, iat, exp, raw.TimeToLive, raw.StatusList)
	if err != nil {
		return err
	}

	*c = claims

	return nil
}

// MarshalCBOR encodes c with the CWT claim keys 2 (sub), 6 (iat), 4 (exp), 65534 (ttl) and 65533 (status_list).
func (c TokenClaims) MarshalCBOR() ([]byte, error) {
	iat := numericDate(c.IssuedAt.Unix())

	raw := cborClaims{
		Subject:    c.Subject,
		IssuedAt:   &iat,
		StatusList: &c.StatusList,
	}

	if c.ExpirationTime != nil {
		exp := numericDate(c.ExpirationTime.Unix())
		raw.ExpirationTime = &exp
	}

	if c.TimeToLive != nil {
		ttl := int64(c.TimeToLive.Duration() / time.Second)
		raw.TimeToLive = &ttl
	}

	return encMode.Marshal(raw)
}

// UnmarshalCBOR decodes c from CWT claims. Missing sub, iat or status_list fail with ErrMalformedToken.
func (c *TokenClaims) UnmarshalCBOR(data []byte) error {
	var raw cborClaims

	if err := decMode.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: status list token claims: %w", ErrMalformedToken, err)
	}

	claims, err := newTokenClaims(raw.Subject, raw.IssuedAt.seconds(), raw.ExpirationTime.seconds(), raw.TimeToLive,
		raw.StatusList)
	if err != nil {
		return err
	}

	*c = claims

	return nil
}

func newTokenClaims(sub string, iat, exp, ttl *int64, list *StatusList) (TokenClaims, error) {
	if sub == "" {
		return TokenClaims{}, fmt.Errorf("%w: missing %s claim", ErrMalformedToken, ClaimSubject)
	}

	if iat == nil {
		return TokenClaims{}, fmt.Errorf("%w: missing %s claim", ErrMalformedToken, ClaimIssuedAt)
	}

	if list == nil {
		return TokenClaims{}, fmt.Errorf("%w: missing %s claim", ErrMalformedToken, ClaimStatusList)
	}

	claims := TokenClaims{
		Subject:    sub,
		IssuedAt:   time.Unix(*iat, 0).UTC(),
		StatusList: *list,
	}

	if exp != nil {
		t := time.Unix(*exp, 0).UTC()
		claims.ExpirationTime = &t
	}

	if ttl != nil {
		if *ttl > maxTimeToLive {
			return TokenClaims{}, fmt.Errorf("%w: %s claim %d is too large", ErrMalformedToken, ClaimTimeToLive, *ttl)
		}

		v, err := NewTimeToLive(time.Duration(*ttl) * time.Second)
		if err != nil {
			return TokenClaims{}, fmt.Errorf("%w: %s claim: %w", ErrMalformedToken, ClaimTimeToLive, err)
		}

		claims.TimeToLive = &v
	}

	return claims, nil
}
