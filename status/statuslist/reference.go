/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// StatusIndex is the non-negative position of a Referenced Token in a status list.
type StatusIndex struct {
	value int
}

// NewStatusIndex returns the StatusIndex for value, failing with ErrInvalidArgument when value is negative.
func NewStatusIndex(value int) (StatusIndex, error) {
	if value < 0 {
		return StatusIndex{}, fmt.Errorf("%w: status index must be non-negative, got %d", ErrInvalidArgument, value)
	}

	return StatusIndex{value: value}, nil
}

// Value returns the index.
func (i StatusIndex) Value() int {
	return i.value
}

// StatusReference points at the status of a Referenced Token: the index into the status list found at uri.
type StatusReference struct {
	index StatusIndex
	uri   string
}

type wireReference struct {
	Index *int64 `json:"idx" cbor:"idx"`
	URI   string `json:"uri" cbor:"uri"`
}

// NewStatusReference returns a StatusReference, failing with ErrInvalidArgument for a negative index
// or a blank uri.
func NewStatusReference(idx int, uri string) (StatusReference, error) {
	index, err := NewStatusIndex(idx)
	if err != nil {
		return StatusReference{}, err
	}

	if strings.TrimSpace(uri) == "" {
		return StatusReference{}, fmt.Errorf("%w: status list uri must not be blank", ErrInvalidArgument)
	}

	return StatusReference{index: index, uri: uri}, nil
}

// Index returns the index into the status list.
func (r StatusReference) Index() StatusIndex {
	return r.index
}

// URI returns the uri of the Status List Token.
func (r StatusReference) URI() string {
	return r.uri
}

// MarshalJSON encodes r as {"idx": .., "uri": ..}.
func (r StatusReference) MarshalJSON() ([]byte, error) {
	idx := int64(r.index.value)

	return json.Marshal(wireReference{Index: &idx, URI: r.uri})
}

// UnmarshalJSON decodes r from {"idx": .., "uri": ..}.
func (r *StatusReference) UnmarshalJSON(data []byte) error {
	var raw wireReference

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: status reference: %w", ErrInvalidArgument, err)
	}

	return r.fromWire(raw)
}

// MarshalCBOR encodes r as a CBOR map with text keys "idx" and "uri".
func (r StatusReference) MarshalCBOR() ([]byte, error) {
	idx := int64(r.index.value)

	return encMode.Marshal(wireReference{Index: &idx, URI: r.uri})
}

// UnmarshalCBOR decodes r from a CBOR map with text keys "idx" and "uri".
func (r *StatusReference) UnmarshalCBOR(data []byte) error {
	var raw wireReference

	if err := decMode.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: status reference: %w", ErrInvalidArgument, err)
	}

	return r.fromWire(raw)
}

func (r *StatusReference) fromWire(raw wireReference) error {
	if raw.Index == nil {
		return fmt.Errorf("%w: status reference: missing %s", ErrInvalidArgument, KeyIndex)
	}

	ref, err := NewStatusReference(int(*raw.Index), raw.URI)
	if err != nil {
		return err
	}

	*r = ref

	return nil
}

// ReferenceFromJSON extracts the status reference found at status.status_list of a Referenced Token
// JSON payload, such as the claims of a JWT or SD-JWT.
func ReferenceFromJSON(payload []byte) (StatusReference, error) {
	if !gjson.ValidBytes(payload) {
		return StatusReference{}, fmt.Errorf("%w: referenced token payload is not JSON", ErrInvalidArgument)
	}

	res := gjson.GetBytes(payload, ClaimStatus+"."+ClaimStatusList)
	if !res.Exists() {
		return StatusReference{}, fmt.Errorf("%w: referenced token has no %s.%s claim",
			ErrInvalidArgument, ClaimStatus, ClaimStatusList)
	}

	if !res.IsObject() {
		return StatusReference{}, fmt.Errorf("%w: %s.%s claim is not an object",
			ErrInvalidArgument, ClaimStatus, ClaimStatusList)
	}

	var ref StatusReference

	if err := json.Unmarshal([]byte(res.Raw), &ref); err != nil {
		return StatusReference{}, err
	}

	return ref, nil
}

// ReferenceFromCBOR extracts the status reference from the status claim (65535) of a Referenced Token
// CWT payload.
func ReferenceFromCBOR(payload []byte) (StatusReference, error) {
	var claims struct {
		Status *struct {
			StatusList *StatusReference `cbor:"status_list"`
		} `cbor:"65535,keyasint"`
	}

	if err := decMode.Unmarshal(payload, &claims); err != nil {
		return StatusReference{}, fmt.Errorf("%w: referenced token payload: %w", ErrInvalidArgument, err)
	}

	if claims.Status == nil || claims.Status.StatusList == nil {
		return StatusReference{}, fmt.Errorf("%w: referenced token has no %s claim", ErrInvalidArgument,
			ClaimStatusList)
	}

	return *claims.Status.StatusList, nil
}

// TimeToLive is the strictly positive duration for which a Status List Token may be cached.
type TimeToLive struct {
	d time.Duration
}

// NewTimeToLive returns a TimeToLive, failing with ErrInvalidArgument unless d is positive.
func NewTimeToLive(d time.Duration) (TimeToLive, error) {
	if d <= 0 {
		return TimeToLive{}, fmt.Errorf("%w: time to live must be positive, got %s", ErrInvalidArgument, d)
	}

	return TimeToLive{d: d}, nil
}

// Duration returns the time to live.
func (t TimeToLive) Duration() time.Duration {
	return t.d
}
