/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status implements an OAuth Token Status List client.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trustbloc/statuslist-go/internal/log"
	"github.com/trustbloc/statuslist-go/status/statuslist"
	"github.com/trustbloc/statuslist-go/util/zlib"
)

var (
	// ErrRevoked is the Client.VerifyStatus error when the Referenced Token is invalid.
	ErrRevoked = errors.New("revoked")
	// ErrSuspended is the Client.VerifyStatus error when the Referenced Token is suspended.
	ErrSuspended = errors.New("suspended")
	// ErrUnrecognizedStatus is the Client.VerifyStatus error for application specific and reserved statuses.
	ErrUnrecognizedStatus = errors.New("unrecognized status")
)

// Client reads the status of Referenced Tokens from Status List Tokens.
type Client struct {
	getter       TokenGetter
	decompressor statuslist.Decompressor
}

// ClientOpt configures a Client.
type ClientOpt func(c *Client)

// WithDecompressor sets the decompressor of status lists. Defaults to ZLIB, a nil decompressor keeps the default.
func WithDecompressor(decompressor statuslist.Decompressor) ClientOpt {
	return func(c *Client) {
		if decompressor != nil {
			c.decompressor = decompressor
		}
	}
}

// NewClient returns a Client reading status lists obtained with getter. A nil getter fails with
// statuslist.ErrInvalidArgument.
func NewClient(getter TokenGetter, opts ...ClientOpt) (*Client, error) {
	if getter == nil {
		return nil, fmt.Errorf("%w: token getter is required", statuslist.ErrInvalidArgument)
	}

	c := &Client{
		getter:       getter,
		decompressor: zlib.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Status returns the status of the Referenced Token ref points at, as of at. When at is nil the current
// status list is used.
//
// Requesting a historical status list discloses at to the status list provider, prefer CurrentStatus
// for routine checks.
func (c *Client) Status(
	ctx context.Context,
	ref statuslist.StatusReference,
	at *time.Time,
) (statuslist.Status, error) {
	claims, err := c.getter.GetClaims(ctx, ref.URI(), at)
	if err != nil {
		return 0, err
	}

	s, err := claims.StatusList.Status(ctx, c.decompressor, ref.Index())
	if err != nil {
		if ctxErr := statuslist.ContextError(ctx, err); ctxErr != nil {
			return 0, ctxErr
		}

		return 0, fmt.Errorf("status list %s: %w", ref.URI(), err)
	}

	log.Logger().WithFields(logrus.Fields{
		"uri": ref.URI(),
		"idx": ref.Index().Value(),
	}).Debugf("Resolved status %s", s)

	return s, nil
}

// CurrentStatus returns the status of the Referenced Token ref points at, using the current status list.
func (c *Client) CurrentStatus(ctx context.Context, ref statuslist.StatusReference) (statuslist.Status, error) {
	return c.Status(ctx, ref, nil)
}

// VerifyStatus verifies the current status of the Referenced Token ref points at, returning:
// - nil if the status is valid
// - ErrRevoked if the status is invalid
// - ErrSuspended if the status is suspended
// - ErrUnrecognizedStatus for any other status, and a different error if the status could not be read.
func (c *Client) VerifyStatus(ctx context.Context, ref statuslist.StatusReference) error {
	s, err := c.CurrentStatus(ctx, ref)
	if err != nil {
		return err
	}

	switch s.Kind() {
	case statuslist.KindValid:
		return nil
	case statuslist.KindInvalid:
		return ErrRevoked
	case statuslist.KindSuspended:
		return ErrSuspended
	default:
		return fmt.Errorf("%w: %s", ErrUnrecognizedStatus, s)
	}
}
