/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package resolver retrieves Status List Tokens over HTTP.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/trustbloc/statuslist-go/internal/log"
	"github.com/trustbloc/statuslist-go/status/statuslist"
)

const (
	// DefaultMaxBodySize is the default limit of a Status List Token response body.
	DefaultMaxBodySize = 16 << 20
	// DefaultRetryDelay is the default delay before the first retry. Later retries back off.
	DefaultRetryDelay = 500 * time.Millisecond
)

// HTTPRequestDoer executes HTTP requests, *http.Client implements it.
type HTTPRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPStatusError is returned for a non-2xx response.
type HTTPStatusError struct {
	URI        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("fetching status list token from '%s' failed: HTTP status %d", e.URI, e.StatusCode)
}

// Resolver is a TokenFetcher issuing HTTP GET requests.
type Resolver struct {
	client      HTTPRequestDoer
	retries     uint
	retryDelay  time.Duration
	timeParam   string
	maxBodySize int64
}

// Opt configures a Resolver.
type Opt func(r *Resolver)

// WithHTTPClient sets the HTTP client. Defaults to http.DefaultClient.
func WithHTTPClient(client HTTPRequestDoer) Opt {
	return func(r *Resolver) {
		r.client = client
	}
}

// WithRetry retries a failed request up to retries times, waiting delay before the first retry and backing off
// exponentially afterwards. Only transport failures and 5xx or 429 responses are retried. Defaults to no retry.
func WithRetry(retries uint, delay time.Duration) Opt {
	return func(r *Resolver) {
		r.retries = retries
		r.retryDelay = delay
	}
}

// WithTimeParameter sets the name of the query parameter requesting a historical status list.
// Defaults to "time".
func WithTimeParameter(name string) Opt {
	return func(r *Resolver) {
		r.timeParam = name
	}
}

// WithMaxBodySize sets the limit of a response body in bytes.
func WithMaxBodySize(n int64) Opt {
	return func(r *Resolver) {
		r.maxBodySize = n
	}
}

// New returns a Resolver.
func New(opts ...Opt) *Resolver {
	r := &Resolver{
		client:      http.DefaultClient,
		retryDelay:  DefaultRetryDelay,
		timeParam:   statuslist.QueryParamTime,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FetchToken retrieves the Status List Token at uri, accepting the media type of format. When at is not nil
// the time query parameter is set to its epoch seconds. Failures other than cancellation are reported as
// statuslist.ErrFetchFailed.
func (r *Resolver) FetchToken(
	ctx context.Context,
	uri string,
	format statuslist.Format,
	at *time.Time,
) ([]byte, error) {
	target, err := r.requestURL(uri, at)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", statuslist.ErrFetchFailed, err)
	}

	var body []byte

	err = retry.Do(
		func() error {
			b, fetchErr := r.fetch(ctx, target, format)
			if fetchErr != nil {
				return fetchErr
			}

			body = b

			return nil
		},
		retry.Attempts(r.retries+1),
		retry.Delay(r.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Logger().WithError(err).WithField("uri", uri).
				Debugf("Fetching status list token failed, retrying (attempt %d)", n+1)
		}),
	)
	if err != nil {
		if ctxErr := statuslist.ContextError(ctx, err); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("%w: %w", statuslist.ErrFetchFailed, err)
	}

	return body, nil
}

func (r *Resolver) requestURL(uri string, at *time.Time) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse status list uri: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported status list uri scheme '%s'", u.Scheme)
	}

	if at != nil {
		q := u.Query()
		q.Set(r.timeParam, strconv.FormatInt(at.Unix(), 10))
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func (r *Resolver) fetch(ctx context.Context, target string, format statuslist.Format) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	req.Header.Set("Accept", format.MediaType())

	log.Logger().WithField("uri", target).Debug("Fetching status list token")

	res, err := r.client.Do(req)
	if err != nil {
		if ctxErr := statuslist.ContextError(ctx, err); ctxErr != nil {
			return nil, retry.Unrecoverable(ctxErr)
		}

		return nil, err
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			// log, don't fail
			log.Logger().WithError(err).WithField("uri", target).Debug("Failed to close response body")
		}
	}()

	log.Logger().WithField("uri", target).WithField("status", res.StatusCode).Debug("Fetched status list token")

	if res.StatusCode < http.StatusOK || res.StatusCode > 299 {
		statusErr := &HTTPStatusError{URI: target, StatusCode: res.StatusCode}

		if res.StatusCode >= http.StatusInternalServerError || res.StatusCode == http.StatusTooManyRequests {
			return nil, statusErr
		}

		return nil, retry.Unrecoverable(statusErr)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, r.maxBodySize+1))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("reading status list token from '%s' failed", target), err)
	}

	if int64(len(body)) > r.maxBodySize {
		return nil, retry.Unrecoverable(fmt.Errorf("status list token from '%s' exceeds %d bytes",
			target, r.maxBodySize))
	}

	return body, nil
}
