/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

import "errors"

var (
	// ErrInvalidArgument is returned for malformed construction input: empty uri, negative index,
	// non-positive time to live, unsupported bits or a status value wider than the bits per status.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFetchFailed is returned when the status list token could not be retrieved.
	ErrFetchFailed = errors.New("status list token fetch failed")
	// ErrInvalidSignature is returned when the signature of the status list token is rejected.
	ErrInvalidSignature = errors.New("invalid status list token signature")
	// ErrMalformedToken is returned when the token envelope or its claims cannot be decoded.
	ErrMalformedToken = errors.New("malformed status list token")
	// ErrWrongMediaType is returned when the declared token type is not the status list media type.
	ErrWrongMediaType = errors.New("wrong status list token media type")
	// ErrSubjectMismatch is returned when the token subject is not the uri the token was fetched from.
	ErrSubjectMismatch = errors.New("status list token subject mismatch")
	// ErrNotYetValid is returned when the token is issued after the validation time.
	ErrNotYetValid = errors.New("status list token not yet valid")
	// ErrExpired is returned when the token is expired at the validation time.
	ErrExpired = errors.New("status list token expired")
	// ErrDecode is returned when the encoded status list is not valid base64url.
	ErrDecode = errors.New("status list decode failed")
	// ErrDecompression is returned when the compressed status list cannot be inflated.
	ErrDecompression = errors.New("status list decompression failed")
	// ErrOutOfRange is returned when the index is beyond the decompressed status list.
	ErrOutOfRange = errors.New("status index out of range")
)
