/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

// Token Status List (https://datatracker.ietf.org/doc/draft-ietf-oauth-status-list/) names and values.
const (
	// Version is the implemented revision of draft-ietf-oauth-status-list.
	Version = "draft-10"

	// ClaimStatus is the claim of a Referenced Token holding the status mechanisms.
	ClaimStatus = "status"
	// ClaimStatusList is the claim holding a status list, or a reference into one.
	ClaimStatusList = "status_list"
	// KeyIndex is the status reference index member.
	KeyIndex = "idx"
	// KeyURI is the status reference uri member.
	KeyURI = "uri"
	// KeyBits is the status list bits member.
	KeyBits = "bits"
	// KeyList is the status list compressed list member.
	KeyList = "lst"
	// KeyAggregationURI is the status list aggregation uri member.
	KeyAggregationURI = "aggregation_uri"
	// ClaimTimeToLive is the status list token time to live claim.
	ClaimTimeToLive = "ttl"
	// QueryParamTime is the query parameter requesting a historical status list.
	QueryParamTime = "time"

	// ClaimSubject is the JWT subject claim (RFC 7519).
	ClaimSubject = "sub"
	// ClaimIssuedAt is the JWT issued at claim (RFC 7519).
	ClaimIssuedAt = "iat"
	// ClaimExpirationTime is the JWT expiration time claim (RFC 7519).
	ClaimExpirationTime = "exp"
)

// CWT claim keys (RFC 8392 and Token Status List).
const (
	CWTClaimSubject        = 2
	CWTClaimExpirationTime = 4
	CWTClaimIssuedAt       = 6
	CWTClaimStatusList     = 65533
	CWTClaimTimeToLive     = 65534
	CWTClaimStatus         = 65535
)

// Media types of status list tokens.
const (
	MediaSubtypeJWT = "statuslist+jwt"
	MediaTypeJWT    = "application/" + MediaSubtypeJWT
	MediaSubtypeCWT = "statuslist+cwt"
	MediaTypeCWT    = "application/" + MediaSubtypeCWT
)
