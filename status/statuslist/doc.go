/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package statuslist implements the data model of the OAuth Token Status List: status values, bit-packed
// status lists, Status List Token claims and their JSON and CBOR representations.
package statuslist
