// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/raffled/fault"
)

// IdentitySize - bytes in an identity
const IdentitySize = 32

// Identity - a 32 byte public key or object identifier
type Identity [IdentitySize]byte

// Null - the all zero identity, used for "no asset" and the native currency
var Null Identity

// IdentityFromBytes - copy a byte slice into an identity
func IdentityFromBytes(buffer []byte) (Identity, error) {
	id := Identity{}
	if IdentitySize != len(buffer) {
		return id, fault.InvalidIdentity
	}
	copy(id[:], buffer)
	return id, nil
}

// IdentityFromBase58 - decode the text form of an identity
func IdentityFromBase58(s string) (Identity, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Identity{}, fault.InvalidIdentity
	}
	return IdentityFromBytes(buffer)
}

// IsNull - true for the all zero identity
func (id Identity) IsNull() bool {
	return id == Null
}

// Bytes - copy of the identity as a slice
func (id Identity) Bytes() []byte {
	b := make([]byte, IdentitySize)
	copy(b, id[:])
	return b
}

// Compare - byte order comparison
func (id Identity) Compare(other Identity) int {
	return bytes.Compare(id[:], other[:])
}

// String - base58 text form for the fmt package (%s)
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// GoString - hex form for the fmt package (%#v)
func (id Identity) GoString() string {
	return "<identity:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert identity to base58 text
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 text to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	i, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = i
	return nil
}
