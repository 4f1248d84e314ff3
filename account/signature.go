// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/bitmark-inc/raffled/fault"
)

// Signature - the type for a signature
type Signature []byte

// convert a binary signature to hex string for use by the fmt package (for %s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	b := make([]byte, size)
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}

// CheckSignature - verify an ed25519 signature made by the identity's key
func (id Identity) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(id[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Sign - sign a message with a private key
func Sign(privateKey ed25519.PrivateKey, message []byte) Signature {
	return ed25519.Sign(privateKey, message)
}

// IdentityOfKey - the identity corresponding to a private key
func IdentityOfKey(privateKey ed25519.PrivateKey) Identity {
	id := Identity{}
	copy(id[:], privateKey.Public().(ed25519.PublicKey))
	return id
}
