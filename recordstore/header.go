// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordstore

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/bitmark-inc/raffled/account"
)

// byte sizes for the header fields
const (
	TagSize   = 8
	OwnerSize = account.IdentitySize
	CountSize = 4
)

// offsets of the header fields
const (
	tagOffset   = 0
	ownerOffset = tagOffset + TagSize
	countOffset = ownerOffset + OwnerSize

	// start of the record array
	HeaderSize = countOffset + CountSize
)

// Tag - identifies the schema of the records in a buffer
type Tag [TagSize]byte

// TagFor - the first 8 bytes of SHA-256("account:" ++ name)
//
// this is the account discriminator used by the on-chain program, so
// buffers written here are byte compatible with it
func TagFor(name string) Tag {
	digest := sha256.Sum256([]byte("account:" + name))
	tag := Tag{}
	copy(tag[:], digest[:TagSize])
	return tag
}

// Header - the unpacked buffer header
type Header struct {
	Tag   Tag
	Owner account.Identity
	Count uint32
}

// pack the header into the front of a buffer that is at least HeaderSize long
func (h Header) pack(buffer []byte) {
	copy(buffer[tagOffset:ownerOffset], h.Tag[:])
	copy(buffer[ownerOffset:countOffset], h.Owner[:])
	binary.LittleEndian.PutUint32(buffer[countOffset:HeaderSize], h.Count)
}

// unpack the header from the front of a buffer that is at least HeaderSize long
func unpackHeader(buffer []byte) Header {
	h := Header{}
	copy(h.Tag[:], buffer[tagOffset:ownerOffset])
	copy(h.Owner[:], buffer[ownerOffset:countOffset])
	h.Count = binary.LittleEndian.Uint32(buffer[countOffset:HeaderSize])
	return h
}
