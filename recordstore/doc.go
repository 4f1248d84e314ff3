// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package recordstore - fixed capacity record list in a flat buffer
//
// A store is a byte buffer allocated once at its final size.  It
// starts with a 44 byte header followed by an array of fixed size
// records addressed by position:
//
//   [0,8)    type tag identifying the record schema
//   [8,40)   identifier of the owning raffle
//   [40,44)  live record count (little endian uint32)
//   [44,...) records, record i at 44 + i*record_size
//
// The type tag is written once when the buffer is initialised and is
// not checked by Read or Write; the owner of the buffer is expected
// to have matched the buffer to its schema when it was loaded.
//
// Records are only ever read or written whole.  To change one field
// read the record, modify it and write the complete record back.
package recordstore
