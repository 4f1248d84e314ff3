// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. sequence = big endian uint64 (8 bytes)
// 4. ids      = 32 byte identities (pool, raffle, ledger, spots, asset, holder)
//
// Pools:
//
//   P ++ pool id               - pool authority
//                                data: CBOR record
//   I ++ pool id ++ sequence   - raffles created by a pool, in creation order
//                                data: raffle id
//
// Raffles:
//
//   R ++ raffle id             - raffle instance
//                                data: CBOR record
//   L ++ ledger id             - ticket ledger buffer
//                                data: tag ++ raffle id ++ count ++ buyers
//   S ++ spots id              - spot store buffer
//                                data: tag ++ raffle id ++ count ++ spots
//   U ++ raffle id ++ buyer    - tickets bought by one buyer
//                                data: count (big endian uint64)
//
// Escrow:
//
//   B ++ asset ++ holder       - balance of one asset held by one account
//                                data: amount (big endian uint64)
//
// Testing:
//   Z ++ key                   - testing data
package storage
