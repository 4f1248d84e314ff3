// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// domain separation for derived identities
const (
	poolDomain   = "pool"
	raffleDomain = "raffle"
	ledgerDomain = "ledger"
	spotsDomain  = "spots"
)

// Derive - SHA3-256 of the concatenated parts
func Derive(parts ...[]byte) Identity {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	id := Identity{}
	copy(id[:], h.Sum(nil))
	return id
}

// PoolIdentity - pool address from its owner and uniqueness seed
func PoolIdentity(owner Identity, seed Identity) Identity {
	return Derive([]byte(poolDomain), owner[:], seed[:])
}

// RaffleIdentity - address of the n'th raffle created in a pool
func RaffleIdentity(pool Identity, sequence uint64) Identity {
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, sequence)
	return Derive([]byte(raffleDomain), pool[:], n)
}

// LedgerIdentity - address of the ticket ledger buffer of a raffle
func LedgerIdentity(raffle Identity) Identity {
	return Derive([]byte(ledgerDomain), raffle[:])
}

// SpotsIdentity - address of the spot store buffer of a raffle
func SpotsIdentity(raffle Identity) Identity {
	return Derive([]byte(spotsDomain), raffle[:])
}
