// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - fixed size identities
//
// Every party and object known to the raffle system is a 32 byte
// identity: wallets (ed25519 public keys), currency mints, prize
// assets, pools, raffles and their record stores.  The text form
// is plain base58 so that identities can be exchanged with wallets.
package account
