// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spotstore

import (
	"encoding/binary"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
)

// byte sizes for the spot fields
const (
	AssetSize   = account.IdentitySize
	WinnerSize  = 4
	ClaimedSize = 1
)

// offsets of the spot fields
const (
	assetOffset   = 0
	winnerOffset  = assetOffset + AssetSize
	claimedOffset = winnerOffset + WinnerSize

	// SpotSize - total bytes in a packed spot
	SpotSize = claimedOffset + ClaimedSize
)

// Spot - one prize slot
//
// Asset is null when the pool does not hold the prize; WinnerTicket
// only has meaning once the raffle is settled
type Spot struct {
	Asset        account.Identity `json:"asset"`
	WinnerTicket uint32           `json:"winnerTicket"`
	Claimed      bool             `json:"claimed"`
}

// Pack - the 37 byte record form
func (spot Spot) Pack() []byte {
	record := make([]byte, SpotSize)
	copy(record[assetOffset:winnerOffset], spot.Asset[:])
	binary.LittleEndian.PutUint32(record[winnerOffset:claimedOffset], spot.WinnerTicket)
	if spot.Claimed {
		record[claimedOffset] = 1
	}
	return record
}

// Unpack - decode a 37 byte record
func Unpack(record []byte) (Spot, error) {
	spot := Spot{}
	if SpotSize != len(record) {
		return spot, fault.InvalidRecordSize
	}
	copy(spot.Asset[:], record[assetOffset:winnerOffset])
	spot.WinnerTicket = binary.LittleEndian.Uint32(record[winnerOffset:claimedOffset])
	spot.Claimed = 0 != record[claimedOffset]
	return spot, nil
}
