// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/spotstore"
)

func TestFundAndWithdraw(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	assetX := nfts[0]
	f.deposit(assetX, owner, 1)
	id := f.createRaffle(defaultParameters())

	require.Nil(t, f.engine.FundSpot(owner, id, 0, assetX), "fund")
	assert.Equal(t, uint64(0), f.balance(assetX, owner), "asset still with owner")
	assert.Equal(t, uint64(1), f.balance(assetX, f.pool), "asset not in custody")

	spots, _ := f.engine.Spots(id)
	assert.Equal(t, spotstore.Spot{Asset: assetX}, spots[0], "spot not set")

	require.Nil(t, f.engine.WithdrawSpot(owner, id, 0, assetX), "withdraw")
	assert.Equal(t, uint64(1), f.balance(assetX, owner), "asset not returned")
	assert.Equal(t, uint64(0), f.balance(assetX, f.pool), "asset still in custody")

	spots, _ = f.engine.Spots(id)
	assert.Equal(t, spotstore.Spot{}, spots[0], "spot not cleared")

	err := f.engine.WithdrawSpot(owner, id, 0, assetX)
	assert.Equal(t, fault.NotMatch, err, "withdrew an empty spot")
}

func TestFundRejects(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	f.deposit(nfts[0], owner, 1)
	f.deposit(nfts[1], bob, 1)
	id := f.createRaffle(defaultParameters())

	assert.Equal(t, fault.InvalidAuthority, f.engine.FundSpot(bob, id, 0, nfts[1]), "buyer funded")
	assert.Equal(t, fault.IndexOutOfRange, f.engine.FundSpot(owner, id, 3, nfts[0]), "past spot count")
	assert.Equal(t, fault.InvalidIdentity, f.engine.FundSpot(owner, id, 0, account.Null), "null asset")
	assert.Equal(t, fault.TransferFailed, f.engine.FundSpot(owner, id, 0, nfts[2]), "asset not held")

	require.Nil(t, f.engine.FundSpot(owner, id, 2, nfts[0]), "last spot")

	assert.Equal(t, fault.NotMatch, f.engine.WithdrawSpot(owner, id, 2, nfts[1]), "wrong asset")
	assert.Equal(t, fault.NotMatch, f.engine.WithdrawSpot(owner, id, 0, account.Null), "null asset on empty spot")
	assert.Equal(t, fault.IndexOutOfRange, f.engine.WithdrawSpot(owner, id, 3, nfts[0]), "past spot count")
	assert.Equal(t, fault.InvalidAuthority, f.engine.WithdrawSpot(bob, id, 2, nfts[0]), "buyer withdrew")
}

func TestClaim(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	for _, nft := range nfts {
		f.deposit(nft, owner, 1)
	}
	f.deposit(mint, alice, 100)
	f.deposit(mint, bob, 100)

	id := f.createRaffle(defaultParameters())
	for i, nft := range nfts {
		require.Nil(t, f.engine.FundSpot(owner, id, uint32(i), nft))
	}
	require.Nil(t, f.engine.OpenRaffle(owner, id, 3600))
	require.Nil(t, f.engine.BuyTicket(alice, id, 4, 0))
	require.Nil(t, f.engine.BuyTicket(bob, id, 6, 0))

	f.at(3600)
	_, err := f.engine.SettleRaffle(owner, id)
	require.Nil(t, err)

	spots, _ := f.engine.Spots(id)
	for i, spot := range spots {
		winner := bob
		if spot.WinnerTicket < 4 {
			winner = alice
		}
		loser := alice
		if winner == alice {
			loser = bob
		}

		assert.Equal(t, fault.NotMatch, f.engine.Claim(loser, id, uint32(i)), "spot %d: loser claimed", i)
		assert.Equal(t, fault.NotMatch, f.engine.Claim(carol, id, uint32(i)), "spot %d: outsider claimed", i)

		require.Nil(t, f.engine.Claim(winner, id, uint32(i)), "spot %d: winner claim", i)
		assert.Equal(t, uint64(1), f.balance(nfts[i], winner), "spot %d: prize not paid", i)
		assert.Equal(t, uint64(0), f.balance(nfts[i], f.pool), "spot %d: prize still in custody", i)

		assert.Equal(t, fault.AlreadyClaimed, f.engine.Claim(winner, id, uint32(i)), "spot %d: claimed twice", i)
	}

	spots, _ = f.engine.Spots(id)
	for i, spot := range spots {
		assert.True(t, spot.Claimed, "spot %d: flag not set", i)
		assert.Equal(t, nfts[i], spot.Asset, "spot %d: asset record cleared", i)
	}

	assert.Equal(t, fault.IndexOutOfRange, f.engine.Claim(alice, id, 3), "past spot count")
}

func TestClaimUnfundedSpot(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	f.deposit(mint, alice, 100)
	p := defaultParameters()
	p.SpotCount = 1
	id := f.openRaffle(p)
	require.Nil(t, f.engine.BuyTicket(alice, id, 1, 0))
	_, err := f.engine.SettleRaffle(owner, id)
	require.Nil(t, err)

	assert.Equal(t, fault.NotMatch, f.engine.Claim(alice, id, 0), "claimed an empty spot")
}

func TestClaimWinnerBeyondLedger(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	f.deposit(nfts[0], owner, 1)
	f.deposit(mint, alice, 100)
	p := defaultParameters()
	p.SpotCount = 1
	id := f.createRaffle(p)
	require.Nil(t, f.engine.FundSpot(owner, id, 0, nfts[0]))
	require.Nil(t, f.engine.OpenRaffle(owner, id, 3600))
	require.Nil(t, f.engine.BuyTicket(alice, id, 2, 0))

	// the override is not checked against the ledger
	require.Nil(t, f.engine.SettleRaffleWithFixedCount(manager, id, 5))
	_, err := f.engine.SettleRaffle(owner, id)
	require.Nil(t, err)

	assert.Equal(t, fault.IndexOutOfRange, f.engine.Claim(alice, id, 0), "ticket past ledger")
}
