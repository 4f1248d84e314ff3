// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/escrow/mocks"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/storage"
)

func TestTicketsPaging(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	p := defaultParameters()
	p.TicketValue = 0
	p.MaxTickets = 150
	id := f.openRaffle(p)

	require.Nil(t, f.engine.BuyTicket(alice, id, 120, 0))
	require.Nil(t, f.engine.BuyTicket(bob, id, 5, 0))

	page, err := f.engine.Tickets(id, 0, 0)
	require.Nil(t, err)
	assert.Equal(t, repeat(alice, 10), page, "default page")

	page, err = f.engine.Tickets(id, 0, 1000)
	require.Nil(t, err)
	assert.Equal(t, 100, len(page), "page not clamped")

	page, err = f.engine.Tickets(id, 118, 100)
	require.Nil(t, err)
	assert.Equal(t, append(repeat(alice, 2), repeat(bob, 5)...), page, "last page")

	page, err = f.engine.Tickets(id, 125, 10)
	require.Nil(t, err)
	assert.Equal(t, 0, len(page), "page past the end")

	_, err = f.engine.Tickets(account.Identity{0xff}, 0, 10)
	assert.Equal(t, fault.RaffleNotFound, err, "missing raffle")
}

func TestQueriesOfMissingRecords(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	missing := account.Identity{0xff}

	_, err := f.engine.Raffle(missing)
	assert.Equal(t, fault.RaffleNotFound, err, "raffle")
	_, err = f.engine.Raffles(missing)
	assert.Equal(t, fault.PoolNotFound, err, "raffles")
	_, err = f.engine.Spots(missing)
	assert.Equal(t, fault.RaffleNotFound, err, "spots")
	_, err = f.engine.TicketCount(missing)
	assert.Equal(t, fault.RaffleNotFound, err, "ticket count")
	_, err = f.engine.BuyerCount(missing, alice)
	assert.Equal(t, fault.RaffleNotFound, err, "buyer count")

	raffles, err := f.engine.Raffles(f.pool)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(raffles), "raffles of new pool")
}

func TestElapsed(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	short := f.createRaffle(defaultParameters())
	long := f.createRaffle(defaultParameters())
	f.createRaffle(defaultParameters()) // stays pending

	require.Nil(t, f.engine.OpenRaffle(owner, short, 100))
	require.Nil(t, f.engine.OpenRaffle(owner, long, 1000))

	f.at(100)
	elapsed, err := f.engine.Elapsed()
	require.Nil(t, err)
	assert.Equal(t, 0, len(elapsed), "window not yet over")

	f.at(101)
	elapsed, err = f.engine.Elapsed()
	require.Nil(t, err)
	require.Equal(t, 1, len(elapsed), "one raffle elapsed")
	assert.Equal(t, short, elapsed[0].Id, "wrong raffle")

	// settled raffles are no longer reported
	_, err = f.engine.SettleRaffle(owner, short)
	require.Nil(t, err)
	f.at(5000)
	elapsed, err = f.engine.Elapsed()
	require.Nil(t, err)
	require.Equal(t, 1, len(elapsed), "after settlement")
	assert.Equal(t, long, elapsed[0].Id, "wrong raffle")
}

func TestBalanceAndDeposit(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	f.deposit(mint, alice, 7)
	n, err := f.engine.Balance(mint, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), n, "balance")

	assert.Equal(t, fault.InvalidIdentity, f.engine.Deposit(mint, account.Null, 1), "deposit to null")
}

func TestGatewayFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	gateway := mocks.NewMockGateway(ctl)
	f := newFixtureWithGateway(t, gateway)
	defer f.close()

	id := f.openRaffle(defaultParameters())

	gateway.EXPECT().
		Transfer(gomock.Any(), mint, alice, f.pool, uint64(10)).
		Return(fault.TransferFailed).
		Times(1)

	before := f.snapshot()
	err := f.engine.BuyTicket(alice, id, 2, 0)
	assert.Equal(t, fault.TransferFailed, err, "gateway error not returned")
	assert.Equal(t, before, f.snapshot(), "failed transfer left a ticket")

	gateway.EXPECT().
		Transfer(gomock.Any(), mint, alice, f.pool, uint64(15)).
		Return(nil).
		Times(1)

	require.Nil(t, f.engine.BuyTicket(alice, id, 3, 0))
	n, _ := f.engine.TicketCount(id)
	assert.Equal(t, uint32(3), n, "ticket count")

	// the side payment is a second transfer only while the flag is set
	require.Nil(t, f.engine.SetPause(manager, f.pool, true))
	gomock.InOrder(
		gateway.EXPECT().Transfer(gomock.Any(), mint, bob, f.pool, uint64(5)).Return(nil),
		gateway.EXPECT().Transfer(gomock.Any(), account.Null, bob, f.pool, uint64(9)).Return(nil),
	)
	require.Nil(t, f.engine.BuyTicket(bob, id, 1, 9))

	// mock gateway keeps no balances
	_, err = f.engine.Balance(mint, alice)
	assert.Equal(t, fault.NotAvailable, err, "balance from mock")
	assert.Equal(t, fault.NotAvailable, f.engine.Deposit(mint, alice, 1), "deposit to mock")
}

func TestPanicReleasesTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	gateway := mocks.NewMockGateway(ctl)
	f := newFixtureWithGateway(t, gateway)
	defer f.close()

	id := f.openRaffle(defaultParameters())

	gateway.EXPECT().
		Transfer(gomock.Any(), mint, alice, f.pool, uint64(10)).
		Do(func(trx storage.Transaction, asset account.Identity, from account.Identity, to account.Identity, amount uint64) {
			panic("gateway failure")
		}).
		Times(1)

	before := f.snapshot()
	assert.Panics(t, func() {
		f.engine.BuyTicket(alice, id, 2, 0)
	}, "panic not passed on")
	assert.Equal(t, before, f.snapshot(), "panicked purchase left a ticket")

	gateway.EXPECT().
		Transfer(gomock.Any(), mint, alice, f.pool, uint64(10)).
		Return(nil).
		Times(1)

	// a held transaction would block here
	require.Nil(t, f.engine.BuyTicket(alice, id, 2, 0), "engine unusable after panic")
	n, _ := f.engine.TicketCount(id)
	assert.Equal(t, uint32(2), n, "ticket count")
}
