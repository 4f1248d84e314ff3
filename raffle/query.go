// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/constants"
	"github.com/bitmark-inc/raffled/escrow"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/ledger"
	"github.com/bitmark-inc/raffled/spotstore"
	"github.com/bitmark-inc/raffled/storage"
)

// queries read committed data only and need no authority

// Pool - fetch a pool
func (e *Engine) Pool(id account.Identity) (*Pool, error) {
	buffer := e.store.Pool.Pools.Get(id[:])
	if nil == buffer {
		return nil, fault.PoolNotFound
	}
	return unpackPool(buffer)
}

// Raffle - fetch a raffle
func (e *Engine) Raffle(id account.Identity) (*Raffle, error) {
	buffer := e.store.Pool.Raffles.Get(id[:])
	if nil == buffer {
		return nil, fault.RaffleNotFound
	}
	return unpackRaffle(buffer)
}

// Raffles - every raffle of a pool in creation order
func (e *Engine) Raffles(pool account.Identity) ([]*Raffle, error) {
	if !e.store.Pool.Pools.Has(pool[:]) {
		return nil, fault.PoolNotFound
	}

	ids := make([]account.Identity, 0, 10)
	err := e.store.Pool.RaffleIndex.NewPrefixCursor(pool[:]).Map(func(key []byte, value []byte) error {
		id, err := account.IdentityFromBytes(value)
		if nil != err {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	if nil != err {
		return nil, err
	}

	raffles := make([]*Raffle, 0, len(ids))
	for _, id := range ids {
		r, err := e.Raffle(id)
		if nil != err {
			return nil, err
		}
		raffles = append(raffles, r)
	}
	return raffles, nil
}

// Elapsed - open raffles whose sale window ended before now
func (e *Engine) Elapsed() ([]*Raffle, error) {
	now := e.timestamp()
	raffles := make([]*Raffle, 0, 10)
	err := e.store.Pool.Raffles.NewFetchCursor().Map(func(key []byte, value []byte) error {
		r, err := unpackRaffle(value)
		if nil != err {
			return err
		}
		if r.Elapsed(now) {
			raffles = append(raffles, r)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return raffles, nil
}

// committed buffers of a raffle, checked against the raffle
func (e *Engine) committedLedger(r *Raffle) (*ledger.Ledger, error) {
	buffer := e.store.Pool.Ledgers.Get(r.Ledger[:])
	if nil == buffer {
		return nil, fault.StoreNotFound
	}
	l, err := ledger.Load(buffer)
	if nil != err {
		return nil, err
	}
	if ledger.Tag != l.Tag() || r.Id != l.Raffle() {
		return nil, fault.WrongStore
	}
	return l, nil
}

func (e *Engine) committedSpots(r *Raffle) (*spotstore.Store, error) {
	buffer := e.store.Pool.Spots.Get(r.Spots[:])
	if nil == buffer {
		return nil, fault.StoreNotFound
	}
	s, err := spotstore.Load(buffer)
	if nil != err {
		return nil, err
	}
	if spotstore.Tag != s.Tag() || r.Id != s.Raffle() {
		return nil, fault.WrongStore
	}
	return s, nil
}

// Spots - every spot of a raffle
func (e *Engine) Spots(raffle account.Identity) ([]spotstore.Spot, error) {
	r, err := e.Raffle(raffle)
	if nil != err {
		return nil, err
	}
	s, err := e.committedSpots(r)
	if nil != err {
		return nil, err
	}
	return s.All()
}

// TicketCount - tickets sold so far
func (e *Engine) TicketCount(raffle account.Identity) (uint32, error) {
	r, err := e.Raffle(raffle)
	if nil != err {
		return 0, err
	}
	l, err := e.committedLedger(r)
	if nil != err {
		return 0, err
	}
	return l.TicketCount(), nil
}

// Tickets - buyers of tickets start, start+1, ...
//
// count is clamped to the maximum page size; a start beyond the last
// ticket gives an empty list
func (e *Engine) Tickets(raffle account.Identity, start uint32, count int) ([]account.Identity, error) {
	if count <= 0 {
		count = constants.DefaultCount
	} else if count > constants.MaximumCount {
		count = constants.MaximumCount
	}

	r, err := e.Raffle(raffle)
	if nil != err {
		return nil, err
	}
	l, err := e.committedLedger(r)
	if nil != err {
		return nil, err
	}

	buyers := make([]account.Identity, 0, count)
	for i := uint64(start); i < uint64(l.TicketCount()) && len(buyers) < count; i += 1 {
		buyer, err := l.BuyerAt(uint32(i))
		if nil != err {
			return nil, err
		}
		buyers = append(buyers, buyer)
	}
	return buyers, nil
}

// BuyerCount - tickets bought by one buyer
//
// an unregistered buyer has bought none
func (e *Engine) BuyerCount(raffle account.Identity, buyer account.Identity) (uint64, error) {
	if !e.store.Pool.Raffles.Has(raffle[:]) {
		return 0, fault.RaffleNotFound
	}
	n, _ := e.store.Pool.Buyers.GetN(buyerKey(raffle, buyer))
	return n, nil
}

// Balance - committed escrow balance
//
// only available when the gateway keeps its balances locally
func (e *Engine) Balance(asset account.Identity, holder account.Identity) (uint64, error) {
	book, ok := e.gateway.(escrow.Balances)
	if !ok {
		return 0, fault.NotAvailable
	}
	return book.Balance(asset, holder), nil
}

// Deposit - create balance out of nothing
//
// for test networks; only available when the gateway supports it
func (e *Engine) Deposit(asset account.Identity, holder account.Identity, amount uint64) error {
	faucet, ok := e.gateway.(escrow.Faucet)
	if !ok {
		return fault.NotAvailable
	}
	err := e.run("deposit", func(trx storage.Transaction) error {
		if holder.IsNull() {
			return fault.InvalidIdentity
		}
		return faucet.Deposit(trx, asset, holder, amount)
	})
	if nil == err {
		e.log.Infof("deposit: %d of: %s  to: %s", amount, asset, holder)
	}
	return err
}
