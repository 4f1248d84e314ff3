// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - movement of custodied assets between accounts
//
// The raffle engine only asks for transfers; the Book below keeps
// balances in the same database so that a transfer commits or aborts
// together with the operation that requested it.
package escrow

import (
	"encoding/binary"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/storage"
)

//go:generate mockgen -source=escrow.go -destination=mocks/escrow.go -package=mocks

// Gateway - moves assets on command
//
// asset is the mint or NFT identity, the null identity is the native
// currency; an error means nothing was moved
type Gateway interface {
	Transfer(trx storage.Transaction, asset account.Identity, from account.Identity, to account.Identity, amount uint64) error
}

// Balances - gateways that can report committed balances
type Balances interface {
	Balance(asset account.Identity, holder account.Identity) uint64
}

// Faucet - gateways that can create balances
type Faucet interface {
	Deposit(trx storage.Transaction, asset account.Identity, holder account.Identity, amount uint64) error
}

// Book - balance book held in the Balances pool
type Book struct {
	pool *storage.PoolHandle
}

// NewBook - a book over a store's balance pool
func NewBook(store *storage.Store) *Book {
	return &Book{
		pool: store.Pool.Balances,
	}
}

// asset ++ holder
func balanceKey(asset account.Identity, holder account.Identity) []byte {
	key := make([]byte, 0, 2*account.IdentitySize)
	key = append(key, asset[:]...)
	return append(key, holder[:]...)
}

// Balance - committed balance of one asset for one holder
func (b *Book) Balance(asset account.Identity, holder account.Identity) uint64 {
	n, _ := b.pool.GetN(balanceKey(asset, holder))
	return n
}

// Transfer - move amount of an asset from one holder to another
//
// a zero amount is accepted and changes nothing
func (b *Book) Transfer(trx storage.Transaction, asset account.Identity, from account.Identity, to account.Identity, amount uint64) error {
	if 0 == amount {
		return nil
	}

	fromKey := balanceKey(asset, from)
	fromBalance, _ := trx.GetN(b.pool, fromKey)
	if fromBalance < amount {
		if asset.IsNull() {
			return fault.InsufficientFunds
		}
		return fault.TransferFailed
	}

	if from == to {
		return nil
	}

	toKey := balanceKey(asset, to)
	toBalance, _ := trx.GetN(b.pool, toKey)
	if toBalance+amount < toBalance {
		return fault.NumericalOverflow
	}

	b.put(trx, fromKey, fromBalance-amount)
	b.put(trx, toKey, toBalance+amount)
	return nil
}

// Deposit - create amount of an asset for a holder
func (b *Book) Deposit(trx storage.Transaction, asset account.Identity, holder account.Identity, amount uint64) error {
	key := balanceKey(asset, holder)
	balance, _ := trx.GetN(b.pool, key)
	if balance+amount < balance {
		return fault.NumericalOverflow
	}
	b.put(trx, key, balance+amount)
	return nil
}

// zero balances are removed
func (b *Book) put(trx storage.Transaction, key []byte, balance uint64) {
	if 0 == balance {
		trx.Delete(b.pool, key)
		return
	}
	trx.PutN(b.pool, key, balance)
}

// Holding - one balance entry
type Holding struct {
	Asset  account.Identity `json:"asset"`
	Amount uint64           `json:"amount"`
}

// Holdings - every nonzero committed balance of a holder
func (b *Book) Holdings(holder account.Identity) ([]Holding, error) {
	holdings := []Holding{}
	err := b.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 2*account.IdentitySize != len(key) || 8 != len(value) {
			return fault.InvalidRecordSize
		}
		h, _ := account.IdentityFromBytes(key[account.IdentitySize:])
		if h != holder {
			return nil
		}
		a, _ := account.IdentityFromBytes(key[:account.IdentitySize])
		holdings = append(holdings, Holding{
			Asset:  a,
			Amount: binary.BigEndian.Uint64(value),
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return holdings, nil
}
