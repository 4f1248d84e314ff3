// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/storage"
)

// CreatePool - create a pool owned by the caller
//
// the pool identity is derived from the owner and seed, so the same
// pair cannot create two pools
func (e *Engine) CreatePool(caller account.Identity, manager account.Identity, seed account.Identity, currencyMint account.Identity) (account.Identity, error) {
	id := account.PoolIdentity(caller, seed)

	err := e.run("create_pool", func(trx storage.Transaction) error {
		if caller.IsNull() || manager.IsNull() {
			return fault.InvalidIdentity
		}
		if trx.Has(e.store.Pool.Pools, id[:]) {
			return fault.AlreadyExists
		}
		e.putPool(trx, &Pool{
			Id:           id,
			Owner:        caller,
			Manager:      manager,
			Seed:         seed,
			CurrencyMint: currencyMint,
			Custody:      id,
			Paused:       false,
			RaffleCount:  0,
		})
		return nil
	})
	if nil != err {
		return account.Null, err
	}

	e.log.Infof("pool: %s  owner: %s  manager: %s", id, caller, manager)
	return id, nil
}

// TransferPoolAuthority - give the pool to a new owner
func (e *Engine) TransferPoolAuthority(caller account.Identity, pool account.Identity, newOwner account.Identity) error {
	err := e.run("transfer_pool_authority", func(trx storage.Transaction) error {
		p, err := e.getPool(trx, pool)
		if nil != err {
			return err
		}
		if caller != p.Owner {
			return fault.InvalidAuthority
		}
		if newOwner.IsNull() {
			return fault.InvalidIdentity
		}
		p.Owner = newOwner
		e.putPool(trx, p)
		return nil
	})
	if nil == err {
		e.log.Infof("pool: %s  new owner: %s", pool, newOwner)
	}
	return err
}

// SetManager - replace the pool manager
//
// only the current manager may appoint its successor
func (e *Engine) SetManager(caller account.Identity, pool account.Identity, newManager account.Identity) error {
	err := e.run("set_manager", func(trx storage.Transaction) error {
		p, err := e.getPool(trx, pool)
		if nil != err {
			return err
		}
		if caller != p.Manager {
			return fault.InvalidAuthority
		}
		if newManager.IsNull() {
			return fault.InvalidIdentity
		}
		p.Manager = newManager
		e.putPool(trx, p)
		return nil
	})
	if nil == err {
		e.log.Infof("pool: %s  new manager: %s", pool, newManager)
	}
	return err
}

// SetPause - set the flag that makes ticket purchases also escrow a
// native side payment
func (e *Engine) SetPause(caller account.Identity, pool account.Identity, flag bool) error {
	err := e.run("set_pause", func(trx storage.Transaction) error {
		p, err := e.getPool(trx, pool)
		if nil != err {
			return err
		}
		if caller != p.Manager {
			return fault.InvalidAuthority
		}
		p.Paused = flag
		e.putPool(trx, p)
		return nil
	})
	if nil == err {
		e.log.Infof("pool: %s  paused: %t", pool, flag)
	}
	return err
}

// ManagerClaim - manager withdraws native currency held by the pool
func (e *Engine) ManagerClaim(caller account.Identity, pool account.Identity, amount uint64) error {
	err := e.run("manager_claim", func(trx storage.Transaction) error {
		p, err := e.getPool(trx, pool)
		if nil != err {
			return err
		}
		if caller != p.Manager {
			return fault.InvalidAuthority
		}
		return e.gateway.Transfer(trx, account.Null, p.Custody, caller, amount)
	})
	if nil == err {
		e.log.Infof("pool: %s  manager claimed: %d", pool, amount)
	}
	return err
}

// RedeemPoolTokens - owner moves pool currency to any destination
func (e *Engine) RedeemPoolTokens(caller account.Identity, pool account.Identity, amount uint64, destination account.Identity) error {
	err := e.run("redeem_pool_tokens", func(trx storage.Transaction) error {
		p, err := e.getPool(trx, pool)
		if nil != err {
			return err
		}
		if caller != p.Owner {
			return fault.InvalidAuthority
		}
		if destination.IsNull() {
			return fault.InvalidIdentity
		}
		return e.gateway.Transfer(trx, p.CurrencyMint, p.Custody, destination, amount)
	})
	if nil == err {
		e.log.Infof("pool: %s  redeemed: %d  to: %s", pool, amount, destination)
	}
	return err
}
