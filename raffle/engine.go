// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/escrow"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/ledger"
	"github.com/bitmark-inc/raffled/metrics"
	"github.com/bitmark-inc/raffled/spotstore"
	"github.com/bitmark-inc/raffled/storage"
)

// Engine - runs raffle operations against a store
//
// every operation is one storage transaction: it commits if the
// operation succeeds and aborts otherwise
type Engine struct {
	log     *logger.L
	store   *storage.Store
	gateway escrow.Gateway
	metrics *metrics.Collectors
	now     func() time.Time
}

// New - create an engine
func New(store *storage.Store, gateway escrow.Gateway, collectors *metrics.Collectors) *Engine {
	if nil == collectors {
		collectors = metrics.New()
	}
	return &Engine{
		log:     logger.New("engine"),
		store:   store,
		gateway: gateway,
		metrics: collectors,
		now:     time.Now,
	}
}

// run one operation in its own transaction
func (e *Engine) run(operation string, f func(trx storage.Transaction) error) error {
	trx, err := e.store.NewDBTransaction()
	if nil != err {
		e.log.Errorf("%s: begin: %s", operation, err)
		return err
	}

	// release the transaction if the operation panics, abort after a
	// commit does nothing
	defer func() {
		if r := recover(); nil != r {
			trx.Abort()
			e.log.Criticalf("%s: panic: %v", operation, r)
			panic(r)
		}
	}()

	err = f(trx)
	if nil != err {
		trx.Abort()
		e.log.Debugf("%s: rejected: %s", operation, err)
		e.metrics.Operation(operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Criticalf("%s: commit: %s", operation, err)
		e.metrics.Operation(operation, err)
		return err
	}
	e.metrics.Operation(operation, nil)
	return nil
}

// current time in unix seconds
func (e *Engine) timestamp() uint64 {
	return uint64(e.now().Unix())
}

func (e *Engine) getPool(trx storage.Transaction, id account.Identity) (*Pool, error) {
	buffer := trx.Get(e.store.Pool.Pools, id[:])
	if nil == buffer {
		return nil, fault.PoolNotFound
	}
	return unpackPool(buffer)
}

func (e *Engine) putPool(trx storage.Transaction, p *Pool) {
	trx.Put(e.store.Pool.Pools, p.Id[:], pack(p))
}

func (e *Engine) getRaffle(trx storage.Transaction, id account.Identity) (*Raffle, error) {
	buffer := trx.Get(e.store.Pool.Raffles, id[:])
	if nil == buffer {
		return nil, fault.RaffleNotFound
	}
	return unpackRaffle(buffer)
}

func (e *Engine) putRaffle(trx storage.Transaction, r *Raffle) {
	trx.Put(e.store.Pool.Raffles, r.Id[:], pack(r))
}

// fetch a raffle and its pool, the caller must be the pool owner
func (e *Engine) ownedRaffle(trx storage.Transaction, caller account.Identity, id account.Identity) (*Raffle, *Pool, error) {
	r, err := e.getRaffle(trx, id)
	if nil != err {
		return nil, nil, err
	}
	p, err := e.getPool(trx, r.Pool)
	if nil != err {
		return nil, nil, err
	}
	if caller != p.Owner {
		return nil, nil, fault.InvalidAuthority
	}
	return r, p, nil
}

// the buffers are checked against the raffle before use
func (e *Engine) getLedger(trx storage.Transaction, r *Raffle) (*ledger.Ledger, error) {
	buffer := trx.Get(e.store.Pool.Ledgers, r.Ledger[:])
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

func (e *Engine) putLedger(trx storage.Transaction, r *Raffle, l *ledger.Ledger) {
	trx.Put(e.store.Pool.Ledgers, r.Ledger[:], l.Bytes())
}

func (e *Engine) getSpots(trx storage.Transaction, r *Raffle) (*spotstore.Store, error) {
	buffer := trx.Get(e.store.Pool.Spots, r.Spots[:])
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

func (e *Engine) putSpots(trx storage.Transaction, r *Raffle, s *spotstore.Store) {
	trx.Put(e.store.Pool.Spots, r.Spots[:], s.Bytes())
}
