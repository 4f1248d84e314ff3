// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/signed"
)

const (
	rateLimitPool = 100
	rateBurstPool = 50
)

// Pool - type for RPC calls
type Pool struct {
	base
}

// NewPool - pool authority service
func NewPool(log *logger.L, engine *raffle.Engine) *Pool {
	return &Pool{
		base: newBase(log, engine, rateLimitPool, rateBurstPool),
	}
}

// ---

// CreatePoolArguments - body of Pool.Create, the caller becomes the owner
type CreatePoolArguments struct {
	Manager      account.Identity `json:"manager"`
	Seed         account.Identity `json:"seed"`
	CurrencyMint account.Identity `json:"currencyMint"`
}

// PoolReply - identity of a pool
type PoolReply struct {
	Pool account.Identity `json:"pool"`
}

// Create - create a pool
func (pool *Pool) Create(envelope *signed.Envelope, reply *PoolReply) error {
	arguments := CreatePoolArguments{}
	caller, err := pool.open(PoolCreate, envelope, &arguments)
	if nil != err {
		return err
	}

	id, err := pool.engine.CreatePool(caller, arguments.Manager, arguments.Seed, arguments.CurrencyMint)
	if nil != err {
		return err
	}
	reply.Pool = id
	return nil
}

// ---

// AuthorityArguments - body of Pool.TransferAuthority and Pool.SetManager
type AuthorityArguments struct {
	Pool     account.Identity `json:"pool"`
	Identity account.Identity `json:"identity"`
}

// TransferAuthority - owner hands the pool to a new owner
func (pool *Pool) TransferAuthority(envelope *signed.Envelope, reply *Empty) error {
	arguments := AuthorityArguments{}
	caller, err := pool.open(PoolTransferAuthority, envelope, &arguments)
	if nil != err {
		return err
	}
	return pool.engine.TransferPoolAuthority(caller, arguments.Pool, arguments.Identity)
}

// SetManager - manager hands management to a new manager
func (pool *Pool) SetManager(envelope *signed.Envelope, reply *Empty) error {
	arguments := AuthorityArguments{}
	caller, err := pool.open(PoolSetManager, envelope, &arguments)
	if nil != err {
		return err
	}
	return pool.engine.SetManager(caller, arguments.Pool, arguments.Identity)
}

// ---

// PauseArguments - body of Pool.SetPause
type PauseArguments struct {
	Pool   account.Identity `json:"pool"`
	Paused bool             `json:"paused"`
}

// SetPause - set the pool flag
func (pool *Pool) SetPause(envelope *signed.Envelope, reply *Empty) error {
	arguments := PauseArguments{}
	caller, err := pool.open(PoolSetPause, envelope, &arguments)
	if nil != err {
		return err
	}
	return pool.engine.SetPause(caller, arguments.Pool, arguments.Paused)
}

// ---

// AmountArguments - body of Pool.ManagerClaim and Pool.RedeemTokens
//
// Destination is only used when redeeming
type AmountArguments struct {
	Pool        account.Identity `json:"pool"`
	Amount      uint64           `json:"amount,string"`
	Destination account.Identity `json:"destination"`
}

// ManagerClaim - manager withdraws native currency from custody
func (pool *Pool) ManagerClaim(envelope *signed.Envelope, reply *Empty) error {
	arguments := AmountArguments{}
	caller, err := pool.open(PoolManagerClaim, envelope, &arguments)
	if nil != err {
		return err
	}
	return pool.engine.ManagerClaim(caller, arguments.Pool, arguments.Amount)
}

// RedeemTokens - owner withdraws pool currency from custody
func (pool *Pool) RedeemTokens(envelope *signed.Envelope, reply *Empty) error {
	arguments := AmountArguments{}
	caller, err := pool.open(PoolRedeemTokens, envelope, &arguments)
	if nil != err {
		return err
	}
	return pool.engine.RedeemPoolTokens(caller, arguments.Pool, arguments.Amount, arguments.Destination)
}

// ---

// PoolArguments - select a pool
type PoolArguments struct {
	Pool account.Identity `json:"pool"`
}

// Get - the pool record
func (pool *Pool) Get(arguments *PoolArguments, reply *raffle.Pool) error {
	if err := pool.query(); nil != err {
		return err
	}
	p, err := pool.engine.Pool(arguments.Pool)
	if nil != err {
		return err
	}
	*reply = *p
	return nil
}

// RafflesReply - list of raffles
type RafflesReply struct {
	Raffles []*raffle.Raffle `json:"raffles"`
}

// Raffles - every raffle of the pool
func (pool *Pool) Raffles(arguments *PoolArguments, reply *RafflesReply) error {
	if err := pool.query(); nil != err {
		return err
	}
	raffles, err := pool.engine.Raffles(arguments.Pool)
	if nil != err {
		return err
	}
	reply.Raffles = raffles
	return nil
}
