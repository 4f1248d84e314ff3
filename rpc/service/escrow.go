// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/signed"
)

const (
	rateLimitEscrow = 200
	rateBurstEscrow = 100
)

// Escrow - type for RPC calls
type Escrow struct {
	base
	faucet bool
}

// NewEscrow - balance service; deposits are refused unless faucet is set
func NewEscrow(log *logger.L, engine *raffle.Engine, faucet bool) *Escrow {
	return &Escrow{
		base:   newBase(log, engine, rateLimitEscrow, rateBurstEscrow),
		faucet: faucet,
	}
}

// BalanceArguments - select a balance
type BalanceArguments struct {
	Asset  account.Identity `json:"asset"`
	Holder account.Identity `json:"holder"`
}

// BalanceReply - a balance
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - committed balance of an asset
func (escrow *Escrow) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := escrow.query(); nil != err {
		return err
	}
	n, err := escrow.engine.Balance(arguments.Asset, arguments.Holder)
	if nil != err {
		return err
	}
	reply.Balance = n
	return nil
}

// DepositArguments - body of Escrow.Deposit
type DepositArguments struct {
	Asset  account.Identity `json:"asset"`
	Holder account.Identity `json:"holder"`
	Amount uint64           `json:"amount,string"`
}

// Deposit - create balance on a test network
func (escrow *Escrow) Deposit(envelope *signed.Envelope, reply *Empty) error {
	if !escrow.faucet {
		return fault.NotAvailable
	}

	arguments := DepositArguments{}
	if _, err := escrow.open(EscrowDeposit, envelope, &arguments); nil != err {
		return err
	}
	return escrow.engine.Deposit(arguments.Asset, arguments.Holder, arguments.Amount)
}
