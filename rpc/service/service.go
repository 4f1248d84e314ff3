// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package service - the JSON RPC services of the raffle engine
//
// state changing methods take a signed.Envelope whose body is the
// method's argument structure; queries take their arguments directly
package service

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/ratelimit"
	"github.com/bitmark-inc/raffled/rpc/signed"
)

// method names, these are also the signed method strings
const (
	PoolCreate            = "Pool.Create"
	PoolTransferAuthority = "Pool.TransferAuthority"
	PoolSetManager        = "Pool.SetManager"
	PoolSetPause          = "Pool.SetPause"
	PoolManagerClaim      = "Pool.ManagerClaim"
	PoolRedeemTokens      = "Pool.RedeemTokens"
	PoolGet               = "Pool.Get"
	PoolRaffles           = "Pool.Raffles"

	RaffleCreate           = "Raffle.Create"
	RaffleUpdateMetadata   = "Raffle.UpdateMetadata"
	RaffleToggleVisibility = "Raffle.ToggleVisibility"
	RaffleOpen             = "Raffle.Open"
	RaffleSettle           = "Raffle.Settle"
	RaffleSettleFixed      = "Raffle.SettleFixed"
	RaffleFundSpot         = "Raffle.FundSpot"
	RaffleWithdrawSpot     = "Raffle.WithdrawSpot"
	RaffleGet              = "Raffle.Get"
	RaffleSpots            = "Raffle.Spots"
	RaffleTickets          = "Raffle.Tickets"
	RaffleElapsed          = "Raffle.Elapsed"

	TicketRegister = "Ticket.Register"
	TicketBuy      = "Ticket.Buy"
	TicketClaim    = "Ticket.Claim"
	TicketCount    = "Ticket.Count"

	EscrowBalance = "Escrow.Balance"
	EscrowDeposit = "Escrow.Deposit"

	NodeInfo = "Node.Info"
)

// Empty - for methods with no arguments or no result
type Empty struct{}

// state common to all services
//
// each service keeps its own replay set, an envelope is signed for a
// single method so it cannot be accepted by any other service
type base struct {
	log     *logger.L
	limiter *rate.Limiter
	replays *signed.Replays
	engine  *raffle.Engine
	now     func() time.Time
}

func newBase(log *logger.L, engine *raffle.Engine, limit rate.Limit, burst int) base {
	return base{
		log:     log,
		limiter: rate.NewLimiter(limit, burst),
		replays: signed.NewReplays(),
		engine:  engine,
		now:     time.Now,
	}
}

// rate limit then authenticate a request and decode its body
func (b *base) open(method string, envelope *signed.Envelope, body interface{}) (account.Identity, error) {
	if err := ratelimit.Limit(b.limiter); nil != err {
		return account.Null, err
	}

	caller, err := b.replays.Open(envelope, method, b.now(), body)
	if nil != err {
		b.log.Debugf("%s: rejected request: %s", method, err)
		return account.Null, err
	}
	b.log.Infof("%s: caller: %s", method, caller)
	return caller, nil
}

// rate limit an unsigned query
func (b *base) query() error {
	return ratelimit.Limit(b.limiter)
}
