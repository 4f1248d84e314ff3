// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/constants"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/ratelimit"
	"github.com/bitmark-inc/raffled/rpc/signed"
	"github.com/bitmark-inc/raffled/spotstore"
)

const (
	rateLimitRaffle = 200
	rateBurstRaffle = 100
)

// Raffle - type for RPC calls
type Raffle struct {
	base
}

// NewRaffle - raffle lifecycle and spot service
func NewRaffle(log *logger.L, engine *raffle.Engine) *Raffle {
	return &Raffle{
		base: newBase(log, engine, rateLimitRaffle, rateBurstRaffle),
	}
}

// ---

// CreateRaffleArguments - body of Raffle.Create
type CreateRaffleArguments struct {
	Pool       account.Identity  `json:"pool"`
	Parameters raffle.Parameters `json:"parameters"`
}

// RaffleReply - identity of a raffle
type RaffleReply struct {
	Raffle account.Identity `json:"raffle"`
}

// Create - add a pending raffle to a pool
func (r *Raffle) Create(envelope *signed.Envelope, reply *RaffleReply) error {
	arguments := CreateRaffleArguments{}
	caller, err := r.open(RaffleCreate, envelope, &arguments)
	if nil != err {
		return err
	}

	id, err := r.engine.CreateRaffle(caller, arguments.Pool, arguments.Parameters)
	if nil != err {
		return err
	}
	reply.Raffle = id
	return nil
}

// ---

// MetadataArguments - body of Raffle.UpdateMetadata
type MetadataArguments struct {
	Raffle   account.Identity `json:"raffle"`
	Metadata raffle.Metadata  `json:"metadata"`
}

// UpdateMetadata - replace the display fields
func (r *Raffle) UpdateMetadata(envelope *signed.Envelope, reply *Empty) error {
	arguments := MetadataArguments{}
	caller, err := r.open(RaffleUpdateMetadata, envelope, &arguments)
	if nil != err {
		return err
	}
	return r.engine.UpdateRaffleMetadata(caller, arguments.Raffle, arguments.Metadata)
}

// ---

// VisibilityArguments - body of Raffle.ToggleVisibility
type VisibilityArguments struct {
	Raffle  account.Identity `json:"raffle"`
	Visible bool             `json:"visible"`
}

// ToggleVisibility - show or hide a raffle
func (r *Raffle) ToggleVisibility(envelope *signed.Envelope, reply *Empty) error {
	arguments := VisibilityArguments{}
	caller, err := r.open(RaffleToggleVisibility, envelope, &arguments)
	if nil != err {
		return err
	}
	return r.engine.ToggleVisibility(caller, arguments.Raffle, arguments.Visible)
}

// ---

// OpenArguments - body of Raffle.Open
type OpenArguments struct {
	Raffle account.Identity `json:"raffle"`
	Period uint64           `json:"period,string"`
}

// Open - start the sale window
func (r *Raffle) Open(envelope *signed.Envelope, reply *Empty) error {
	arguments := OpenArguments{}
	caller, err := r.open(RaffleOpen, envelope, &arguments)
	if nil != err {
		return err
	}
	return r.engine.OpenRaffle(caller, arguments.Raffle, arguments.Period)
}

// ---

// RaffleArguments - select a raffle
type RaffleArguments struct {
	Raffle account.Identity `json:"raffle"`
}

// SettleReply - status after settlement
type SettleReply struct {
	Status raffle.Status `json:"status"`
}

// Settle - assign winners, or return to pending if nothing was sold
func (r *Raffle) Settle(envelope *signed.Envelope, reply *SettleReply) error {
	arguments := RaffleArguments{}
	caller, err := r.open(RaffleSettle, envelope, &arguments)
	if nil != err {
		return err
	}

	status, err := r.engine.SettleRaffle(caller, arguments.Raffle)
	if nil != err {
		return err
	}
	reply.Status = status
	return nil
}

// FixedArguments - body of Raffle.SettleFixed
type FixedArguments struct {
	Raffle account.Identity `json:"raffle"`
	Ticket uint64           `json:"ticket,string"`
}

// SettleFixed - manager stamps one ticket into every spot
func (r *Raffle) SettleFixed(envelope *signed.Envelope, reply *Empty) error {
	arguments := FixedArguments{}
	caller, err := r.open(RaffleSettleFixed, envelope, &arguments)
	if nil != err {
		return err
	}
	return r.engine.SettleRaffleWithFixedCount(caller, arguments.Raffle, arguments.Ticket)
}

// ---

// SpotArguments - body of Raffle.FundSpot and Raffle.WithdrawSpot
type SpotArguments struct {
	Raffle account.Identity `json:"raffle"`
	Index  uint32           `json:"index"`
	Asset  account.Identity `json:"asset"`
}

// FundSpot - move a prize into custody and record it in a spot
func (r *Raffle) FundSpot(envelope *signed.Envelope, reply *Empty) error {
	arguments := SpotArguments{}
	caller, err := r.open(RaffleFundSpot, envelope, &arguments)
	if nil != err {
		return err
	}
	return r.engine.FundSpot(caller, arguments.Raffle, arguments.Index, arguments.Asset)
}

// WithdrawSpot - return a prize to the owner and clear the spot
func (r *Raffle) WithdrawSpot(envelope *signed.Envelope, reply *Empty) error {
	arguments := SpotArguments{}
	caller, err := r.open(RaffleWithdrawSpot, envelope, &arguments)
	if nil != err {
		return err
	}
	return r.engine.WithdrawSpot(caller, arguments.Raffle, arguments.Index, arguments.Asset)
}

// ---

// Get - the raffle record
func (r *Raffle) Get(arguments *RaffleArguments, reply *raffle.Raffle) error {
	if err := r.query(); nil != err {
		return err
	}
	item, err := r.engine.Raffle(arguments.Raffle)
	if nil != err {
		return err
	}
	*reply = *item
	return nil
}

// SpotsReply - every spot of a raffle
type SpotsReply struct {
	Spots []spotstore.Spot `json:"spots"`
}

// Spots - every spot of a raffle
func (r *Raffle) Spots(arguments *RaffleArguments, reply *SpotsReply) error {
	if err := r.query(); nil != err {
		return err
	}
	spots, err := r.engine.Spots(arguments.Raffle)
	if nil != err {
		return err
	}
	reply.Spots = spots
	return nil
}

// TicketsArguments - a page of the ticket ledger
type TicketsArguments struct {
	Raffle account.Identity `json:"raffle"`
	Start  uint32           `json:"start"`
	Count  int              `json:"count"`
}

// TicketsReply - buyers of consecutive tickets
type TicketsReply struct {
	Total     uint32             `json:"total"`
	Buyers    []account.Identity `json:"buyers"`
	NextStart uint32             `json:"nextStart"`
}

// Tickets - page through the ledger
func (r *Raffle) Tickets(arguments *TicketsArguments, reply *TicketsReply) error {
	count := arguments.Count
	if 0 == count {
		count = constants.DefaultCount
	}
	if err := ratelimit.LimitN(r.limiter, count, constants.MaximumCount); nil != err {
		return err
	}

	total, err := r.engine.TicketCount(arguments.Raffle)
	if nil != err {
		return err
	}
	buyers, err := r.engine.Tickets(arguments.Raffle, arguments.Start, count)
	if nil != err {
		return err
	}
	reply.Total = total
	reply.Buyers = buyers
	reply.NextStart = arguments.Start + uint32(len(buyers))
	return nil
}

// Elapsed - open raffles whose sale window has passed
func (r *Raffle) Elapsed(arguments *Empty, reply *RafflesReply) error {
	if err := r.query(); nil != err {
		return err
	}
	raffles, err := r.engine.Elapsed()
	if nil != err {
		return err
	}
	reply.Raffles = raffles
	return nil
}
