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
	rateLimitTicket = 500
	rateBurstTicket = 200
)

// Ticket - type for RPC calls
type Ticket struct {
	base
}

// NewTicket - buyer service
func NewTicket(log *logger.L, engine *raffle.Engine) *Ticket {
	return &Ticket{
		base: newBase(log, engine, rateLimitTicket, rateBurstTicket),
	}
}

// Register - create the caller's zero ticket counter
func (ticket *Ticket) Register(envelope *signed.Envelope, reply *Empty) error {
	arguments := RaffleArguments{}
	caller, err := ticket.open(TicketRegister, envelope, &arguments)
	if nil != err {
		return err
	}
	return ticket.engine.RegisterBuyer(caller, arguments.Raffle)
}

// ---

// BuyArguments - body of Ticket.Buy
type BuyArguments struct {
	Raffle      account.Identity `json:"raffle"`
	Count       uint32           `json:"count"`
	SidePayment uint64           `json:"sidePayment,string"`
}

// Buy - buy tickets for the caller
func (ticket *Ticket) Buy(envelope *signed.Envelope, reply *Empty) error {
	arguments := BuyArguments{}
	caller, err := ticket.open(TicketBuy, envelope, &arguments)
	if nil != err {
		return err
	}
	return ticket.engine.BuyTicket(caller, arguments.Raffle, arguments.Count, arguments.SidePayment)
}

// ---

// ClaimArguments - body of Ticket.Claim
type ClaimArguments struct {
	Raffle account.Identity `json:"raffle"`
	Index  uint32           `json:"index"`
}

// Claim - winner takes the prize of a spot
func (ticket *Ticket) Claim(envelope *signed.Envelope, reply *Empty) error {
	arguments := ClaimArguments{}
	caller, err := ticket.open(TicketClaim, envelope, &arguments)
	if nil != err {
		return err
	}
	return ticket.engine.Claim(caller, arguments.Raffle, arguments.Index)
}

// ---

// BuyerArguments - select a buyer of a raffle
type BuyerArguments struct {
	Raffle account.Identity `json:"raffle"`
	Buyer  account.Identity `json:"buyer"`
}

// CountReply - number of tickets
type CountReply struct {
	Count uint64 `json:"count,string"`
}

// Count - tickets bought by one buyer
func (ticket *Ticket) Count(arguments *BuyerArguments, reply *CountReply) error {
	if err := ticket.query(); nil != err {
		return err
	}
	n, err := ticket.engine.BuyerCount(arguments.Raffle, arguments.Buyer)
	if nil != err {
		return err
	}
	reply.Count = n
	return nil
}
