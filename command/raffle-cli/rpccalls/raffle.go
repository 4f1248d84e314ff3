// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/service"
)

// CreateRaffle - new pending raffle in a pool
func (client *Client) CreateRaffle(pool account.Identity, parameters raffle.Parameters) (*service.RaffleReply, error) {
	arguments := service.CreateRaffleArguments{
		Pool:       pool,
		Parameters: parameters,
	}
	var reply service.RaffleReply
	if err := client.submit(service.RaffleCreate, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateMetadata - replace the display fields
func (client *Client) UpdateMetadata(id account.Identity, metadata raffle.Metadata) error {
	arguments := service.MetadataArguments{
		Raffle:   id,
		Metadata: metadata,
	}
	return client.submit(service.RaffleUpdateMetadata, arguments, &service.Empty{})
}

// ToggleVisibility - show or hide a raffle
func (client *Client) ToggleVisibility(id account.Identity, visible bool) error {
	arguments := service.VisibilityArguments{
		Raffle:  id,
		Visible: visible,
	}
	return client.submit(service.RaffleToggleVisibility, arguments, &service.Empty{})
}

// OpenRaffle - start the sale window
func (client *Client) OpenRaffle(id account.Identity, period uint64) error {
	arguments := service.OpenArguments{
		Raffle: id,
		Period: period,
	}
	return client.submit(service.RaffleOpen, arguments, &service.Empty{})
}

// SettleRaffle - draw the winners
func (client *Client) SettleRaffle(id account.Identity) (*service.SettleReply, error) {
	var reply service.SettleReply
	if err := client.submit(service.RaffleSettle, service.RaffleArguments{Raffle: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SettleRaffleWithFixedCount - assign one ticket to every spot
func (client *Client) SettleRaffleWithFixedCount(id account.Identity, ticket uint64) error {
	arguments := service.FixedArguments{
		Raffle: id,
		Ticket: ticket,
	}
	return client.submit(service.RaffleSettleFixed, arguments, &service.Empty{})
}

// FundSpot - place a prize into a spot
func (client *Client) FundSpot(id account.Identity, index uint32, asset account.Identity) error {
	arguments := service.SpotArguments{
		Raffle: id,
		Index:  index,
		Asset:  asset,
	}
	return client.submit(service.RaffleFundSpot, arguments, &service.Empty{})
}

// WithdrawSpot - take a prize back out of a spot
func (client *Client) WithdrawSpot(id account.Identity, index uint32, asset account.Identity) error {
	arguments := service.SpotArguments{
		Raffle: id,
		Index:  index,
		Asset:  asset,
	}
	return client.submit(service.RaffleWithdrawSpot, arguments, &service.Empty{})
}

// GetRaffle - the raffle record
func (client *Client) GetRaffle(id account.Identity) (*raffle.Raffle, error) {
	var reply raffle.Raffle
	if err := client.query(service.RaffleGet, service.RaffleArguments{Raffle: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Spots - the prize spots of a raffle
func (client *Client) Spots(id account.Identity) (*service.SpotsReply, error) {
	var reply service.SpotsReply
	if err := client.query(service.RaffleSpots, service.RaffleArguments{Raffle: id}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Tickets - one page of ticket buyers
func (client *Client) Tickets(id account.Identity, start uint32, count int) (*service.TicketsReply, error) {
	arguments := service.TicketsArguments{
		Raffle: id,
		Start:  start,
		Count:  count,
	}
	var reply service.TicketsReply
	if err := client.query(service.RaffleTickets, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Elapsed - open raffles whose sale window has passed
func (client *Client) Elapsed() (*service.RafflesReply, error) {
	var reply service.RafflesReply
	if err := client.query(service.RaffleElapsed, service.Empty{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
