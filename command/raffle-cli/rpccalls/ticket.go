// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/rpc/service"
)

// RegisterBuyer - create the caller's ticket counter
func (client *Client) RegisterBuyer(id account.Identity) error {
	return client.submit(service.TicketRegister, service.RaffleArguments{Raffle: id}, &service.Empty{})
}

// BuyTicket - buy count tickets
func (client *Client) BuyTicket(id account.Identity, count uint32, sidePayment uint64) error {
	arguments := service.BuyArguments{
		Raffle:      id,
		Count:       count,
		SidePayment: sidePayment,
	}
	return client.submit(service.TicketBuy, arguments, &service.Empty{})
}

// Claim - collect the prize of a won spot
func (client *Client) Claim(id account.Identity, index uint32) error {
	arguments := service.ClaimArguments{
		Raffle: id,
		Index:  index,
	}
	return client.submit(service.TicketClaim, arguments, &service.Empty{})
}

// TicketCount - tickets bought by one buyer
func (client *Client) TicketCount(id account.Identity, buyer account.Identity) (*service.CountReply, error) {
	arguments := service.BuyerArguments{
		Raffle: id,
		Buyer:  buyer,
	}
	var reply service.CountReply
	if err := client.query(service.TicketCount, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
