// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/rpc/service"
)

// Balance - escrow balance of a holder
func (client *Client) Balance(asset account.Identity, holder account.Identity) (*service.BalanceReply, error) {
	arguments := service.BalanceArguments{
		Asset:  asset,
		Holder: holder,
	}
	var reply service.BalanceReply
	if err := client.query(service.EscrowBalance, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Deposit - create a balance on a node running a faucet
func (client *Client) Deposit(asset account.Identity, holder account.Identity, amount uint64) error {
	arguments := service.DepositArguments{
		Asset:  asset,
		Holder: holder,
		Amount: amount,
	}
	return client.submit(service.EscrowDeposit, arguments, &service.Empty{})
}

// Info - node status
func (client *Client) Info() (*service.InfoReply, error) {
	var reply service.InfoReply
	if err := client.query(service.NodeInfo, service.Empty{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
