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

// CreatePool - caller becomes the owner of a new pool
func (client *Client) CreatePool(manager account.Identity, seed account.Identity, currencyMint account.Identity) (*service.PoolReply, error) {
	arguments := service.CreatePoolArguments{
		Manager:      manager,
		Seed:         seed,
		CurrencyMint: currencyMint,
	}
	var reply service.PoolReply
	if err := client.submit(service.PoolCreate, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferPoolAuthority - hand the pool to a new owner
func (client *Client) TransferPoolAuthority(pool account.Identity, newOwner account.Identity) error {
	arguments := service.AuthorityArguments{
		Pool:     pool,
		Identity: newOwner,
	}
	return client.submit(service.PoolTransferAuthority, arguments, &service.Empty{})
}

// SetManager - replace the pool manager
func (client *Client) SetManager(pool account.Identity, newManager account.Identity) error {
	arguments := service.AuthorityArguments{
		Pool:     pool,
		Identity: newManager,
	}
	return client.submit(service.PoolSetManager, arguments, &service.Empty{})
}

// SetPause - change the pool side payment flag
func (client *Client) SetPause(pool account.Identity, paused bool) error {
	arguments := service.PauseArguments{
		Pool:   pool,
		Paused: paused,
	}
	return client.submit(service.PoolSetPause, arguments, &service.Empty{})
}

// ManagerClaim - move native currency from custody to the manager
func (client *Client) ManagerClaim(pool account.Identity, amount uint64) error {
	arguments := service.AmountArguments{
		Pool:   pool,
		Amount: amount,
	}
	return client.submit(service.PoolManagerClaim, arguments, &service.Empty{})
}

// RedeemPoolTokens - move pool currency from custody to destination
func (client *Client) RedeemPoolTokens(pool account.Identity, amount uint64, destination account.Identity) error {
	arguments := service.AmountArguments{
		Pool:        pool,
		Amount:      amount,
		Destination: destination,
	}
	return client.submit(service.PoolRedeemTokens, arguments, &service.Empty{})
}

// GetPool - the pool record
func (client *Client) GetPool(pool account.Identity) (*raffle.Pool, error) {
	var reply raffle.Pool
	if err := client.query(service.PoolGet, service.PoolArguments{Pool: pool}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Raffles - every raffle of a pool
func (client *Client) Raffles(pool account.Identity) (*service.RafflesReply, error) {
	var reply service.RafflesReply
	if err := client.query(service.PoolRaffles, service.PoolArguments{Pool: pool}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
