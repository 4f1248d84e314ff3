// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/raffled/account"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkIdentity(c, "raffle", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.RegisterBuyer(id)
}

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkIdentity(c, "raffle", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.BuyTicket(id, uint32(c.Uint("count")), c.Uint64("side-payment"))
}

func runClaim(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkIdentity(c, "raffle", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Claim(id, uint32(c.Uint("index")))
}

// buyer defaults to the identity of the signing key
func runTicketCount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkIdentity(c, "raffle", true)
	if err != nil {
		return err
	}
	buyer, err := checkIdentity(c, "buyer", nil == m.key)
	if err != nil {
		return err
	}
	if buyer.IsNull() {
		buyer = account.IdentityOfKey(m.key)
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.TicketCount(id, buyer)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
