// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runCreatePool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	manager, err := checkIdentity(c, "manager", true)
	if err != nil {
		return err
	}
	seed, err := checkIdentity(c, "seed", true)
	if err != nil {
		return err
	}
	mint, err := checkIdentity(c, "currency", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.CreatePool(manager, seed, mint)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransferPool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}
	owner, err := checkIdentity(c, "owner", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.TransferPoolAuthority(pool, owner)
}

func runSetManager(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}
	manager, err := checkIdentity(c, "manager", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.SetManager(pool, manager)
}

func runSetPause(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.SetPause(pool, !c.Bool("resume"))
}

func runManagerClaim(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}
	if err := checkRequired(c, "amount"); err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.ManagerClaim(pool, c.Uint64("amount"))
}

func runRedeem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}
	destination, err := checkIdentity(c, "destination", true)
	if err != nil {
		return err
	}
	if err := checkRequired(c, "amount"); err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.RedeemPoolTokens(pool, c.Uint64("amount"), destination)
}

func runPool(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.GetPool(pool)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRaffles(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Raffles(pool)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
