// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/raffled/raffle"
)

func metadataFlags(c *cli.Context) raffle.Metadata {
	return raffle.Metadata{
		Name:    c.String("name"),
		Logo:    c.String("logo"),
		Discord: c.String("discord"),
		Twitter: c.String("twitter"),
	}
}

func runCreateRaffle(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pool, err := checkIdentity(c, "pool", true)
	if err != nil {
		return err
	}
	for _, name := range []string{"value", "spots", "max"} {
		if err := checkRequired(c, name); err != nil {
			return err
		}
	}

	parameters := raffle.Parameters{
		Metadata:    metadataFlags(c),
		TicketValue: c.Uint64("value"),
		SpotCount:   uint32(c.Uint("spots")),
		MaxTickets:  uint32(c.Uint("max")),
		MaxPerBuyer: uint32(c.Uint("per-buyer")),
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.CreateRaffle(pool, parameters)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUpdateMetadata(c *cli.Context) error {

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

	return client.UpdateMetadata(id, metadataFlags(c))
}

func runVisibility(c *cli.Context) error {

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

	return client.ToggleVisibility(id, !c.Bool("hide"))
}

func runOpen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkIdentity(c, "raffle", true)
	if err != nil {
		return err
	}
	if err := checkRequired(c, "period"); err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.OpenRaffle(id, c.Uint64("period"))
}

func runSettle(c *cli.Context) error {

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

	if c.IsSet("ticket") {
		return client.SettleRaffleWithFixedCount(id, c.Uint64("ticket"))
	}

	response, err := client.SettleRaffle(id)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runFundSpot(c *cli.Context) error {
	return spotAction(c, false)
}

func runWithdrawSpot(c *cli.Context) error {
	return spotAction(c, true)
}

func spotAction(c *cli.Context, withdraw bool) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkIdentity(c, "raffle", true)
	if err != nil {
		return err
	}
	asset, err := checkIdentity(c, "asset", true)
	if err != nil {
		return err
	}
	index := uint32(c.Uint("index"))

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	if withdraw {
		return client.WithdrawSpot(id, index, asset)
	}
	return client.FundSpot(id, index, asset)
}

func runRaffle(c *cli.Context) error {

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

	response, err := client.GetRaffle(id)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSpots(c *cli.Context) error {

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

	response, err := client.Spots(id)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTickets(c *cli.Context) error {

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

	response, err := client.Tickets(id, uint32(c.Uint("start")), c.Int("count"))
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runElapsed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Elapsed()
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
