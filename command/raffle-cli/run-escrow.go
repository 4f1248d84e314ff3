// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/raffled/account"
)

// holder defaults to the identity of the signing key
func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	asset, err := checkIdentity(c, "asset", false)
	if err != nil {
		return err
	}
	holder, err := checkIdentity(c, "holder", nil == m.key)
	if err != nil {
		return err
	}
	if holder.IsNull() {
		holder = account.IdentityOfKey(m.key)
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Balance(asset, holder)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	asset, err := checkIdentity(c, "asset", false)
	if err != nil {
		return err
	}
	holder, err := checkIdentity(c, "holder", true)
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

	return client.Deposit(asset, holder, c.Uint64("amount"))
}

func runNodeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	file := c.String("file")
	if "" == file {
		return ErrRequiredFileName
	}

	id, err := account.MakeKeyFile(file)
	if err != nil {
		return err
	}

	printJson(m.w, map[string]string{
		"file":     file,
		"identity": id.String(),
	})
	return nil
}

func runIdentity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if nil == m.key {
		return ErrRequiredKey
	}

	printJson(m.w, map[string]string{
		"identity": account.IdentityOfKey(m.key).String(),
	})
	return nil
}
