// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/command/raffle-cli/rpccalls"
	"github.com/bitmark-inc/raffled/fault"
)

var (
	ErrRequiredConnect  = fault.InvalidError("connect is required")
	ErrRequiredFileName = fault.InvalidError("file name is required")
	ErrRequiredKey      = fault.InvalidError("key file is required")
)

// decode a base58 identity flag; a blank optional flag gives the null identity
func checkIdentity(c *cli.Context, name string, required bool) (account.Identity, error) {
	s := c.String(name)
	if "" == s {
		if required {
			return account.Null, fmt.Errorf("%s is required", name)
		}
		return account.Null, nil
	}

	id, err := account.IdentityFromBase58(s)
	if nil != err {
		return account.Null, fmt.Errorf("%s: %q  error: %s", name, s, err)
	}
	return id, nil
}

// the numeric flag must be given
func checkRequired(c *cli.Context, name string) error {
	if !c.IsSet(name) {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// connect using the global flags
func newClient(m *metadata) (*rpccalls.Client, error) {
	if "" == m.connect {
		return nil, ErrRequiredConnect
	}
	return rpccalls.NewClient(m.connect, m.fingerprint, m.key, m.verbose, m.e)
}
