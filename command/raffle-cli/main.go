// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ed25519"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/raffled/account"
)

type metadata struct {
	connect     string
	fingerprint string
	key         ed25519.PrivateKey
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "raffle-cli"
	app.Usage = "manage pools and raffles on a raffled node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " raffled host/IP and port, `HOST:PORT`",
			EnvVar: "RAFFLE_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " request signing key `FILE`",
			EnvVar: "RAFFLE_KEY",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " expected SHA3-256 RPC certificate fingerprint `HEX`",
			EnvVar: "RAFFLE_FINGERPRINT",
		},
	}

	poolFlag := cli.StringFlag{
		Name:  "pool, p",
		Value: "",
		Usage: "*pool identity `BASE58`",
	}
	raffleFlag := cli.StringFlag{
		Name:  "raffle, r",
		Value: "",
		Usage: "*raffle identity `BASE58`",
	}
	amountFlag := cli.Uint64Flag{
		Name:  "amount, a",
		Usage: "*amount `COUNT`",
	}
	displayFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "name, n",
			Value: "",
			Usage: " room name `STRING`",
		},
		cli.StringFlag{
			Name:  "logo",
			Value: "",
			Usage: " logo `URL`",
		},
		cli.StringFlag{
			Name:  "discord",
			Value: "",
			Usage: " discord `URL`",
		},
		cli.StringFlag{
			Name:  "twitter",
			Value: "",
			Usage: " twitter `HANDLE`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a request signing key file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*new key `FILE`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "identity",
			Usage:  "display the identity of the signing key",
			Action: runIdentity,
		},
		{
			Name:   "info",
			Usage:  "display raffled status",
			Action: runNodeInfo,
		},
		{
			Name:      "create-pool",
			Usage:     "create a pool owned by the signing key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "manager, m",
					Value: "",
					Usage: "*manager identity `BASE58`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "*pool seed `BASE58`",
				},
				cli.StringFlag{
					Name:  "currency, y",
					Value: "",
					Usage: "*ticket currency mint `BASE58`",
				},
			},
			Action: runCreatePool,
		},
		{
			Name:      "transfer-pool",
			Usage:     "hand a pool to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*new owner `BASE58`",
				},
			},
			Action: runTransferPool,
		},
		{
			Name:      "set-manager",
			Usage:     "replace the pool manager",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag,
				cli.StringFlag{
					Name:  "manager, m",
					Value: "",
					Usage: "*new manager `BASE58`",
				},
			},
			Action: runSetManager,
		},
		{
			Name:      "pause",
			Usage:     "set the pool pause flag",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag,
				cli.BoolFlag{
					Name:  "resume",
					Usage: " clear the flag instead",
				},
			},
			Action: runSetPause,
		},
		{
			Name:      "manager-claim",
			Usage:     "move native currency from pool custody to the manager",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{poolFlag, amountFlag},
			Action:    runManagerClaim,
		},
		{
			Name:      "redeem",
			Usage:     "move pool currency from custody to a destination",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				poolFlag,
				amountFlag,
				cli.StringFlag{
					Name:  "destination, d",
					Value: "",
					Usage: "*receiving identity `BASE58`",
				},
			},
			Action: runRedeem,
		},
		{
			Name:      "pool",
			Usage:     "display a pool",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{poolFlag},
			Action:    runPool,
		},
		{
			Name:      "raffles",
			Usage:     "list the raffles of a pool",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{poolFlag},
			Action:    runRaffles,
		},
		{
			Name:      "create-raffle",
			Usage:     "create a pending raffle",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				poolFlag,
				cli.Uint64Flag{
					Name:  "value",
					Usage: "*ticket price `COUNT`",
				},
				cli.UintFlag{
					Name:  "spots",
					Usage: "*number of prize spots `COUNT`",
				},
				cli.UintFlag{
					Name:  "max",
					Usage: "*maximum tickets `COUNT`",
				},
				cli.UintFlag{
					Name:  "per-buyer",
					Usage: " maximum tickets per buyer, 0 = no limit `COUNT`",
				},
			}, displayFlags...),
			Action: runCreateRaffle,
		},
		{
			Name:      "update-metadata",
			Usage:     "replace the raffle display fields",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{raffleFlag}, displayFlags...),
			Action:    runUpdateMetadata,
		},
		{
			Name:      "visibility",
			Usage:     "show or hide a raffle",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				raffleFlag,
				cli.BoolFlag{
					Name:  "hide",
					Usage: " hide instead of show",
				},
			},
			Action: runVisibility,
		},
		{
			Name:      "fund-spot",
			Usage:     "place a prize into a spot",
			ArgsUsage: "\n   (* = required)",
			Flags:     spotFlags(raffleFlag),
			Action:    runFundSpot,
		},
		{
			Name:      "withdraw-spot",
			Usage:     "take a prize back out of a spot",
			ArgsUsage: "\n   (* = required)",
			Flags:     spotFlags(raffleFlag),
			Action:    runWithdrawSpot,
		},
		{
			Name:      "open",
			Usage:     "start the sale window",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				raffleFlag,
				cli.Uint64Flag{
					Name:  "period",
					Usage: "*window length `SECONDS`",
				},
			},
			Action: runOpen,
		},
		{
			Name:      "settle",
			Usage:     "draw the winners",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				raffleFlag,
				cli.Uint64Flag{
					Name:  "ticket",
					Usage: " manager override: give every spot this `TICKET`",
				},
			},
			Action: runSettle,
		},
		{
			Name:      "raffle",
			Usage:     "display a raffle",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{raffleFlag},
			Action:    runRaffle,
		},
		{
			Name:      "spots",
			Usage:     "display the prize spots of a raffle",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{raffleFlag},
			Action:    runSpots,
		},
		{
			Name:      "tickets",
			Usage:     "list ticket buyers",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				raffleFlag,
				cli.UintFlag{
					Name:  "start, s",
					Usage: " first ticket `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " page size `COUNT`",
				},
			},
			Action: runTickets,
		},
		{
			Name:   "elapsed",
			Usage:  "list open raffles whose window has passed",
			Action: runElapsed,
		},
		{
			Name:      "register",
			Usage:     "register the signing key as a buyer",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{raffleFlag},
			Action:    runRegister,
		},
		{
			Name:      "buy",
			Usage:     "buy tickets",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				raffleFlag,
				cli.UintFlag{
					Name:  "count, n",
					Value: 1,
					Usage: " number of tickets `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "side-payment",
					Usage: " native currency paid when the pool is paused `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "claim",
			Usage:     "collect the prize of a won spot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				raffleFlag,
				cli.UintFlag{
					Name:  "index, i",
					Usage: "*spot `INDEX`",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "ticket-count",
			Usage:     "tickets bought by a buyer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				raffleFlag,
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: " buyer identity, default is the signing key `BASE58`",
				},
			},
			Action: runTicketCount,
		},
		{
			Name:      "balance",
			Usage:     "escrow balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: " asset identity, default is native currency `BASE58`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " holder identity, default is the signing key `BASE58`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "deposit",
			Usage:     "create a balance on a node running a faucet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: " asset identity, default is native currency `BASE58`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: "*holder identity `BASE58`",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*amount `COUNT`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:  "version",
			Usage: "display raffle-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the signing key
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			connect:     c.GlobalString("connect"),
			fingerprint: c.GlobalString("fingerprint"),
			verbose:     verbose,
			e:           e,
			w:           w,
		}
		c.App.Metadata["config"] = m

		command := c.Args().Get(0)
		if "version" == command || "generate" == command {
			return nil
		}

		keyFile := c.GlobalString("key")
		if "" == keyFile {
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading key file: %s\n", keyFile)
		}
		key, err := account.PrivateKeyFromFile(keyFile)
		if nil != err {
			return fmt.Errorf("key file: %q  error: %s", keyFile, err)
		}
		m.key = key

		if verbose {
			fmt.Fprintf(e, "identity: %s\n", account.IdentityOfKey(key))
			if "" == m.fingerprint {
				fmt.Fprintf(e, "warning: server certificate is not verified\n")
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func spotFlags(raffleFlag cli.Flag) []cli.Flag {
	return []cli.Flag{
		raffleFlag,
		cli.UintFlag{
			Name:  "index, i",
			Usage: "*spot `INDEX`",
		},
		cli.StringFlag{
			Name:  "asset, a",
			Value: "",
			Usage: "*prize asset identity `BASE58`",
		},
	}
}
