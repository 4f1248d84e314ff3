// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/ed25519"
	"crypto/tls"
	"io/ioutil"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/escrow"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc"
	"github.com/bitmark-inc/raffled/rpc/certificate"
	"github.com/bitmark-inc/raffled/rpc/fixtures"
	"github.com/bitmark-inc/raffled/rpc/listeners"
	"github.com/bitmark-inc/raffled/rpc/service"
	"github.com/bitmark-inc/raffled/rpc/signed"
	"github.com/bitmark-inc/raffled/storage"
)

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "raffled-rpc-")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	certificateFile, keyFile, err := fixtures.GenerateCertificate(dir)
	require.Nil(t, err, "generate certificate")

	_, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "test", certificateFile, keyFile)
	require.Nil(t, err, "fingerprint")

	store, err := storage.Open(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	require.Nil(t, err, "storage")
	defer store.Close()

	engine := raffle.New(store, escrow.NewBook(store), nil)

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}

	err = rpc.Initialise(&configuration, engine, "v0.1-test", true)
	require.Nil(t, err, "initialise")

	err = rpc.Initialise(&configuration, engine, "v0.1-test", true)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	addresses := rpc.Addresses()
	require.Equal(t, 1, len(addresses), "addresses")

	conn, err := tls.Dial("tcp", addresses[0].String(), certificate.Pinned(fingerprint))
	require.Nil(t, err, "dial")
	client := jsonrpc.NewClient(conn)

	info := service.InfoReply{}
	err = client.Call(service.NodeInfo, &service.Empty{}, &info)
	require.Nil(t, err, "info")
	assert.Equal(t, "v0.1-test", info.Version, "version")
	assert.True(t, info.Faucet, "faucet")
	assert.Equal(t, uint64(1), info.RPCs, "connections")

	ownerSeed := make([]byte, ed25519.SeedSize)
	ownerSeed[0] = 0x01
	ownerKey := ed25519.NewKeyFromSeed(ownerSeed)
	owner := account.IdentityOfKey(ownerKey)

	envelope, err := signed.Seal(ownerKey, service.PoolCreate, time.Now(), service.CreatePoolArguments{
		Manager:      account.Identity{0x02},
		Seed:         account.Identity{0x03},
		CurrencyMint: account.Identity{0x04},
	})
	require.Nil(t, err, "seal")

	pool := service.PoolReply{}
	err = client.Call(service.PoolCreate, envelope, &pool)
	require.Nil(t, err, "create pool")
	assert.Equal(t, account.PoolIdentity(owner, account.Identity{0x03}), pool.Pool, "pool id")

	err = client.Call(service.PoolCreate, envelope, &pool)
	require.NotNil(t, err, "second create")
	assert.Equal(t, fault.AlreadyExists.Error(), err.Error(), "error text crosses the wire")

	deposit, err := signed.Seal(ownerKey, service.EscrowDeposit, time.Now(), service.DepositArguments{
		Asset:  account.Identity{0x04},
		Holder: owner,
		Amount: 1 << 60,
	})
	require.Nil(t, err, "seal deposit")
	require.Nil(t, client.Call(service.EscrowDeposit, deposit, &service.Empty{}), "deposit")

	balance := service.BalanceReply{}
	err = client.Call(service.EscrowBalance, &service.BalanceArguments{Asset: account.Identity{0x04}, Holder: owner}, &balance)
	require.Nil(t, err, "balance")
	assert.Equal(t, uint64(1<<60), balance.Balance, "large amounts survive JSON")

	p := raffle.Pool{}
	err = client.Call(service.PoolGet, &service.PoolArguments{Pool: pool.Pool}, &p)
	require.Nil(t, err, "pool get")
	assert.Equal(t, owner, p.Owner, "owner")

	_ = client.Close()

	require.Nil(t, rpc.Finalise(), "finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "second finalise")
	assert.Nil(t, rpc.Addresses(), "no addresses after finalise")
}

func TestInitialiseMissingCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	configuration := listeners.RPCConfiguration{
		MaximumConnections: 10,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "/nonexistent/rpc.crt",
		PrivateKey:         "/nonexistent/rpc.key",
	}

	err := rpc.Initialise(&configuration, nil, "v0.1-test", false)
	assert.NotNil(t, err, "missing certificate")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "not started")
}
