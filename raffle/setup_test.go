// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/escrow"
	"github.com/bitmark-inc/raffled/metrics"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/storage"
)

var (
	owner   = account.Identity{0x01}
	manager = account.Identity{0x02}
	alice   = account.Identity{0xa1}
	bob     = account.Identity{0xb0}
	carol   = account.Identity{0xc0}
	seed    = account.Identity{0x5e}
	mint    = account.Identity{0x4d}
	nfts    = []account.Identity{{0xe1}, {0xe2}, {0xe3}}
)

// start of the first sale window in all tests
var openTime = time.Unix(1699999000, 0)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "raffled-engine-log-")
	if nil != err {
		panic(err)
	}
	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

type fixture struct {
	t       *testing.T
	dir     string
	store   *storage.Store
	book    *escrow.Book
	metrics *metrics.Collectors
	engine  *raffle.Engine
	now     time.Time
	pool    account.Identity
}

// an engine on an empty database with one pool
func newFixture(t *testing.T) *fixture {
	return newFixtureWithGateway(t, nil)
}

// the book is used when gateway is nil
func newFixtureWithGateway(t *testing.T, gateway escrow.Gateway) *fixture {
	dir, err := os.MkdirTemp("", "raffled-engine-")
	require.Nil(t, err, "temp dir")

	s, err := storage.Open(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	require.Nil(t, err, "storage open")

	f := &fixture{
		t:       t,
		dir:     dir,
		store:   s,
		book:    escrow.NewBook(s),
		metrics: metrics.New(),
		now:     openTime,
	}
	if nil == gateway {
		gateway = f.book
	}
	f.engine = raffle.New(s, gateway, f.metrics)
	f.engine.SetClock(func() time.Time { return f.now })

	f.pool, err = f.engine.CreatePool(owner, manager, seed, mint)
	require.Nil(t, err, "create pool")
	return f
}

func (f *fixture) close() {
	f.store.Close()
	os.RemoveAll(f.dir)
}

func (f *fixture) at(seconds int64) {
	f.now = openTime.Add(time.Duration(seconds) * time.Second)
}

func defaultParameters() raffle.Parameters {
	return raffle.Parameters{
		Metadata: raffle.Metadata{
			Name:    "monthly draw",
			Logo:    "https://example.com/logo.png",
			Discord: "https://discord.gg/example",
			Twitter: "@example",
		},
		TicketValue: 5,
		SpotCount:   3,
		MaxTickets:  10,
		MaxPerBuyer: 0,
	}
}

func (f *fixture) createRaffle(parameters raffle.Parameters) account.Identity {
	id, err := f.engine.CreateRaffle(owner, f.pool, parameters)
	require.Nil(f.t, err, "create raffle")
	return id
}

// a raffle opened at openTime for one hour
func (f *fixture) openRaffle(parameters raffle.Parameters) account.Identity {
	id := f.createRaffle(parameters)
	require.Nil(f.t, f.engine.OpenRaffle(owner, id, 3600), "open raffle")
	return id
}

func (f *fixture) deposit(asset account.Identity, holder account.Identity, amount uint64) {
	require.Nil(f.t, f.engine.Deposit(asset, holder, amount), "deposit")
}

// every committed key/value pair
func (f *fixture) snapshot() []storage.Element {
	elements, err := f.store.Elements()
	require.Nil(f.t, err, "snapshot")
	return elements
}

func (f *fixture) balance(asset account.Identity, holder account.Identity) uint64 {
	return f.book.Balance(asset, holder)
}

func repeat(id account.Identity, n int) []account.Identity {
	ids := make([]account.Identity, n)
	for i := range ids {
		ids[i] = id
	}
	return ids
}
