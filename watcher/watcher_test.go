// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher_test

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/background"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/watcher"
	"github.com/bitmark-inc/raffled/watcher/mocks"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "raffled-watcher-log-")
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

func elapsedRaffle(b byte) *raffle.Raffle {
	return &raffle.Raffle{
		Id:        account.Identity{b},
		Pool:      account.Identity{0x77},
		Status:    raffle.Open,
		StartTime: 1000,
		Period:    60,
	}
}

func TestNewInterval(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	scanner := mocks.NewMockScanner(ctl)
	gauge := mocks.NewMockGauge(ctl)

	_, err := watcher.New(&watcher.Configuration{}, scanner, gauge)
	assert.Nil(t, err, "default interval")

	_, err = watcher.New(&watcher.Configuration{Interval: "30s"}, scanner, gauge)
	assert.Nil(t, err, "30s")

	_, err = watcher.New(&watcher.Configuration{Interval: "soon"}, scanner, gauge)
	assert.Equal(t, fault.InvalidInterval, err, "unparsable")

	_, err = watcher.New(&watcher.Configuration{Interval: "-1m"}, scanner, gauge)
	assert.Equal(t, fault.InvalidInterval, err, "negative")
}

func TestScan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	scanner := mocks.NewMockScanner(ctl)
	gauge := mocks.NewMockGauge(ctl)

	first := elapsedRaffle(0x01)
	second := elapsedRaffle(0x02)

	gomock.InOrder(
		scanner.EXPECT().Elapsed().Return([]*raffle.Raffle{first, second}, nil),
		gauge.EXPECT().SetElapsed(2),
		scanner.EXPECT().Elapsed().Return([]*raffle.Raffle{second}, nil),
		gauge.EXPECT().SetElapsed(1),
		scanner.EXPECT().Elapsed().Return(nil, nil),
		gauge.EXPECT().SetElapsed(0),
	)

	w, err := watcher.New(&watcher.Configuration{}, scanner, gauge)
	require.Nil(t, err, "new")

	ids, err := w.Scan()
	assert.Nil(t, err, "first scan")
	assert.Equal(t, []account.Identity{first.Id, second.Id}, ids, "first scan ids")

	ids, err = w.Scan()
	assert.Nil(t, err, "second scan")
	assert.Equal(t, []account.Identity{second.Id}, ids, "second scan ids")

	ids, err = w.Scan()
	assert.Nil(t, err, "third scan")
	assert.Equal(t, 0, len(ids), "third scan ids")
}

func TestScanError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	scanner := mocks.NewMockScanner(ctl)
	gauge := mocks.NewMockGauge(ctl)

	scanner.EXPECT().Elapsed().Return(nil, fault.DatabaseIsNotSet)
	gauge.EXPECT().SetElapsed(gomock.Any()).Times(0)

	w, err := watcher.New(&watcher.Configuration{}, scanner, gauge)
	require.Nil(t, err, "new")

	ids, err := w.Scan()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "scan error")
	assert.Nil(t, ids, "no ids")
}

func TestRun(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	scanner := mocks.NewMockScanner(ctl)
	gauge := mocks.NewMockGauge(ctl)

	var scans int32
	scanner.EXPECT().Elapsed().DoAndReturn(func() ([]*raffle.Raffle, error) {
		atomic.AddInt32(&scans, 1)
		return []*raffle.Raffle{elapsedRaffle(0x03)}, nil
	}).MinTimes(2)
	gauge.EXPECT().SetElapsed(1).MinTimes(2)

	w, err := watcher.New(&watcher.Configuration{Interval: "5ms"}, scanner, gauge)
	require.Nil(t, err, "new")

	p := background.Start(background.Processes{w}, nil)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	n := atomic.LoadInt32(&scans)
	assert.True(t, n >= 2, "scans: %d", n)
}
