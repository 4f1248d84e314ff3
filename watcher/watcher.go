// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - periodically report open raffles whose sale
// window has passed so that the operator can settle them
package watcher

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/constants"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/raffle"
)

//go:generate mockgen -source=watcher.go -destination=mocks/watcher.go -package=mocks

// Scanner - source of raffles awaiting settlement
type Scanner interface {
	Elapsed() ([]*raffle.Raffle, error)
}

// Gauge - receives the number of raffles awaiting settlement
type Gauge interface {
	SetElapsed(n int)
}

// Configuration - configuration file data for the watcher
type Configuration struct {
	Interval string `gluamapper:"interval" json:"interval"`
}

// Watcher - background process state
type Watcher struct {
	log      *logger.L
	scanner  Scanner
	gauge    Gauge
	interval time.Duration
	reported map[account.Identity]struct{}
}

// New - create a watcher; a blank interval selects the default
func New(configuration *Configuration, scanner Scanner, gauge Gauge) (*Watcher, error) {
	interval := constants.WatcherInterval
	if "" != configuration.Interval {
		d, err := time.ParseDuration(configuration.Interval)
		if nil != err || d <= 0 {
			return nil, fault.InvalidInterval
		}
		interval = d
	}

	return &Watcher{
		log:      logger.New("watcher"),
		scanner:  scanner,
		gauge:    gauge,
		interval: interval,
		reported: make(map[account.Identity]struct{}),
	}, nil
}

// Run - scan once at start then on every tick until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("starting… interval: %s", w.interval)

	tick := time.NewTicker(w.interval)
	defer tick.Stop()

	_, _ = w.Scan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-tick.C:
			_, _ = w.Scan()
		}
	}

	w.log.Info("finished")
}

// Scan - find the raffles awaiting settlement
//
// each raffle is logged at warning level the first time it is seen
func (w *Watcher) Scan() ([]account.Identity, error) {
	raffles, err := w.scanner.Elapsed()
	if nil != err {
		w.log.Errorf("scan error: %s", err)
		return nil, err
	}

	w.gauge.SetElapsed(len(raffles))

	ids := make([]account.Identity, 0, len(raffles))
	current := make(map[account.Identity]struct{}, len(raffles))
	for _, r := range raffles {
		ids = append(ids, r.Id)
		current[r.Id] = struct{}{}
		if _, ok := w.reported[r.Id]; ok {
			continue
		}
		w.log.Warnf("raffle: %s  pool: %s  sale ended: %d  tickets can be settled", r.Id, r.Pool, r.Deadline())
	}
	w.reported = current

	if len(ids) > 0 {
		w.log.Debugf("awaiting settlement: %d", len(ids))
	}
	return ids, nil
}
