// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/counter"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/certificate"
	"github.com/bitmark-inc/raffled/rpc/listeners"
	"github.com/bitmark-inc/raffled/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, engine *raffle.Engine, version string, faucet bool) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, engine, faucet),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = rpcListener

	if faucet {
		log.Warn("faucet enabled: deposits are accepted")
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Addresses - where the listeners are bound
func Addresses() []net.Addr {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil
	}
	return globalData.listener.Addresses()
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.listener.Stop()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
