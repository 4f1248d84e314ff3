// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/counter"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/service"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, engine *raffle.Engine, faucet bool) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(service.NewPool(log, engine))
	_ = server.Register(service.NewRaffle(log, engine))
	_ = server.Register(service.NewTicket(log, engine))
	_ = server.Register(service.NewEscrow(log, engine, faucet))
	_ = server.Register(service.NewNode(log, start, version, rpcCount, faucet))

	return server
}
