// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/counter"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	base
	start   time.Time
	version string
	count   *counter.Counter
	faucet  bool
}

// NewNode - daemon status service
func NewNode(log *logger.L, start time.Time, version string, count *counter.Counter, faucet bool) *Node {
	return &Node{
		base:    newBase(log, nil, rateLimitNode, rateBurstNode),
		start:   start,
		version: version,
		count:   count,
		faucet:  faucet,
	}
}

// InfoReply - results from info request
type InfoReply struct {
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	RPCs    uint64 `json:"rpcs"`
	Faucet  bool   `json:"faucet"`
}

// Info - status of the daemon
func (node *Node) Info(arguments *Empty, reply *InfoReply) error {
	if err := node.query(); nil != err {
		return err
	}
	reply.Version = node.version
	reply.Uptime = time.Since(node.start).String()
	reply.RPCs = node.count.Uint64()
	reply.Faucet = node.faucet
	return nil
}
