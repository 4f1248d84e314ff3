// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/counter"
	"github.com/bitmark-inc/raffled/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Stop()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// Serve - listen on every address, each is served in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			r.closeAll()
			return err
		}
		r.listeners = append(r.listeners, l)

		go doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Addresses - the bound addresses, useful when listening on port 0
func (r *rpcListener) Addresses() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addresses := make([]net.Addr, len(r.listeners))
	for i, l := range r.listeners {
		addresses[i] = l.Addr()
	}
	return addresses
}

// Stop - close all listeners, open connections finish normally
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()
	r.closeAll()
}

func (r *rpcListener) closeAll() {
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Infof("rpc server: %s  accept terminated: %s", listen.Addr(), err)
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
			log.Warnf("connection limit: %d reached, rejected: %s", maximumConnections, conn.RemoteAddr())
		}
	}
}

// NewRPC - validate the configuration and create a listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: configuration.Listen,
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(configuration.Listen, r.log)
	if nil != err {
		return nil, err
	}

	return &r, nil
}

// "*:PORT" listens on tcp4 and tcp6, "[IPv6]:PORT" and "IPv4:PORT" on
// one family only
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		}
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
