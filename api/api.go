// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package api - read-only HTTP views of pools, raffles and balances
// plus the prometheus metrics endpoint
package api

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc/certificate"
)

const (
	logName          = "http_api"
	readWriteTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
	metricsPath      = "metrics"
)

// Configuration - configuration file data for the HTTP API
//
// Allow maps a path name ("metrics") to the CIDRs that may use it;
// metrics are loopback only when no entry is given.  A blank
// certificate serves plain HTTP.
type Configuration struct {
	Listen      []string            `gluamapper:"listen" json:"listen"`
	Certificate string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey  string              `gluamapper:"private_key" json:"private_key"`
	Allow       map[string][]string `gluamapper:"allow" json:"allow"`
}

// Server - the HTTP API
type Server struct {
	sync.Mutex
	log       *logger.L
	listen    []string
	tlsConfig *tls.Config
	router    *gin.Engine
	servers   []*http.Server
}

// New - validate the configuration and build the routes
func New(configuration *Configuration, engine *raffle.Engine, registry *prometheus.Registry) (*Server, error) {
	log := logger.New("api")

	allow := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("%s allow: %q  error: %s", logName, ip, err)
				return nil, fault.InvalidIpAddress
			}
			set[i] = cidr
		}
		allow[path] = set
	}

	s := &Server{
		log:    log,
		listen: configuration.Listen,
	}

	if 0 != len(configuration.Listen) && "" != configuration.Certificate {
		tlsConfig, fingerprint, err := certificate.Load(log, logName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			return nil, err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)
		s.tlsConfig = tlsConfig
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLog(log))

	h := &handler{
		log:    log,
		engine: engine,
	}

	v1 := router.Group("/v1")
	v1.GET("/pools/:pool", h.pool)
	v1.GET("/pools/:pool/raffles", h.raffles)
	v1.GET("/raffles/:raffle", h.raffle)
	v1.GET("/raffles/:raffle/spots", h.spots)
	v1.GET("/raffles/:raffle/tickets", h.tickets)
	v1.GET("/raffles/:raffle/buyers/:buyer", h.buyer)
	v1.GET("/balances/:asset/:holder", h.balance)
	v1.GET("/elapsed", h.elapsed)

	metrics := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	router.GET("/"+metricsPath, restrict(log, allow[metricsPath]), gin.WrapH(metrics))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": fault.NotFound.Error()})
	})

	s.router = router
	return s, nil
}

// Handler - the routes, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve - start a server on every listen address
func (s *Server) Serve() error {
	s.Lock()
	defer s.Unlock()

	if 0 == len(s.listen) {
		s.log.Infof("disable: %s", logName)
		return nil
	}

	for _, listen := range s.listen {
		if strings.HasPrefix(listen, "*:") {
			// change "*:PORT" to "[::]:PORT"
			listen = "[::]" + listen[1:]
		}

		ln, err := net.Listen("tcp", listen)
		if nil != err {
			s.log.Errorf("%s listen: %q  error: %s", logName, listen, err)
			return err
		}
		if nil != s.tlsConfig {
			ln = tls.NewListener(ln, s.tlsConfig)
		}

		server := &http.Server{
			Handler:        s.router,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		s.servers = append(s.servers, server)

		s.log.Infof("starting server: %s on: %q", logName, ln.Addr())
		go func() {
			err := server.Serve(ln)
			if nil != err && http.ErrServerClosed != err {
				s.log.Errorf("%s serve error: %s", logName, err)
			}
		}()
	}
	return nil
}

// Stop - shut down all servers
func (s *Server) Stop() {
	s.Lock()
	defer s.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, server := range s.servers {
		if err := server.Shutdown(ctx); nil != err {
			s.log.Warnf("%s shutdown error: %s", logName, err)
		}
	}
	s.servers = nil
}

// log each request at debug level
func requestLog(log *logger.L) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debugf("%s %s  status: %d  from: %s  elapsed: %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), c.RemoteIP(), time.Since(start))
	}
}

// only allow the listed networks, loopback when the list is empty
func restrict(log *logger.L, allowed []*net.IPNet) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := net.ParseIP(c.RemoteIP())
		if nil != ip {
			if 0 == len(allowed) && ip.IsLoopback() {
				c.Next()
				return
			}
			for _, cidr := range allowed {
				if cidr.Contains(ip) {
					c.Next()
					return
				}
			}
		}
		log.Warnf("deny access: %q to: %s", c.Request.RemoteAddr, c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
