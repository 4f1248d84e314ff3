// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus collectors for the raffle engine
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/bitmark-inc/raffled/fault"
)

const namespace = "raffled"

// settlement outcomes
const (
	Settled  = "settled"
	Reverted = "reverted"
	Fixed    = "fixed"
)

// Collectors - the engine collectors on a private registry
type Collectors struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	tickets     prometheus.Counter
	settlements *prometheus.CounterVec
	claims      prometheus.Counter
	elapsed     prometheus.Gauge
}

// New - create and register all collectors
func New() *Collectors {
	c := &Collectors{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Committed engine operations.",
		}, []string{"operation"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Rejected engine operations by error kind.",
		}, []string{"operation", "kind"}),
		tickets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_sold_total",
			Help:      "Tickets appended to ledgers.",
		}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlement calls by outcome.",
		}, []string{"outcome"}),
		claims: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_total",
			Help:      "Prizes paid to winners.",
		}),
		elapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "elapsed_open_raffles",
			Help:      "Open raffles whose sale window has ended.",
		}),
	}

	c.registry.MustRegister(
		c.operations,
		c.rejected,
		c.tickets,
		c.settlements,
		c.claims,
		c.elapsed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry - for serving /metrics
func (c *Collectors) Registry() *prometheus.Registry {
	return c.registry
}

// Operation - count one finished operation
func (c *Collectors) Operation(operation string, err error) {
	if nil == err {
		c.operations.WithLabelValues(operation).Inc()
		return
	}
	c.rejected.WithLabelValues(operation, kind(err)).Inc()
}

// TicketsSold - add to the ticket total
func (c *Collectors) TicketsSold(n uint32) {
	c.tickets.Add(float64(n))
}

// Settlement - count one settlement by outcome
func (c *Collectors) Settlement(outcome string) {
	c.settlements.WithLabelValues(outcome).Inc()
}

// Claim - count one paid prize
func (c *Collectors) Claim() {
	c.claims.Inc()
}

// SetElapsed - current number of open raffles past their window
func (c *Collectors) SetElapsed(n int) {
	c.elapsed.Set(float64(n))
}

// error messages are fixed strings, so they make bounded label values;
// anything else is collapsed into one label
func kind(err error) string {
	switch err.(type) {
	case fault.ExistsError, fault.InvalidError, fault.LengthError,
		fault.NotFoundError, fault.ProcessError, fault.RecordError:
		return err.Error()
	default:
		return "other"
	}
}
