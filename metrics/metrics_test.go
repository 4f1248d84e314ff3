// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/metrics"
)

func TestOperation(t *testing.T) {
	c := metrics.New()

	c.Operation("buy_ticket", nil)
	c.Operation("buy_ticket", nil)
	c.Operation("buy_ticket", fault.Overflow)
	c.Operation("claim", fmt.Errorf("disk on fire"))

	expected := `
# HELP raffled_operations_total Committed engine operations.
# TYPE raffled_operations_total counter
raffled_operations_total{operation="buy_ticket"} 2
# HELP raffled_rejected_total Rejected engine operations by error kind.
# TYPE raffled_rejected_total counter
raffled_rejected_total{kind="other",operation="claim"} 1
raffled_rejected_total{kind="overflow",operation="buy_ticket"} 1
`
	err := testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"raffled_operations_total", "raffled_rejected_total")
	assert.Nil(t, err, "unexpected metrics")
}

func TestCounters(t *testing.T) {
	c := metrics.New()

	c.TicketsSold(4)
	c.TicketsSold(6)
	c.Settlement(metrics.Settled)
	c.Settlement(metrics.Reverted)
	c.Settlement(metrics.Settled)
	c.Claim()
	c.SetElapsed(3)

	expected := `
# HELP raffled_claims_total Prizes paid to winners.
# TYPE raffled_claims_total counter
raffled_claims_total 1
# HELP raffled_elapsed_open_raffles Open raffles whose sale window has ended.
# TYPE raffled_elapsed_open_raffles gauge
raffled_elapsed_open_raffles 3
# HELP raffled_settlements_total Settlement calls by outcome.
# TYPE raffled_settlements_total counter
raffled_settlements_total{outcome="reverted"} 1
raffled_settlements_total{outcome="settled"} 2
# HELP raffled_tickets_sold_total Tickets appended to ledgers.
# TYPE raffled_tickets_sold_total counter
raffled_tickets_sold_total 10
`
	err := testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"raffled_claims_total", "raffled_elapsed_open_raffles",
		"raffled_settlements_total", "raffled_tickets_sold_total")
	assert.Nil(t, err, "unexpected metrics")
}
