// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/selector"
)

func TestWinner(t *testing.T) {
	items := []struct {
		tickets  uint64
		seed     uint64
		i        uint64
		expected uint32
	}{
		{10, 0, 0, 0},
		{10, 1000, 0, 0},
		{10, 1001, 0, 1},
		{10, 1000, 1, 2},      // 1001*2 = 2002
		{10, 1000, 2, 6},      // 1002*3 = 3006
		{7, 1640995200, 3, 4}, // 1640995203*4 = 6563980812
		{1, 123456789, 9, 0},
	}

	for i, item := range items {
		actual, err := selector.Winner(item.tickets, item.seed, item.i)
		assert.Nil(t, err, "%d: winner error", i)
		assert.Equal(t, item.expected, actual, "%d: wrong winner", i)
		assert.True(t, uint64(actual) < item.tickets, "%d: winner out of range", i)
	}
}

func TestWinnerOverflow(t *testing.T) {
	seed := ^uint64(0)

	_, err := selector.Winner(13, seed, 1)
	assert.Equal(t, fault.NumericalOverflow, err, "seed + i wrapped")

	// (2^63 + 1) * 2 does not fit
	_, err = selector.Winner(13, 1<<63, 1)
	assert.Equal(t, fault.NumericalOverflow, err, "product wrapped")

	// (2^63 - 2 + 1) * 2 = 2^64 - 2 fits
	w, err := selector.Winner(13, 1<<63-2, 1)
	assert.Nil(t, err, "largest product rejected")
	assert.Equal(t, uint32((^uint64(0)-1)%13), w, "largest product")

	_, err = selector.Select(5, seed, make([]uint32, 2))
	assert.Equal(t, fault.NumericalOverflow, err, "select passed overflow on")
}

func TestSelect(t *testing.T) {
	seed := uint64(1700000000)
	tickets := uint32(37)

	winners, err := selector.Select(tickets, seed, make([]uint32, 5))
	assert.Nil(t, err, "select error")
	assert.Equal(t, 5, len(winners), "one winner per spot")
	for i, w := range winners {
		expected := uint32(((seed + uint64(i)) * uint64(i+1)) % uint64(tickets))
		assert.Equal(t, expected, w, "spot %d", i)
		assert.True(t, w < tickets, "spot %d out of range", i)
	}

	again, _ := selector.Select(tickets, seed, make([]uint32, 5))
	assert.Equal(t, winners, again, "selection not reproducible")
}

func TestSelectKeepsExisting(t *testing.T) {
	seed := uint64(1000)
	existing := []uint32{0, 9, 0}

	winners, err := selector.Select(10, seed, existing)
	assert.Nil(t, err, "select error")
	assert.Equal(t, []uint32{0, 9, 6}, winners, "existing winner not kept")
	assert.Equal(t, []uint32{0, 9, 0}, existing, "input modified")
}

func TestSelectNoTickets(t *testing.T) {
	_, err := selector.Select(0, 1, make([]uint32, 3))
	assert.Equal(t, fault.NoTickets, err, "selected from an empty ledger")
}

func TestFixed(t *testing.T) {
	assert.Equal(t, []uint32{4, 4, 4}, selector.Fixed(3, 4), "wrong fixed vector")
	assert.Equal(t, []uint32{1, 1}, selector.Fixed(2, 1<<32+1), "value not truncated")
	assert.Equal(t, []uint32{}, selector.Fixed(0, 4), "empty store")
}
