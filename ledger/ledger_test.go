// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/ledger"
)

var (
	raffleId = account.Identity{0x52}
	buyerA   = account.Identity{0x0a}
	buyerB   = account.Identity{0x0b}
)

func TestEmpty(t *testing.T) {
	l := ledger.New(raffleId, 10)

	assert.Equal(t, uint32(0), l.TicketCount(), "new ledger not empty")
	assert.Equal(t, uint32(10), l.Capacity(), "wrong capacity")
	assert.Equal(t, raffleId, l.Raffle(), "wrong owner")
	assert.Equal(t, ledger.Tag, l.Tag(), "wrong tag")
	assert.Equal(t, 44+32*10, len(l.Bytes()), "wrong buffer size")

	_, err := l.BuyerAt(0)
	assert.Equal(t, fault.IndexOutOfRange, err, "read from empty ledger")
}

func TestAppend(t *testing.T) {
	l := ledger.New(raffleId, 10)

	require.Nil(t, l.Append(buyerA, 4), "append A")
	require.Nil(t, l.Append(buyerB, 6), "append B")
	assert.Equal(t, uint32(10), l.TicketCount(), "count is not the sum of purchases")

	for i := uint32(0); i < 4; i += 1 {
		b, err := l.BuyerAt(i)
		assert.Nil(t, err, "ticket %d", i)
		assert.Equal(t, buyerA, b, "ticket %d", i)
	}
	for i := uint32(4); i < 10; i += 1 {
		b, err := l.BuyerAt(i)
		assert.Nil(t, err, "ticket %d", i)
		assert.Equal(t, buyerB, b, "ticket %d", i)
	}

	_, err := l.BuyerAt(10)
	assert.Equal(t, fault.IndexOutOfRange, err, "read past count")
}

func TestCapacityExceeded(t *testing.T) {
	l := ledger.New(raffleId, 5)
	require.Nil(t, l.Append(buyerA, 3))

	before := append([]byte{}, l.Bytes()...)
	err := l.Append(buyerB, 3)
	assert.Equal(t, fault.CapacityExceeded, err, "overfilled ledger")
	assert.Equal(t, before, l.Bytes(), "failed append modified the buffer")

	assert.Nil(t, l.Append(buyerB, 2), "exact fill rejected")
	assert.Equal(t, uint32(5), l.TicketCount(), "wrong count")
}

func TestLayout(t *testing.T) {
	l := ledger.New(raffleId, 3)
	require.Nil(t, l.Append(buyerA, 1))
	require.Nil(t, l.Append(buyerB, 2))

	b := l.Bytes()
	assert.Equal(t, raffleId[:], b[8:40], "owner not at offset 8")
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(b[40:44]), "count not at offset 40")
	assert.Equal(t, buyerA[:], b[44:76], "ticket 0 misplaced")
	assert.Equal(t, buyerB[:], b[76:108], "ticket 1 misplaced")
	assert.Equal(t, buyerB[:], b[108:140], "ticket 2 misplaced")
}

func TestLoad(t *testing.T) {
	l := ledger.New(raffleId, 4)
	require.Nil(t, l.Append(buyerA, 2))

	reloaded, err := ledger.Load(append([]byte{}, l.Bytes()...))
	require.Nil(t, err, "load error")
	assert.Equal(t, uint32(2), reloaded.TicketCount(), "count lost")
	b, err := reloaded.BuyerAt(1)
	assert.Nil(t, err)
	assert.Equal(t, buyerA, b, "buyer lost")

	_, err = ledger.Load([]byte{1, 2, 3})
	assert.Equal(t, fault.BufferTooSmall, err, "short buffer loaded")
}
