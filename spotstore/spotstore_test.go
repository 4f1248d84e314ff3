// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spotstore_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/spotstore"
)

var raffleId = account.Identity{0x52}

func TestPack(t *testing.T) {
	spot := spotstore.Spot{
		Asset:        account.Identity{1, 2, 3},
		WinnerTicket: 0x0a0b0c0d,
		Claimed:      true,
	}

	record := spot.Pack()
	assert.Equal(t, 37, len(record), "wrong record size")
	assert.Equal(t, byte(1), record[0], "asset not first")
	assert.Equal(t, uint32(0x0a0b0c0d), binary.LittleEndian.Uint32(record[32:36]), "winner not little endian at 32")
	assert.Equal(t, byte(1), record[36], "claimed flag not last")

	unpacked, err := spotstore.Unpack(record)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, spot, unpacked, "spot changed by pack/unpack")

	_, err = spotstore.Unpack(record[:36])
	assert.Equal(t, fault.InvalidRecordSize, err, "short record unpacked")
}

func TestNew(t *testing.T) {
	s := spotstore.New(raffleId, 3)

	assert.Equal(t, uint32(3), s.SpotCount(), "wrong spot count")
	assert.Equal(t, raffleId, s.Raffle(), "wrong owner")
	assert.Equal(t, spotstore.Tag, s.Tag(), "wrong tag")
	assert.Equal(t, 44+37*3, len(s.Bytes()), "wrong buffer size")

	for i := uint32(0); i < 3; i += 1 {
		spot, err := s.Get(i)
		assert.Nil(t, err, "spot %d", i)
		assert.Equal(t, spotstore.Spot{}, spot, "spot %d not empty", i)
	}
}

func TestSetGet(t *testing.T) {
	s := spotstore.New(raffleId, 2)

	spot := spotstore.Spot{Asset: account.Identity{7}, WinnerTicket: 3}
	require.Nil(t, s.Set(1, spot), "set error")

	actual, err := s.Get(1)
	assert.Nil(t, err, "get error")
	assert.Equal(t, spot, actual, "spot changed by set/get")

	untouched, _ := s.Get(0)
	assert.Equal(t, spotstore.Spot{}, untouched, "neighbouring spot modified")

	b := s.Bytes()
	assert.Equal(t, byte(7), b[44+37], "spot 1 misplaced")

	err = s.Set(2, spot)
	assert.Equal(t, fault.IndexOutOfRange, err, "set past spot count")
	_, err = s.Get(2)
	assert.Equal(t, fault.IndexOutOfRange, err, "get past spot count")
}

func TestAssignWinners(t *testing.T) {
	s := spotstore.New(raffleId, 3)
	require.Nil(t, s.Set(0, spotstore.Spot{Asset: account.Identity{1}}))
	require.Nil(t, s.Set(1, spotstore.Spot{Asset: account.Identity{2}, Claimed: true}))
	require.Nil(t, s.Set(2, spotstore.Spot{Asset: account.Identity{3}}))

	require.Nil(t, s.AssignWinners([]uint32{5, 6, 7}), "assign error")

	spots, err := s.All()
	require.Nil(t, err)
	expected := []spotstore.Spot{
		{Asset: account.Identity{1}, WinnerTicket: 5},
		{Asset: account.Identity{2}, WinnerTicket: 6, Claimed: true},
		{Asset: account.Identity{3}, WinnerTicket: 7},
	}
	assert.Equal(t, expected, spots, "assign altered asset or claimed")

	winners, err := s.WinnerTickets()
	assert.Nil(t, err)
	assert.Equal(t, []uint32{5, 6, 7}, winners, "wrong winners")

	before := append([]byte{}, s.Bytes()...)
	err = s.AssignWinners([]uint32{1, 2})
	assert.Equal(t, fault.InvalidWinnerCount, err, "short winner list accepted")
	assert.Equal(t, before, s.Bytes(), "rejected assign modified the buffer")
}

func TestLoad(t *testing.T) {
	s := spotstore.New(raffleId, 2)
	require.Nil(t, s.Set(0, spotstore.Spot{Asset: account.Identity{4}}))

	reloaded, err := spotstore.Load(append([]byte{}, s.Bytes()...))
	require.Nil(t, err)
	spot, err := reloaded.Get(0)
	assert.Nil(t, err)
	assert.Equal(t, account.Identity{4}, spot.Asset, "asset lost")

	// a header that claims more spots than the buffer holds
	truncated, err := spotstore.Load(s.Bytes()[:44+37])
	require.Nil(t, err)
	_, err = truncated.Get(1)
	assert.Equal(t, fault.IndexOutOfRange, err, "read past buffer")
	err = truncated.AssignWinners([]uint32{1, 1})
	assert.Equal(t, fault.IndexOutOfRange, err, "assign past buffer")
}
