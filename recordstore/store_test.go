// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordstore_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/recordstore"
)

const testRecordSize = 5

func newStore(t *testing.T, n int) *recordstore.Store {
	buffer := make([]byte, recordstore.Size(testRecordSize, n))
	s, err := recordstore.Initialise(buffer, testRecordSize, recordstore.Header{
		Tag:   recordstore.TagFor("Test"),
		Owner: account.Identity{0xaa},
	})
	require.Nil(t, err, "initialise error")
	return s
}

func TestHeaderLayout(t *testing.T) {
	s := newStore(t, 2)
	s.SetCount(0x01020304)

	b := s.Bytes()
	tag := recordstore.TagFor("Test")
	assert.Equal(t, tag[:], b[0:8], "tag not at offset 0")
	assert.Equal(t, byte(0xaa), b[8], "owner not at offset 8")
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b[40:44], "count not little endian at offset 40")

	h := s.Header()
	assert.Equal(t, tag, h.Tag, "wrong tag")
	assert.Equal(t, account.Identity{0xaa}, h.Owner, "wrong owner")
	assert.Equal(t, uint32(0x01020304), h.Count, "wrong count")
}

func TestTagFor(t *testing.T) {
	// first 8 bytes of SHA-256("account:Ledger")
	digest := sha256.Sum256([]byte("account:Ledger"))
	tag := recordstore.TagFor("Ledger")
	assert.Equal(t, digest[:8], tag[:], "wrong tag")
	assert.NotEqual(t, tag, recordstore.TagFor("SpotStore"), "tags collide")
	assert.Equal(t, tag, recordstore.TagFor("Ledger"), "tag not stable")
}

func TestReadWrite(t *testing.T) {
	s := newStore(t, 3)
	assert.Equal(t, 3, s.Capacity(), "wrong capacity")

	records := [][]byte{
		{1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2},
		{3, 3, 3, 3, 3},
	}
	for i, r := range records {
		require.Nil(t, s.Write(i, r), "write %d", i)
	}
	for i, r := range records {
		actual, err := s.Read(i)
		assert.Nil(t, err, "read %d", i)
		assert.Equal(t, r, actual, "record %d", i)
	}

	// records are laid out contiguously after the header
	assert.Equal(t, []byte{2, 2, 2, 2, 2}, s.Bytes()[recordstore.HeaderSize+5:recordstore.HeaderSize+10], "record 1 misplaced")
}

func TestReadReturnsCopy(t *testing.T) {
	s := newStore(t, 1)
	require.Nil(t, s.Write(0, []byte{9, 9, 9, 9, 9}))

	r, err := s.Read(0)
	require.Nil(t, err)
	r[0] = 0

	again, _ := s.Read(0)
	assert.Equal(t, byte(9), again[0], "read exposed the buffer")
}

func TestOutOfRange(t *testing.T) {
	s := newStore(t, 2)

	_, err := s.Read(2)
	assert.Equal(t, fault.OutOfRange, err, "read past capacity")
	_, err = s.Read(-1)
	assert.Equal(t, fault.OutOfRange, err, "negative read")

	err = s.Write(2, []byte{1, 2, 3, 4, 5})
	assert.Equal(t, fault.OutOfRange, err, "write past capacity")

	err = s.Write(0, []byte{1, 2, 3})
	assert.Equal(t, fault.InvalidRecordSize, err, "short record accepted")

	// a partial trailing record is not addressable
	buffer := make([]byte, recordstore.HeaderSize+testRecordSize+3)
	p, err := recordstore.New(buffer, testRecordSize)
	require.Nil(t, err)
	assert.Equal(t, 1, p.Capacity(), "partial record counted")
	_, err = p.Read(1)
	assert.Equal(t, fault.OutOfRange, err, "partial record readable")
}

func TestSmallBuffer(t *testing.T) {
	_, err := recordstore.New(make([]byte, recordstore.HeaderSize-1), testRecordSize)
	assert.Equal(t, fault.BufferTooSmall, err, "short buffer accepted")

	_, err = recordstore.New(make([]byte, recordstore.HeaderSize), 0)
	assert.Equal(t, fault.InvalidRecordSize, err, "zero record size accepted")
}
