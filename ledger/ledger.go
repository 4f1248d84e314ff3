// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the ticket ledger of a raffle
//
// One buyer identity is stored per ticket, keyed by the cumulative
// ticket index, so a purchase of k tickets occupies k consecutive
// slots starting at the current ticket count.  The header count is
// the total number of tickets sold.
package ledger

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/recordstore"
)

// BuyerSize - bytes in each ticket slot
const BuyerSize = account.IdentitySize

// Tag - record schema of a ticket ledger buffer
var Tag = recordstore.TagFor("Ledger")

// Ledger - ticket index to buyer mapping
type Ledger struct {
	store *recordstore.Store
}

// Size - bytes for a ledger holding capacity tickets
func Size(capacity uint32) int {
	return recordstore.Size(BuyerSize, int(capacity))
}

// New - allocate an empty ledger for a raffle
func New(raffle account.Identity, capacity uint32) *Ledger {
	s, _ := recordstore.Initialise(make([]byte, Size(capacity)), BuyerSize, recordstore.Header{
		Tag:   Tag,
		Owner: raffle,
		Count: 0,
	})
	return &Ledger{store: s}
}

// Load - access a ledger held in a buffer
//
// the buffer is used in place
func Load(buffer []byte) (*Ledger, error) {
	s, err := recordstore.New(buffer, BuyerSize)
	if nil != err {
		return nil, err
	}
	return &Ledger{store: s}, nil
}

// Tag - the type tag in the buffer header
func (l *Ledger) Tag() recordstore.Tag {
	return l.store.Header().Tag
}

// Raffle - the owning raffle from the buffer header
func (l *Ledger) Raffle() account.Identity {
	return l.store.Header().Owner
}

// TicketCount - total tickets sold
func (l *Ledger) TicketCount() uint32 {
	return l.store.Count()
}

// Capacity - maximum tickets the buffer can hold
func (l *Ledger) Capacity() uint32 {
	return uint32(l.store.Capacity())
}

// Append - record count tickets for buyer
//
// the bound is checked before any slot is written
func (l *Ledger) Append(buyer account.Identity, count uint32) error {
	n := uint64(l.store.Count())
	if n+uint64(count) > uint64(l.store.Capacity()) {
		return fault.CapacityExceeded
	}
	for i := uint64(0); i < uint64(count); i += 1 {
		if err := l.store.Write(int(n+i), buyer[:]); nil != err {
			return err
		}
	}
	l.store.SetCount(uint32(n) + count)
	return nil
}

// BuyerAt - the buyer of a ticket
func (l *Ledger) BuyerAt(ticket uint32) (account.Identity, error) {
	if ticket >= l.store.Count() {
		return account.Identity{}, fault.IndexOutOfRange
	}
	record, err := l.store.Read(int(ticket))
	if nil != err {
		return account.Identity{}, fault.IndexOutOfRange
	}
	return account.IdentityFromBytes(record)
}

// Bytes - the underlying buffer
func (l *Ledger) Bytes() []byte {
	return l.store.Bytes()
}
