// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spotstore - the prize spots of a raffle
//
// All spots are allocated when the raffle is created; the header
// count is the advertised spot count and never changes.
package spotstore

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/recordstore"
)

// Tag - record schema of a spot store buffer
var Tag = recordstore.TagFor("SpotStore")

// Store - indexed spot array
type Store struct {
	store *recordstore.Store
}

// Size - bytes for a store of n spots
func Size(n uint32) int {
	return recordstore.Size(SpotSize, int(n))
}

// New - allocate n empty spots for a raffle
func New(raffle account.Identity, n uint32) *Store {
	s, _ := recordstore.Initialise(make([]byte, Size(n)), SpotSize, recordstore.Header{
		Tag:   Tag,
		Owner: raffle,
		Count: n,
	})
	return &Store{store: s}
}

// Load - access a spot store held in a buffer
//
// the buffer is used in place
func Load(buffer []byte) (*Store, error) {
	s, err := recordstore.New(buffer, SpotSize)
	if nil != err {
		return nil, err
	}
	return &Store{store: s}, nil
}

// Tag - the type tag in the buffer header
func (s *Store) Tag() recordstore.Tag {
	return s.store.Header().Tag
}

// Raffle - the owning raffle from the buffer header
func (s *Store) Raffle() account.Identity {
	return s.store.Header().Owner
}

// SpotCount - number of spots
func (s *Store) SpotCount() uint32 {
	return s.store.Count()
}

// Get - read a spot
func (s *Store) Get(index uint32) (Spot, error) {
	if index >= s.store.Count() {
		return Spot{}, fault.IndexOutOfRange
	}
	record, err := s.store.Read(int(index))
	if nil != err {
		return Spot{}, fault.IndexOutOfRange
	}
	return Unpack(record)
}

// Set - overwrite a spot
func (s *Store) Set(index uint32, spot Spot) error {
	if index >= s.store.Count() {
		return fault.IndexOutOfRange
	}
	if err := s.store.Write(int(index), spot.Pack()); nil != err {
		return fault.IndexOutOfRange
	}
	return nil
}

// All - every spot in index order
func (s *Store) All() ([]Spot, error) {
	n := s.store.Count()
	spots := make([]Spot, 0, n)
	for i := uint32(0); i < n; i += 1 {
		spot, err := s.Get(i)
		if nil != err {
			return nil, err
		}
		spots = append(spots, spot)
	}
	return spots, nil
}

// WinnerTickets - the current winner ticket of every spot
func (s *Store) WinnerTickets() ([]uint32, error) {
	spots, err := s.All()
	if nil != err {
		return nil, err
	}
	winners := make([]uint32, len(spots))
	for i, spot := range spots {
		winners[i] = spot.WinnerTicket
	}
	return winners, nil
}

// AssignWinners - overwrite the winner ticket of every spot
//
// asset and claimed are carried over unchanged; nothing is written
// unless there is exactly one winner per spot
func (s *Store) AssignWinners(winners []uint32) error {
	n := s.store.Count()
	if uint64(len(winners)) != uint64(n) {
		return fault.InvalidWinnerCount
	}
	if s.store.Capacity() < int(n) {
		return fault.IndexOutOfRange
	}
	for i, w := range winners {
		spot, err := s.Get(uint32(i))
		if nil != err {
			return err
		}
		spot.WinnerTicket = w
		if err := s.Set(uint32(i), spot); nil != err {
			return err
		}
	}
	return nil
}

// Bytes - the underlying buffer
func (s *Store) Bytes() []byte {
	return s.store.Bytes()
}
