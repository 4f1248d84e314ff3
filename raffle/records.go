// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"encoding/binary"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/constants"
	"github.com/bitmark-inc/raffled/fault"
)

// Status - raffle lifecycle position
type Status uint8

// lifecycle states
const (
	Pending Status = 0
	Open    Status = 1
	Settled Status = 2
)

var statusNames = map[Status]string{
	Pending: "pending",
	Open:    "open",
	Settled: "settled",
}

// String - name of the status
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - status as its name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - status from its name
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fault.InvalidStatus
}

// Pool - a pool authority
//
// the pool identity also serves as its custody account
type Pool struct {
	Id           account.Identity `cbor:"1,keyasint" json:"id"`
	Owner        account.Identity `cbor:"2,keyasint" json:"owner"`
	Manager      account.Identity `cbor:"3,keyasint" json:"manager"`
	Seed         account.Identity `cbor:"4,keyasint" json:"seed"`
	CurrencyMint account.Identity `cbor:"5,keyasint" json:"currencyMint"`
	Custody      account.Identity `cbor:"6,keyasint" json:"custody"`
	Paused       bool             `cbor:"7,keyasint" json:"paused"`
	RaffleCount  uint64           `cbor:"8,keyasint" json:"raffleCount"`
}

// Metadata - display fields of a raffle
type Metadata struct {
	Name    string `cbor:"1,keyasint" json:"name"`
	Logo    string `cbor:"2,keyasint" json:"logo"`
	Discord string `cbor:"3,keyasint" json:"discord"`
	Twitter string `cbor:"4,keyasint" json:"twitter"`
}

// Parameters - the values fixed when a raffle is created
type Parameters struct {
	Metadata
	TicketValue uint64 `json:"ticketValue"`
	SpotCount   uint32 `json:"spotCount"`
	MaxTickets  uint32 `json:"maxTickets"`
	MaxPerBuyer uint32 `json:"maxPerBuyer"`
}

// Raffle - a raffle instance
type Raffle struct {
	Id          account.Identity `cbor:"1,keyasint" json:"id"`
	Pool        account.Identity `cbor:"2,keyasint" json:"pool"`
	Metadata    Metadata         `cbor:"3,keyasint" json:"metadata"`
	TicketValue uint64           `cbor:"4,keyasint" json:"ticketValue"`
	SpotCount   uint32           `cbor:"5,keyasint" json:"spotCount"`
	MaxTickets  uint32           `cbor:"6,keyasint" json:"maxTickets"`
	MaxPerBuyer uint32           `cbor:"7,keyasint" json:"maxPerBuyer"`
	Ledger      account.Identity `cbor:"8,keyasint" json:"ledger"`
	Spots       account.Identity `cbor:"9,keyasint" json:"spots"`
	Status      Status           `cbor:"10,keyasint" json:"status"`
	StartTime   uint64           `cbor:"11,keyasint" json:"startTime"`
	Period      uint64           `cbor:"12,keyasint" json:"period"`
	Visible     bool             `cbor:"13,keyasint" json:"visible"`
}

// Deadline - last second at which tickets can be bought
//
// saturates instead of wrapping for very long periods
func (r *Raffle) Deadline() uint64 {
	end := r.StartTime + r.Period
	if end < r.StartTime {
		return ^uint64(0)
	}
	return end
}

// Elapsed - true if the raffle is open and its window has passed
func (r *Raffle) Elapsed(now uint64) bool {
	return Open == r.Status && now > r.Deadline()
}

// check the display fields against their size limits
func (m Metadata) validate() error {
	if len(m.Name) > constants.MaxRoomNameSize ||
		len(m.Logo) > constants.MaxLogoSize ||
		len(m.Discord) > constants.MaxDiscordSize ||
		len(m.Twitter) > constants.MaxTwitterSize {
		return fault.MetadataTooLong
	}
	return nil
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic("raffle: CBOR encoder initialisation failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if nil != err {
		panic("raffle: CBOR decoder initialisation failed: " + err.Error())
	}
}

func pack(v interface{}) []byte {
	buffer, err := encMode.Marshal(v)
	if nil != err {
		// only fixed struct types are encoded here
		panic("raffle: CBOR encode: " + err.Error())
	}
	return buffer
}

func unpackPool(buffer []byte) (*Pool, error) {
	p := &Pool{}
	if err := decMode.Unmarshal(buffer, p); nil != err {
		return nil, err
	}
	return p, nil
}

func unpackRaffle(buffer []byte) (*Raffle, error) {
	r := &Raffle{}
	if err := decMode.Unmarshal(buffer, r); nil != err {
		return nil, err
	}
	return r, nil
}

// raffle ++ buyer
func buyerKey(raffle account.Identity, buyer account.Identity) []byte {
	key := make([]byte, 0, 2*account.IdentitySize)
	key = append(key, raffle[:]...)
	return append(key, buyer[:]...)
}

// pool ++ sequence
func indexKey(pool account.Identity, sequence uint64) []byte {
	key := make([]byte, account.IdentitySize+8)
	copy(key, pool[:])
	binary.BigEndian.PutUint64(key[account.IdentitySize:], sequence)
	return key
}
