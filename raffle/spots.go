// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/spotstore"
	"github.com/bitmark-inc/raffled/storage"
)

// a prize is a single unit of its asset
const prizeAmount = 1

// FundSpot - move a prize from the caller into pool custody
//
// any previous occupant of the spot is replaced
func (e *Engine) FundSpot(caller account.Identity, raffle account.Identity, index uint32, asset account.Identity) error {
	err := e.run("fund_spot", func(trx storage.Transaction) error {
		r, p, err := e.ownedRaffle(trx, caller, raffle)
		if nil != err {
			return err
		}
		if Pending != r.Status {
			return fault.InvalidStatus
		}
		if asset.IsNull() {
			return fault.InvalidIdentity
		}
		s, err := e.getSpots(trx, r)
		if nil != err {
			return err
		}
		if index >= s.SpotCount() {
			return fault.IndexOutOfRange
		}

		err = e.gateway.Transfer(trx, asset, caller, p.Custody, prizeAmount)
		if nil != err {
			return err
		}

		if err := s.Set(index, spotstore.Spot{Asset: asset}); nil != err {
			return err
		}
		e.putSpots(trx, r, s)
		return nil
	})
	if nil == err {
		e.log.Infof("raffle: %s  spot: %d  funded: %s", raffle, index, asset)
	}
	return err
}

// WithdrawSpot - return a prize from pool custody to the caller
//
// asset must be the one held by the spot
func (e *Engine) WithdrawSpot(caller account.Identity, raffle account.Identity, index uint32, asset account.Identity) error {
	err := e.run("withdraw_spot", func(trx storage.Transaction) error {
		r, p, err := e.ownedRaffle(trx, caller, raffle)
		if nil != err {
			return err
		}
		if Pending != r.Status {
			return fault.InvalidStatus
		}
		s, err := e.getSpots(trx, r)
		if nil != err {
			return err
		}
		spot, err := s.Get(index)
		if nil != err {
			return err
		}
		if asset.IsNull() || spot.Asset != asset {
			return fault.NotMatch
		}

		err = e.gateway.Transfer(trx, asset, p.Custody, caller, prizeAmount)
		if nil != err {
			return err
		}

		if err := s.Set(index, spotstore.Spot{}); nil != err {
			return err
		}
		e.putSpots(trx, r, s)
		return nil
	})
	if nil == err {
		e.log.Infof("raffle: %s  spot: %d  withdrawn: %s", raffle, index, asset)
	}
	return err
}

// Claim - pay the prize of a spot to the buyer of its winning ticket
//
// the spot keeps its asset as a record, only the claimed flag changes
func (e *Engine) Claim(caller account.Identity, raffle account.Identity, index uint32) error {
	err := e.run("claim", func(trx storage.Transaction) error {
		r, err := e.getRaffle(trx, raffle)
		if nil != err {
			return err
		}
		if Settled != r.Status {
			return fault.InvalidStatus
		}
		p, err := e.getPool(trx, r.Pool)
		if nil != err {
			return err
		}
		s, err := e.getSpots(trx, r)
		if nil != err {
			return err
		}
		spot, err := s.Get(index)
		if nil != err {
			return err
		}
		if spot.Claimed {
			return fault.AlreadyClaimed
		}

		l, err := e.getLedger(trx, r)
		if nil != err {
			return err
		}
		winner, err := l.BuyerAt(spot.WinnerTicket)
		if nil != err {
			return err
		}
		if winner != caller {
			return fault.NotMatch
		}
		if spot.Asset.IsNull() {
			return fault.NotMatch
		}

		err = e.gateway.Transfer(trx, spot.Asset, p.Custody, caller, prizeAmount)
		if nil != err {
			return err
		}

		spot.Claimed = true
		if err := s.Set(index, spot); nil != err {
			return err
		}
		e.putSpots(trx, r, s)
		return nil
	})
	if nil == err {
		e.metrics.Claim()
		e.log.Infof("raffle: %s  spot: %d  claimed by: %s", raffle, index, caller)
	}
	return err
}
