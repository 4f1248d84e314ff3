// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/constants"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/ledger"
	"github.com/bitmark-inc/raffled/metrics"
	"github.com/bitmark-inc/raffled/selector"
	"github.com/bitmark-inc/raffled/spotstore"
	"github.com/bitmark-inc/raffled/storage"
)

// CreateRaffle - create a pending raffle with an empty ledger and
// empty spots
func (e *Engine) CreateRaffle(caller account.Identity, pool account.Identity, parameters Parameters) (account.Identity, error) {
	id := account.Null

	err := e.run("create_raffle", func(trx storage.Transaction) error {
		p, err := e.getPool(trx, pool)
		if nil != err {
			return err
		}
		if caller != p.Owner {
			return fault.InvalidAuthority
		}
		if 0 == parameters.SpotCount || 0 == parameters.MaxTickets {
			return fault.InvalidCount
		}
		if parameters.SpotCount > constants.MaxSpotsPerRaffle || parameters.MaxTickets > constants.MaxTicketsPerRaffle {
			return fault.InvalidCount
		}
		if err := parameters.Metadata.validate(); nil != err {
			return err
		}

		sequence := p.RaffleCount
		id = account.RaffleIdentity(pool, sequence)
		if trx.Has(e.store.Pool.Raffles, id[:]) {
			return fault.AlreadyExists
		}

		r := &Raffle{
			Id:          id,
			Pool:        pool,
			Metadata:    parameters.Metadata,
			TicketValue: parameters.TicketValue,
			SpotCount:   parameters.SpotCount,
			MaxTickets:  parameters.MaxTickets,
			MaxPerBuyer: parameters.MaxPerBuyer,
			Ledger:      account.LedgerIdentity(id),
			Spots:       account.SpotsIdentity(id),
			Status:      Pending,
			StartTime:   0,
			Period:      0,
			Visible:     true,
		}

		e.putRaffle(trx, r)
		e.putLedger(trx, r, ledger.New(id, r.MaxTickets))
		e.putSpots(trx, r, spotstore.New(id, r.SpotCount))
		trx.Put(e.store.Pool.RaffleIndex, indexKey(pool, sequence), id[:])

		p.RaffleCount = sequence + 1
		e.putPool(trx, p)
		return nil
	})
	if nil != err {
		return account.Null, err
	}

	e.log.Infof("raffle: %s  pool: %s  spots: %d  max tickets: %d", id, pool, parameters.SpotCount, parameters.MaxTickets)
	return id, nil
}

// UpdateRaffleMetadata - replace the display fields
func (e *Engine) UpdateRaffleMetadata(caller account.Identity, raffle account.Identity, metadata Metadata) error {
	return e.run("update_raffle_metadata", func(trx storage.Transaction) error {
		r, _, err := e.ownedRaffle(trx, caller, raffle)
		if nil != err {
			return err
		}
		if Settled == r.Status {
			return fault.InvalidStatus
		}
		if err := metadata.validate(); nil != err {
			return err
		}
		r.Metadata = metadata
		e.putRaffle(trx, r)
		return nil
	})
}

// ToggleVisibility - show or hide a raffle in listings
func (e *Engine) ToggleVisibility(caller account.Identity, raffle account.Identity, visible bool) error {
	return e.run("toggle_visibility", func(trx storage.Transaction) error {
		r, _, err := e.ownedRaffle(trx, caller, raffle)
		if nil != err {
			return err
		}
		r.Visible = visible
		e.putRaffle(trx, r)
		return nil
	})
}

// OpenRaffle - start the sale window of period seconds from now
func (e *Engine) OpenRaffle(caller account.Identity, raffle account.Identity, period uint64) error {
	err := e.run("open_raffle", func(trx storage.Transaction) error {
		r, _, err := e.ownedRaffle(trx, caller, raffle)
		if nil != err {
			return err
		}
		if Pending != r.Status {
			return fault.InvalidStatus
		}
		r.StartTime = e.timestamp()
		r.Period = period
		r.Status = Open
		e.putRaffle(trx, r)
		return nil
	})
	if nil == err {
		e.log.Infof("raffle: %s  open for: %d s", raffle, period)
	}
	return err
}

// SettleRaffle - assign a winning ticket to every spot
//
// if no tickets were sold the raffle goes back to pending so that it
// can be opened again
func (e *Engine) SettleRaffle(caller account.Identity, raffle account.Identity) (Status, error) {
	status := Pending
	err := e.run("settle_raffle", func(trx storage.Transaction) error {
		r, _, err := e.ownedRaffle(trx, caller, raffle)
		if nil != err {
			return err
		}
		if Open != r.Status {
			return fault.InvalidStatus
		}

		l, err := e.getLedger(trx, r)
		if nil != err {
			return err
		}
		s, err := e.getSpots(trx, r)
		if nil != err {
			return err
		}

		tickets := l.TicketCount()
		if 0 == tickets {
			r.Status = Pending
			e.putRaffle(trx, r)
			status = r.Status
			return nil
		}

		existing, err := s.WinnerTickets()
		if nil != err {
			return err
		}
		winners, err := selector.Select(tickets, e.timestamp(), existing)
		if nil != err {
			return err
		}
		if err := s.AssignWinners(winners); nil != err {
			return err
		}
		e.putSpots(trx, r, s)

		r.Status = Settled
		e.putRaffle(trx, r)
		status = r.Status
		return nil
	})
	if nil != err {
		return status, err
	}

	if Settled == status {
		e.metrics.Settlement(metrics.Settled)
		e.log.Infof("raffle: %s  settled", raffle)
	} else {
		e.metrics.Settlement(metrics.Reverted)
		e.log.Infof("raffle: %s  no tickets sold, back to pending", raffle)
	}
	return status, nil
}

// SettleRaffleWithFixedCount - manager override writing the same
// winning ticket into every spot
//
// nothing happens if no tickets were sold; the status is not changed
func (e *Engine) SettleRaffleWithFixedCount(caller account.Identity, raffle account.Identity, ticket uint64) error {
	stamped := false
	err := e.run("settle_raffle_with_fixed_count", func(trx storage.Transaction) error {
		r, err := e.getRaffle(trx, raffle)
		if nil != err {
			return err
		}
		p, err := e.getPool(trx, r.Pool)
		if nil != err {
			return err
		}
		if caller != p.Manager {
			return fault.InvalidAuthority
		}

		l, err := e.getLedger(trx, r)
		if nil != err {
			return err
		}
		if 0 == l.TicketCount() {
			return nil
		}

		s, err := e.getSpots(trx, r)
		if nil != err {
			return err
		}
		if err := s.AssignWinners(selector.Fixed(s.SpotCount(), ticket)); nil != err {
			return err
		}
		e.putSpots(trx, r, s)
		stamped = true
		return nil
	})
	if nil == err && stamped {
		e.metrics.Settlement(metrics.Fixed)
		e.log.Warnf("raffle: %s  every spot set to ticket: %d", raffle, uint32(ticket))
	}
	return err
}
