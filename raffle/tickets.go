// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/storage"
)

// RegisterBuyer - create the zero ticket counter of a buyer
func (e *Engine) RegisterBuyer(caller account.Identity, raffle account.Identity) error {
	return e.run("register_buyer", func(trx storage.Transaction) error {
		if caller.IsNull() {
			return fault.InvalidIdentity
		}
		if _, err := e.getRaffle(trx, raffle); nil != err {
			return err
		}
		key := buyerKey(raffle, caller)
		if trx.Has(e.store.Pool.Buyers, key) {
			return fault.AlreadyRegistered
		}
		trx.PutN(e.store.Pool.Buyers, key, 0)
		return nil
	})
}

// BuyTicket - caller buys count tickets
//
// the ticket price is paid in the pool currency; when the pool flag is
// set the side payment is also taken in native currency
func (e *Engine) BuyTicket(caller account.Identity, raffle account.Identity, count uint32, sidePayment uint64) error {
	err := e.run("buy_ticket", func(trx storage.Transaction) error {
		if caller.IsNull() {
			return fault.InvalidIdentity
		}
		r, err := e.getRaffle(trx, raffle)
		if nil != err {
			return err
		}
		p, err := e.getPool(trx, r.Pool)
		if nil != err {
			return err
		}
		return e.purchase(trx, r, p, p.Paused, caller, count, sidePayment)
	})
	if nil == err {
		e.metrics.TicketsSold(count)
		e.log.Infof("raffle: %s  buyer: %s  tickets: %d", raffle, caller, count)
	}
	return err
}

// all checks come before the first transfer
func (e *Engine) purchase(trx storage.Transaction, r *Raffle, p *Pool, escrowSidePayment bool, buyer account.Identity, count uint32, sidePayment uint64) error {
	if 0 == count {
		return fault.InvalidCount
	}
	if Open != r.Status {
		return fault.InvalidStatus
	}
	if e.timestamp() > r.Deadline() {
		return fault.TimeOut
	}

	key := buyerKey(r.Id, buyer)
	bought, _ := trx.GetN(e.store.Pool.Buyers, key)
	if 0 != r.MaxPerBuyer {
		if bought > uint64(r.MaxPerBuyer) {
			return fault.AlreadyOverflowTicketNum
		}
		if bought+uint64(count) > uint64(r.MaxPerBuyer) {
			return fault.OverflowTicketNumPerUser
		}
	}

	l, err := e.getLedger(trx, r)
	if nil != err {
		return err
	}
	sold := uint64(l.TicketCount())
	if sold+uint64(count) > uint64(r.MaxTickets) {
		return fault.Overflow
	}
	if sold+uint64(count) > uint64(l.Capacity()) {
		return fault.CapacityExceeded
	}

	price := r.TicketValue * uint64(count)
	if 0 != r.TicketValue && price/r.TicketValue != uint64(count) {
		return fault.NumericalOverflow
	}
	if bought+uint64(count) < bought {
		return fault.NumericalOverflow
	}

	err = e.gateway.Transfer(trx, p.CurrencyMint, buyer, p.Custody, price)
	if nil != err {
		return err
	}
	if escrowSidePayment {
		err = e.gateway.Transfer(trx, account.Null, buyer, p.Custody, sidePayment)
		if nil != err {
			return err
		}
	}

	if err := l.Append(buyer, count); nil != err {
		return err
	}
	e.putLedger(trx, r, l)
	trx.PutN(e.store.Pool.Buyers, key, bought+uint64(count))
	return nil
}
