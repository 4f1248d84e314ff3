// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package selector - choose a winning ticket for each spot
//
// The choice is a deterministic function of the ticket count, the
// spot position and a seed taken from the settlement time.  It is
// predictable by whoever triggers settlement and must not be relied
// on where participants are adversarial.
package selector

import (
	"math/bits"

	"github.com/bitmark-inc/raffled/fault"
)

// Winner - winning ticket for spot i
//
// ((seed + i) * (i + 1)) mod tickets, an intermediate that does not fit
// in 64 bits is NumericalOverflow rather than wrapping
func Winner(tickets uint64, seed uint64, i uint64) (uint32, error) {
	sum, carry := bits.Add64(seed, i, 0)
	if 0 != carry {
		return 0, fault.NumericalOverflow
	}
	high, product := bits.Mul64(sum, i+1)
	if 0 != high {
		return 0, fault.NumericalOverflow
	}
	return uint32(product % tickets), nil
}

// Select - winning tickets for every spot
//
// a spot whose existing winner is nonzero keeps it, so a partially
// settled store is not reshuffled
func Select(tickets uint32, seed uint64, existing []uint32) ([]uint32, error) {
	if 0 == tickets {
		return nil, fault.NoTickets
	}

	winners := make([]uint32, len(existing))
	for i, w := range existing {
		if 0 != w {
			winners[i] = w
			continue
		}
		w, err := Winner(uint64(tickets), seed, uint64(i))
		if nil != err {
			return nil, err
		}
		winners[i] = w
	}
	return winners, nil
}

// Fixed - the same ticket for every spot
//
// the administrative override truncates the supplied value to the
// 32 bit field width
func Fixed(spots uint32, ticket uint64) []uint32 {
	winners := make([]uint32, spots)
	for i := range winners {
		winners[i] = uint32(ticket)
	}
	return winners
}
