// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/raffled/fault"
)

// Limit - wait for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - wait for a paged request, the page size is the cost
//
// a count outside 1..maximumCount is charged as a single request and
// rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := Limit(limiter); nil != err {
			return err
		}
		return fault.InvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}
