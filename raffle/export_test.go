// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package raffle

import (
	"time"
)

// SetClock - replace the time source
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}
