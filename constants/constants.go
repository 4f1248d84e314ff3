// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// bounds on raffle display metadata, in bytes
const (
	MaxRoomNameSize = 50
	MaxLogoSize     = 200
	MaxDiscordSize  = 100
	MaxTwitterSize  = 100
)

// largest ledger or spot store buffer, the header is 44 bytes then
// 32 bytes per ticket or 37 bytes per spot
const (
	MaxRecordStoreSize  = 10 * 1024 * 1024
	MaxTicketsPerRaffle = (MaxRecordStoreSize - 44) / 32
	MaxSpotsPerRaffle   = (MaxRecordStoreSize - 44) / 37
)

// the maximum skew between a signed request and the server clock
const (
	RequestTimeout = 5 * time.Minute
)

// the default interval for scanning for raffles awaiting settlement
const (
	WatcherInterval = 1 * time.Minute
)

// limits for paged queries
const (
	DefaultCount = 10
	MaximumCount = 100
)
