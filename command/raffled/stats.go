// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// background process logging memory use
type memoryStats struct{}

func (memoryStats) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Debugf("stats: %s", text)
		}
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega)

		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
	}
}
