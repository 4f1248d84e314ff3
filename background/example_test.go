// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/raffled/background"
)

type ticker struct {
	interval time.Duration
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {

	fmt.Printf("initialise\n")

	tick := time.NewTicker(state.interval)
	defer tick.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-tick.C:
		}
	}

	fmt.Printf("finalise\n")
}

func Example() {

	processes := background.Processes{
		&ticker{interval: 10 * time.Millisecond},
	}

	p := background.Start(processes, nil)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	// Output:
	// initialise
	// finalise
}
