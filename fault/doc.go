// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - every error the raffle engine and its servers return
//
// each error is a single typed string constant so callers compare with
// == and classify with the IsErr* predicates; the RPC layer sends the
// text unchanged to clients
package fault
