// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/raffled/fault"
)

// Transaction - all-or-nothing group of writes across pools
//
// reads inside a transaction see its own uncommitted writes
type Transaction interface {
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// only one transaction is in progress at a time, the lock is held
// from Begin until Commit or Abort
type transactionData struct {
	sync.Mutex
	state  sync.Mutex
	inUse  bool
	access Access
}

func newTransaction(access Access) *transactionData {
	return &transactionData{
		inUse:  false,
		access: access,
	}
}

// Begin - wait for exclusive use of the transaction
func (d *transactionData) Begin() error {
	d.Lock()

	d.state.Lock()
	defer d.state.Unlock()
	if d.inUse {
		d.Unlock()
		return fault.AlreadyInitialised
	}
	d.inUse = true
	return nil
}

// InUse - true between Begin and Commit/Abort
func (d *transactionData) InUse() bool {
	d.state.Lock()
	defer d.state.Unlock()
	return d.inUse
}

// Put - queue a key/value write
func (d *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	d.access.Put(handle.prefixKey(key), value)
}

// PutN - queue a big endian uint64 value
func (d *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	d.access.Put(handle.prefixKey(key), buffer)
}

// Delete - queue a removal
func (d *transactionData) Delete(handle *PoolHandle, key []byte) {
	d.access.Delete(handle.prefixKey(key))
}

// Get - read a value, nil if not found
func (d *transactionData) Get(handle *PoolHandle, key []byte) []byte {
	value, err := d.access.Get(handle.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a big endian uint64 value
func (d *transactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, d.Get(handle, key))
}

// Has - check if a key exists
func (d *transactionData) Has(handle *PoolHandle, key []byte) bool {
	found, err := d.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

// Commit - write all queued changes atomically and release the transaction
func (d *transactionData) Commit() error {
	d.state.Lock()
	defer d.state.Unlock()
	if !d.inUse {
		return fault.NotInitialised
	}

	err := d.access.Commit()
	d.inUse = false
	d.Unlock()
	return err
}

// Abort - discard all queued changes and release the transaction
func (d *transactionData) Abort() {
	d.state.Lock()
	defer d.state.Unlock()
	if !d.inUse {
		return
	}

	d.access.Abort()
	d.inUse = false
	d.Unlock()
}
