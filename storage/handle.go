// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - handle for a storage pool
//
// reads through a handle see only committed data, writes go
// through a Transaction
type PoolHandle struct {
	prefix byte
	limit  []byte
	store  *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// this returns a copy of the value, nil if not found
func (p *PoolHandle) Get(key []byte) []byte {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return nil
	}
	value, err := p.store.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return false
	}
	value, err := p.store.db.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return Element{}, false
	}

	iter := p.iterator(nil)

	found := false
	result := Element{}
	if iter.Last() {
		result = p.element(iter)
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}

// iterate over a key range within the pool; nil means the whole pool
//
// caller must hold the store read lock
func (p *PoolHandle) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	if nil == searchRange {
		searchRange = &ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		}
	}
	return p.store.db.NewIterator(searchRange, nil)
}

// copy out the current element with the prefix removed
func (p *PoolHandle) element(iter iterator.Iterator) Element {

	// contents of the returned slice must not be modified, and are
	// only valid until the next call to Next
	key := iter.Key()
	value := iter.Value()

	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}
