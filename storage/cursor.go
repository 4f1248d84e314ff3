// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/raffled/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// NewPrefixCursor - initialise a cursor over the keys starting with prefix
func (p *PoolHandle) NewPrefixCursor(prefix []byte) *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: *ldb_util.BytesPrefix(p.prefixKey(prefix)),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	store := cursor.pool.store
	store.RLock()
	defer store.RUnlock()
	if nil == store.db {
		return nil, fault.DatabaseIsNotSet
	}

	iter := cursor.pool.iterator(&cursor.maxRange)

	results := make([]Element, 0, count)
	for len(results) < count && iter.Next() {
		results = append(results, cursor.pool.element(iter))
	}
	iter.Release()
	err := iter.Error()

	// the smallest key after the last one returned
	if n := len(results); n > 0 {
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	store := cursor.pool.store
	store.RLock()
	defer store.RUnlock()
	if nil == store.db {
		return fault.DatabaseIsNotSet
	}

	iter := cursor.pool.iterator(&cursor.maxRange)

	var err error
iterating:
	for iter.Next() {
		e := cursor.pool.element(iter)
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
