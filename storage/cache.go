// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - uncommitted writes of the current transaction
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

// entries live until the transaction is committed or aborted
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - the pending operation for a key
//
// third result is false if the key was not touched by the transaction
func (c *dbCache) Get(key string) ([]byte, dbOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, dbDelete, true
	}

	value := make([]byte, len(data.value))
	copy(value, data.value)
	return value, dbPut, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
