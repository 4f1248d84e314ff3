// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// Access - batched writes over one database
type Access interface {
	Abort()
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Put([]byte, []byte)
}

// AccessData - a LevelDB batch with a read-through cache of its contents
type AccessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Put - queue a write
func (d *AccessData) Put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
}

// Delete - queue a removal
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch and start an empty one
func (d *AccessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.Abort()
	return err
}

// DumpTx - the pending batch in LevelDB record form
func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - pending value if any, else the committed value
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Has - pending state if any, else the committed state
func (d *AccessData) Has(key []byte) (bool, error) {
	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

// Abort - discard all pending writes
func (d *AccessData) Abort() {
	d.batch.Reset()
	d.cache.Clear()
}
