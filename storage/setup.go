// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/raffled/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Pools       *PoolHandle `prefix:"P"`
	RaffleIndex *PoolHandle `prefix:"I"`
	Raffles     *PoolHandle `prefix:"R"`
	Ledgers     *PoolHandle `prefix:"L"`
	Spots       *PoolHandle `prefix:"S"`
	Buyers      *PoolHandle `prefix:"U"`
	Balances    *PoolHandle `prefix:"B"`
	TestData    *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - an open database and its pools
type Store struct {
	sync.RWMutex
	log  *logger.L
	db   *leveldb.DB
	trx  *transactionData
	Pool pools
}

// Open - open up the database connection
//
// this must be called before any pool is accessed
func Open(database string, readOnly bool) (*Store, error) {

	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && version != currentDBVersion {
		log.Criticalf("database is inconsistent: %d  current: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database is inconsistent: %d  current: %d", version, currentDBVersion)
	}

	if 0 == version {
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	s := &Store{
		log: log,
		db:  db,
	}
	access := newDA(db, new(leveldb.Batch), newCache())
	s.trx = newTransaction(access)

	// this will be a struct type
	poolType := reflect.TypeOf(s.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			store:  s,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	log.Infof("opened: %q  version: 0x%x", database, currentDBVersion)

	ok = true // prevent db close
	return s, nil
}

// Close - close the database connection
//
// waits for any transaction in progress
func (s *Store) Close() {
	s.trx.Lock()
	defer s.trx.Unlock()

	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.log.Info("closed")
	}
}

// NewDBTransaction - start a write transaction
//
// blocks until any other transaction is committed or aborted
func (s *Store) NewDBTransaction() (Transaction, error) {
	s.RLock()
	open := nil != s.db
	s.RUnlock()
	if !open {
		return nil, fault.DatabaseIsNotSet
	}

	err := s.trx.Begin()
	if nil != err {
		return nil, err
	}
	return s.trx, nil
}

// Elements - every committed key/value pair in the database
//
// keys include the pool prefix; the version key is omitted
func (s *Store) Elements() ([]Element, error) {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return nil, fault.DatabaseIsNotSet
	}

	iter := s.db.NewIterator(nil, nil)
	result := make([]Element, 0, 64)
	for iter.Next() {
		key := iter.Key()
		if 0 == key[0] {
			continue
		}
		e := Element{
			Key:   make([]byte, len(key)),
			Value: make([]byte, len(iter.Value())),
		}
		copy(e.Key, key)
		copy(e.Value, iter.Value())
		result = append(result, e)
	}
	iter.Release()
	return result, iter.Error()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
