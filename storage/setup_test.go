// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/storage"
)

// common test setup routines

// configure for testing
func setup(t *testing.T) (*storage.Store, string) {
	dir, err := os.MkdirTemp("", "raffled-storage-")
	require.Nil(t, err, "temp dir")

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	database := filepath.Join(dir, "test.leveldb")
	s, err := storage.Open(database, storage.ReadWrite)
	require.Nil(t, err, "storage open error")
	return s, dir
}

// post test cleanup
func teardown(s *storage.Store, dir string) {
	s.Close()
	logger.Finalise()
	os.RemoveAll(dir)
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// write the expected elements in a scrambled order
func populate(t *testing.T, s *storage.Store) {
	trx, err := s.NewDBTransaction()
	require.Nil(t, err, "begin")
	for _, i := range []int{6, 0, 3, 1, 5, 2, 4} {
		e := expectedElements[i]
		trx.Put(s.Pool.TestData, e.Key, e.Value)
	}
	require.Nil(t, trx.Commit(), "commit")
}
