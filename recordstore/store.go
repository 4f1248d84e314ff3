// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package recordstore

import (
	"encoding/binary"

	"github.com/bitmark-inc/raffled/fault"
)

// Store - a header and a fixed size record array over one buffer
type Store struct {
	buffer     []byte
	recordSize int
}

// Size - bytes needed to hold a header and n records
func Size(recordSize int, n int) int {
	return HeaderSize + recordSize*n
}

// New - access an existing buffer
//
// the buffer is used in place, not copied
func New(buffer []byte, recordSize int) (*Store, error) {
	if recordSize <= 0 {
		return nil, fault.InvalidRecordSize
	}
	if len(buffer) < HeaderSize {
		return nil, fault.BufferTooSmall
	}
	return &Store{
		buffer:     buffer,
		recordSize: recordSize,
	}, nil
}

// Initialise - write a fresh header into a buffer and clear its records
func Initialise(buffer []byte, recordSize int, header Header) (*Store, error) {
	s, err := New(buffer, recordSize)
	if nil != err {
		return nil, err
	}
	for i := range buffer {
		buffer[i] = 0
	}
	header.pack(buffer)
	return s, nil
}

// Header - read the header
func (s *Store) Header() Header {
	return unpackHeader(s.buffer)
}

// SetHeader - overwrite the header
func (s *Store) SetHeader(header Header) {
	header.pack(s.buffer)
}

// Count - the live record count from the header
func (s *Store) Count() uint32 {
	return binary.LittleEndian.Uint32(s.buffer[countOffset:HeaderSize])
}

// SetCount - update only the count field of the header
func (s *Store) SetCount(count uint32) {
	binary.LittleEndian.PutUint32(s.buffer[countOffset:HeaderSize], count)
}

// RecordSize - bytes in each record
func (s *Store) RecordSize() int {
	return s.recordSize
}

// Capacity - number of records that fit after the header
func (s *Store) Capacity() int {
	return (len(s.buffer) - HeaderSize) / s.recordSize
}

// compute the byte offset of a record
//
// fails if index*record_size + record_size > C - header_size
func (s *Store) offset(index int) (int, error) {
	if index < 0 {
		return 0, fault.OutOfRange
	}
	limit := len(s.buffer) - HeaderSize
	start := index * s.recordSize
	if start/s.recordSize != index || start+s.recordSize > limit {
		return 0, fault.OutOfRange
	}
	return HeaderSize + start, nil
}

// Read - copy of the record at index
func (s *Store) Read(index int) ([]byte, error) {
	start, err := s.offset(index)
	if nil != err {
		return nil, err
	}
	record := make([]byte, s.recordSize)
	copy(record, s.buffer[start:start+s.recordSize])
	return record, nil
}

// Write - replace the whole record at index
func (s *Store) Write(index int, record []byte) error {
	if len(record) != s.recordSize {
		return fault.InvalidRecordSize
	}
	start, err := s.offset(index)
	if nil != err {
		return err
	}
	copy(s.buffer[start:start+s.recordSize], record)
	return nil
}

// Bytes - the underlying buffer
func (s *Store) Bytes() []byte {
	return s.buffer
}
