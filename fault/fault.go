// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyClaimed           = ExistsError("already claimed")
	AlreadyExists            = ExistsError("already exists")
	AlreadyInitialised       = ExistsError("already initialised")
	AlreadyOverflowTicketNum = LengthError("already overflow ticket num")
	AlreadyRegistered        = ExistsError("buyer already registered")
	BufferTooSmall           = LengthError("buffer too small for header")
	CapacityExceeded         = LengthError("capacity exceeded")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ConfigurationNotTable    = InvalidError("configuration must return a table")
	DatabaseIsNotSet         = ProcessError("database is not set")
	FingerprintMismatch      = InvalidError("certificate fingerprint mismatch")
	IndexOutOfRange          = RecordError("index out of range")
	InsufficientFunds        = ProcessError("insufficient funds")
	InvalidAuthority         = InvalidError("invalid authority")
	InvalidBody              = InvalidError("invalid request body")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidIdentity          = InvalidError("invalid identity")
	InvalidInterval          = InvalidError("invalid interval")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidPrivateKey        = InvalidError("invalid private key")
	InvalidRecordSize        = LengthError("invalid record size")
	InvalidSignature         = InvalidError("invalid signature")
	InvalidStatus            = InvalidError("invalid status")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	InvalidWinnerCount       = LengthError("winner count does not match spot count")
	KeyFileExists            = ExistsError("key file already exists")
	MetadataTooLong          = LengthError("metadata too long")
	MissingParameters        = InvalidError("missing parameters")
	NoTickets                = InvalidError("no tickets sold")
	NotAvailable             = ProcessError("not available")
	NotFound                 = NotFoundError("not found")
	NotInitialised           = NotFoundError("not initialised")
	NotMatch                 = InvalidError("not match")
	NumericalOverflow        = LengthError("numerical overflow")
	OutOfRange               = RecordError("record out of range")
	Overflow                 = LengthError("overflow")
	OverflowTicketNumPerUser = LengthError("overflow ticket num per user")
	PoolNotFound             = NotFoundError("pool not found")
	RaffleNotFound           = NotFoundError("raffle not found")
	RateLimiting             = ProcessError("rate limiting")
	RequestExpired           = InvalidError("request expired")
	RequestReplayed          = InvalidError("request replayed")
	StoreNotFound            = NotFoundError("record store not found")
	TimeOut                  = InvalidError("time out")
	TransferFailed           = ProcessError("transfer failed")
	WrongStore               = RecordError("record store does not belong to raffle")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
