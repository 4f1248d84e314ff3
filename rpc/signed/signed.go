// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signed - request envelopes carrying the caller identity
//
// the signature is ed25519 by the caller's key over:
//
//   sha3-256(method ++ 0x00 ++ timestamp (u64 BE, unix seconds) ++
//            nonce (u64 BE) ++ body)
//
// where body is the exact JSON text carried in the envelope, so the
// server never has to re-encode anything before checking it
//
// the random nonce makes two identical requests from one caller within
// the same second distinct, so Replays can reject any repeat
package signed

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/constants"
	"github.com/bitmark-inc/raffled/fault"
)

// Envelope - a signed request
type Envelope struct {
	Caller    account.Identity  `json:"caller"`
	Timestamp uint64            `json:"timestamp,string"`
	Nonce     uint64            `json:"nonce,string"`
	Body      json.RawMessage   `json:"body"`
	Signature account.Signature `json:"signature"`
}

// Seal - encode the body and sign it for a method
func Seal(privateKey ed25519.PrivateKey, method string, now time.Time, body interface{}) (*Envelope, error) {
	buffer, err := json.Marshal(body)
	if nil != err {
		return nil, err
	}

	nonce := make([]byte, 8)
	if _, err := rand.Read(nonce); nil != err {
		return nil, err
	}

	envelope := &Envelope{
		Caller:    account.IdentityOfKey(privateKey),
		Timestamp: uint64(now.Unix()),
		Nonce:     binary.BigEndian.Uint64(nonce),
		Body:      buffer,
	}
	envelope.Signature = account.Sign(privateKey, envelope.digest(method))
	return envelope, nil
}

// Open - check the envelope and decode its body
//
// returns the authenticated caller
func (envelope *Envelope) Open(method string, now time.Time, body interface{}) (account.Identity, error) {
	if nil == envelope {
		return account.Null, fault.MissingParameters
	}
	if envelope.Caller.IsNull() {
		return account.Null, fault.InvalidIdentity
	}

	t := time.Unix(int64(envelope.Timestamp), 0)
	if envelope.Timestamp > 1<<62 || t.Before(now.Add(-constants.RequestTimeout)) || t.After(now.Add(constants.RequestTimeout)) {
		return account.Null, fault.RequestExpired
	}

	err := envelope.Caller.CheckSignature(envelope.digest(method), envelope.Signature)
	if nil != err {
		return account.Null, err
	}

	if nil != body {
		if err := json.Unmarshal(envelope.Body, body); nil != err {
			return account.Null, fault.InvalidBody
		}
	}
	return envelope.Caller, nil
}

// the signed message
func (envelope *Envelope) digest(method string) []byte {
	message := make([]byte, 0, len(method)+1+16+len(envelope.Body))
	message = append(message, method...)
	message = append(message, 0x00)

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, envelope.Timestamp)
	message = append(message, n...)
	binary.BigEndian.PutUint64(n, envelope.Nonce)
	message = append(message, n...)
	message = append(message, envelope.Body...)

	d := sha3.Sum256(message)
	return d[:]
}

// Replays - envelopes already accepted
//
// an entry is kept for twice the request timeout, which outlives the
// window in which its timestamp could still be accepted
type Replays struct {
	seen *cache.Cache
}

// NewReplays - empty set of accepted envelopes
func NewReplays() *Replays {
	return &Replays{
		seen: cache.New(2*constants.RequestTimeout, constants.RequestTimeout),
	}
}

// Open - as Envelope.Open, but an envelope is accepted only once
func (replays *Replays) Open(envelope *Envelope, method string, now time.Time, body interface{}) (account.Identity, error) {
	caller, err := envelope.Open(method, now, body)
	if nil != err {
		return account.Null, err
	}

	key := hex.EncodeToString(caller[:]) + hex.EncodeToString(envelope.digest(method))
	if err := replays.seen.Add(key, struct{}{}, cache.DefaultExpiration); nil != err {
		return account.Null, fault.RequestReplayed
	}
	return caller, nil
}
