// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"

	"github.com/bitmark-inc/raffled/fault"
)

const keyFilePrefix = "PRIVATE:"

// MakeKeyFile - generate a new key and write its seed to a file
//
// an existing file is never overwritten
func MakeKeyFile(fileName string) (Identity, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return Null, err
	}

	fd, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if os.IsExist(err) {
		return Null, fault.KeyFileExists
	}
	if nil != err {
		return Null, err
	}

	_, err = fd.WriteString(keyFilePrefix + hex.EncodeToString(privateKey.Seed()) + "\n")
	if closeErr := fd.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(fileName)
		return Null, err
	}
	return IdentityOfKey(privateKey), nil
}

// PrivateKeyFromFile - read a key written by MakeKeyFile
func PrivateKeyFromFile(fileName string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ParsePrivateKey(string(data))
}

// ParsePrivateKey - decode "PRIVATE:<hex seed>"
func ParsePrivateKey(s string) (ed25519.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, keyFilePrefix) {
		return nil, fault.InvalidPrivateKey
	}
	seed, err := hex.DecodeString(s[len(keyFilePrefix):])
	if nil != err || ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidPrivateKey
	}
	return ed25519.NewKeyFromSeed(seed), nil
}
