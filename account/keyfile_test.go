// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/fault"
)

func TestMakeKeyFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "raffled-key-")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.key")
	id, err := account.MakeKeyFile(fileName)
	require.Nil(t, err, "make key file")
	assert.False(t, id.IsNull(), "null identity")

	privateKey, err := account.PrivateKeyFromFile(fileName)
	require.Nil(t, err, "read key file")
	assert.Equal(t, id, account.IdentityOfKey(privateKey), "identity of stored key")

	info, err := os.Stat(fileName)
	require.Nil(t, err, "stat")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "key file mode")

	_, err = account.MakeKeyFile(fileName)
	assert.Equal(t, fault.KeyFileExists, err, "overwrite")
}

func TestParsePrivateKey(t *testing.T) {
	seed := "PRIVATE:0101010101010101010101010101010101010101010101010101010101010101"

	privateKey, err := account.ParsePrivateKey("  " + seed + "\n")
	require.Nil(t, err, "valid key")
	assert.Equal(t, 64, len(privateKey), "key size")

	items := []string{
		"",
		"0101010101010101010101010101010101010101010101010101010101010101",
		"PRIVATE:0101",
		"PRIVATE:zz01010101010101010101010101010101010101010101010101010101010101",
		"PUBLIC:0101010101010101010101010101010101010101010101010101010101010101",
	}
	for i, item := range items {
		_, err := account.ParsePrivateKey(item)
		assert.Equal(t, fault.InvalidPrivateKey, err, "%d: %q", i, item)
	}
}
