// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// LogCategory - logger channel used by tests
const LogCategory = "testing"

const (
	certificateFile = "rpc.crt"
	keyFile         = "rpc.key"
)

var logDirectory string

// SetupTestLogger - log into a temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "raffled-rpc-log-")
	if nil != err {
		panic(err)
	}
	logDirectory = dir

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	if "" != logDirectory {
		os.RemoveAll(logDirectory)
	}
}

// GenerateCertificate - write a self-signed localhost certificate and
// key into dir, returning both file names
func GenerateCertificate(dir string) (string, string, error) {
	cert, key, err := certgen.NewTLSCertPair("raffled test", time.Now().Add(24*time.Hour), false, nil)
	if nil != err {
		return "", "", err
	}

	certificateFileName := filepath.Join(dir, certificateFile)
	keyFileName := filepath.Join(dir, keyFile)

	if err := ioutil.WriteFile(certificateFileName, cert, 0600); nil != err {
		return "", "", err
	}
	if err := ioutil.WriteFile(keyFileName, key, 0600); nil != err {
		return "", "", err
	}
	return certificateFileName, keyFileName, nil
}
