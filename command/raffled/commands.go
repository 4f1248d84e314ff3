// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/account"
	"github.com/bitmark-inc/raffled/rpc/certificate"
	"github.com/bitmark-inc/raffled/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
	signingKeyFilename        = "raffle.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-key", "key":
		keyFilename := signingKeyFilename
		if len(arguments) >= 1 && "" != arguments[0] {
			keyFilename = arguments[0]
		}

		id, err := account.MakeKeyFile(keyFilename)
		if nil != err {
			fmt.Printf("generate signing key: %q error: %s\n", keyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated signing key: %q\n", keyFilename)
		fmt.Printf("identity: %s\n", id)

	case "start", "run":
		return false // continue processing

	case "dump":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "fingerprint", "fp":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--define=NAME=VALUE...] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-key [FILE]             (key)    - create a request signing key in: %q\n", signingKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - display the RPC certificate fingerprint\n")
		fmt.Printf("\n")

		fmt.Printf("  dump [FILE]                         - dump the database as JSON to stdout/file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	case "fingerprint", "fp":
		fingerprint, err := certificateFingerprint(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		}
		fmt.Printf("rpc fingerprint: %x\n", fingerprint)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can read it
func processDataCommand(log *logger.L, arguments []string, store *storage.Store) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "dump":
		output := "-"
		if len(arguments) > 0 {
			output = strings.TrimSpace(arguments[0])
		}

		fd := os.Stdout
		if "" != output && "-" != output {
			var err error
			fd, err = os.Create(output)
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", output, err)
			}
			defer fd.Close()
		}

		n, err := dumpDatabase(fd, store)
		if nil != err {
			exitwithstatus.Message("dump error: %s", err)
		}
		log.Infof("dumped: %d elements", n)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// one database element in the dump
type dumpElement struct {
	Pool  string `json:"pool"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// write all committed elements as a JSON array
func dumpDatabase(w io.Writer, store *storage.Store) (int, error) {
	elements, err := store.Elements()
	if nil != err {
		return 0, err
	}

	list := make([]dumpElement, len(elements))
	for i, e := range elements {
		list[i] = dumpElement{
			Pool:  string(e.Key[:1]),
			Key:   hex.EncodeToString(e.Key[1:]),
			Value: hex.EncodeToString(e.Value),
		}
	}

	s, err := json.MarshalIndent(list, "", "  ")
	if nil != err {
		return 0, err
	}
	_, err = fmt.Fprintf(w, "%s\n", s)
	return len(list), err
}

// SHA3-256 of the first certificate in the chain
func certificateFingerprint(certificateFileName string, keyFileName string) ([32]byte, error) {
	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		return [32]byte{}, err
	}
	return certificate.Fingerprint(keyPair.Certificate[0]), nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
