// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed client calls to a raffled node
package rpccalls

import (
	"crypto/ed25519"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/raffled/fault"
	"github.com/bitmark-inc/raffled/rpc/certificate"
	"github.com/bitmark-inc/raffled/rpc/signed"
)

// errors
var (
	ErrInvalidFingerprint = fault.InvalidError("fingerprint must be 64 hex digits")
	ErrNoSigningKey       = fault.InvalidError("signing key is required")
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     ed25519.PrivateKey
	now     func() time.Time
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a raffled
//
// a blank fingerprint accepts any server certificate; key may be
// nil when only queries are made
func NewClient(connect string, fingerprint string, key ed25519.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != fingerprint {
		f, err := hex.DecodeString(fingerprint)
		if nil != err || 32 != len(f) {
			return nil, ErrInvalidFingerprint
		}
		var pin [32]byte
		copy(pin[:], f)
		tlsConfig = certificate.Pinned(pin)
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		now:     time.Now,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the raffled connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign the body and call a state changing method
func (client *Client) submit(method string, body interface{}, reply interface{}) error {
	if nil == client.key {
		return ErrNoSigningKey
	}

	client.printJson(method+" Request", body)

	envelope, err := signed.Seal(client.key, method, client.now(), body)
	if nil != err {
		return err
	}
	if err := client.client.Call(method, envelope, reply); nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

// call a query method
func (client *Client) query(method string, arguments interface{}, reply interface{}) error {

	client.printJson(method+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) error {

	if !client.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
	return nil
}
