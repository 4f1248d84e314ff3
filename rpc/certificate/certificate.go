// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/fault"
)

// Load - read a certificate and key from files and return the TLS
// configuration with the certificate's fingerprint
func Load(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, fin, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Get - TLS configuration from PEM text
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - compute the fingerprint of a certificate
//
// FreeBSD: openssl x509 -outform DER -in raffled-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// Pinned - client configuration accepting only a server whose
// certificate has the given fingerprint
//
// the certificates are self-signed so the chain is not verified
func Pinned(fingerprint [32]byte) *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS12,
		VerifyPeerCertificate: func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) || fingerprint != Fingerprint(rawCerts[0]) {
				return fault.FingerprintMismatch
			}
			return nil
		},
	}
}
