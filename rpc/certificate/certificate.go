// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/fault"
)

// Fingerprint - SHA3-256 of a DER encoded certificate
//
// openssl x509 -outform DER -in heritaged-rpc.crt | sha3sum -a 256
type Fingerprint [32]byte

// String - lower case hex as printed by sha3sum
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FingerprintOf - compute the fingerprint of a DER certificate
func FingerprintOf(der []byte) Fingerprint {
	return Fingerprint(sha3.Sum256(der))
}

// Get - build a server TLS configuration from PEM text
//
// a leaf certificate that is not yet valid or has expired is refused
// so that clients pinning the fingerprint are not left with a dead key
func Get(log *logger.L, name, certificate, key string) (*tls.Config, Fingerprint, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s: failed to load keypair: %s", name, err)
		return nil, Fingerprint{}, err
	}

	leaf, err := x509.ParseCertificate(keyPair.Certificate[0])
	if nil != err {
		log.Errorf("%s: failed to parse certificate: %s", name, err)
		return nil, Fingerprint{}, err
	}

	now := time.Now()
	if now.Before(leaf.NotBefore) || now.After(leaf.NotAfter) {
		log.Errorf("%s: certificate valid from: %s to: %s", name, leaf.NotBefore, leaf.NotAfter)
		return nil, Fingerprint{}, fault.CertificateOutOfDate
	}
	keyPair.Leaf = leaf

	fingerprint := FingerprintOf(keyPair.Certificate[0])
	log.Infof("%s: SHA3-256 fingerprint: %s  expires: %s", name, fingerprint, leaf.NotAfter.UTC().Format(time.RFC3339))

	return &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
	}, fingerprint, nil
}
