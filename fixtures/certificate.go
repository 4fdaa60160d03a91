// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var certificatePair struct {
	sync.Once
	certificate string
	key         string
}

// Certificate - PEM text of a self signed certificate for localhost
func Certificate() string {
	generate()
	return certificatePair.certificate
}

// Key - PEM text of the private key matching Certificate
func Key() string {
	generate()
	return certificatePair.key
}

func generate() {
	certificatePair.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("heritaged test", validUntil, false, nil)
		if nil != err {
			panic(err)
		}
		certificatePair.certificate = string(cert)
		certificatePair.key = string(key)
	})
}
