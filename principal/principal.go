// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package principal - opaque identities of callers
//
// a principal is already authenticated by the time it reaches the
// ledger; the ledger only compares principals for equality
package principal

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/heritaged/fault"
)

// miscellaneous constants
const (
	Length         = 32
	checksumLength = 4
)

// Principal - comparable identity, the zero value is the null principal
type Principal [Length]byte

// Null - the sentinel principal, never valid as a role holder
var Null Principal

// FromSeed - derive a principal from a name
//
// used by tooling and tests to produce stable identities
func FromSeed(seed string) Principal {
	return Principal(sha3.Sum256([]byte(seed)))
}

// FromBytes - principal from exactly Length bytes
func FromBytes(buffer []byte) (Principal, error) {
	p := Principal{}
	if Length != len(buffer) {
		return p, fault.CannotDecodePrincipal
	}
	copy(p[:], buffer)
	return p, nil
}

// FromBase58 - decode the text form: base58(bytes ++ checksum)
func FromBase58(s string) (Principal, error) {
	p := Principal{}
	decoded, err := base58.Decode(s)
	if nil != err || Length+checksumLength != len(decoded) {
		return p, fault.CannotDecodePrincipal
	}
	checksum := sha3.Sum256(decoded[:Length])
	if !bytes.Equal(checksum[:checksumLength], decoded[Length:]) {
		return p, fault.ChecksumMismatch
	}
	copy(p[:], decoded[:Length])
	return p, nil
}

// IsNull - true for the sentinel principal
func (p Principal) IsNull() bool {
	return Null == p
}

// Bytes - raw bytes
func (p Principal) Bytes() []byte {
	return p[:]
}

// String - base58 text form
func (p Principal) String() string {
	checksum := sha3.Sum256(p[:])
	buffer := make([]byte, 0, Length+checksumLength)
	buffer = append(buffer, p[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (p Principal) GoString() string {
	return "<principal:" + p.String() + ">"
}

// MarshalText - convert principal to base58 for JSON
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - convert base58 from JSON to principal
//
// an empty string decodes to the null principal
func (p *Principal) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*p = Null
		return nil
	}
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*p = decoded
	return nil
}
