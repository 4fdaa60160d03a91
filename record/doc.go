// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - ledger entities and their packed form
//
// every record packs as Varint64(tag) followed by its fields in the
// order of the struct definition:
//
//	uint64    - varint
//	bool      - single byte 0x00 or 0x01
//	string    - varint(length) ++ bytes
//	principal - 32 bytes
//	list      - varint(count) ++ elements
//
// records are never modified in place; the With* functions return a new
// record built from the old one plus a change, leaving the original
// untouched so that a failed operation has nothing to undo
package record
