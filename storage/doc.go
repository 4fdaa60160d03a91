// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = big endian uint64 (8 bytes)
// 4. principal    = 32 byte opaque identity
// 5. *others*     = byte values of various length
//
// Roles:
//
//	R ++ "roles"               - the single role configuration record
//
// Counters:
//
//	N ++ name                  - last allocated id for "proposal", "project" and "event"
//	                             data: id
//
// Governance:
//
//	P ++ proposal id           - proposal record
//	V ++ proposal id ++ voter  - vote record
//
// Escrow:
//
//	J ++ project id            - project record including milestones
//	C ++ project id ++ contributor
//	                           - cumulative contribution record
//
// Events:
//
//	E ++ event id              - audit event record
//
// Testing:
//
//	Z ++ key                   - testing data
//
// All writes go through a Transaction: a LevelDB batch with a cache
// overlay so that reads inside the transaction see its own pending
// writes.  Commit writes the batch atomically, Abort discards it.
package storage
