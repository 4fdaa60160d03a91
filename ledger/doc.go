// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the single writer over access control, the event
// log and the governance and escrow engines
//
// Every mutating call holds the ledger lock and runs inside one
// storage transaction: either all of its writes are committed or the
// transaction is aborted and the database is unchanged.  Events
// committed by a call are then queued for publication.
package ledger
