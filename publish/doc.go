// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed events to off-chain observers
//
// each event is sent as a three part ZeroMQ message on a PUB socket:
//
//	"event"   the command, subscribers filter on this prefix
//	type      the event type name, e.g. "project-funded"
//	JSON      the event record
//
// the publisher never blocks the ledger: events arrive through a
// messagebus queue that drops on overflow
package publish
