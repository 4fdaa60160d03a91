// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - setup of the JSON RPC over TLS and the HTTPS
// listeners that expose the ledger to clients
//
// the namespaces are Access, Governance, Escrow, Events and Node;
// standard golang RPC clients using the jsonrpc codec can call them
// and each error arrives as text of the form "NNN: message"
package rpc
