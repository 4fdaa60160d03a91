// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register every RPC namespace on one server
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/counter"
	"github.com/bitmark-inc/heritaged/ledger"
	"github.com/bitmark-inc/heritaged/mode"
	"github.com/bitmark-inc/heritaged/rpc/access"
	"github.com/bitmark-inc/heritaged/rpc/escrow"
	"github.com/bitmark-inc/heritaged/rpc/events"
	"github.com/bitmark-inc/heritaged/rpc/governance"
	"github.com/bitmark-inc/heritaged/rpc/node"
)

// Create - an RPC server with the Access, Governance, Escrow, Events
// and Node namespaces
func Create(log *logger.L, version string, rpcCount *counter.Counter, ldgr ledger.Handler) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(access.New(log, ldgr, mode.Is))
	_ = server.Register(governance.New(log, ldgr, mode.Is))
	_ = server.Register(escrow.New(log, ldgr, mode.Is))
	_ = server.Register(events.New(log, ldgr))
	_ = server.Register(node.New(log, ldgr, start, version, rpcCount))

	return server
}
