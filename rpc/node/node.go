// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/counter"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/ledger"
	"github.com/bitmark-inc/heritaged/mode"
	"github.com/bitmark-inc/heritaged/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  ledger.Handler
	counter *counter.Counter
}

// New - create the node RPC handler
func New(log *logger.L, ldgr ledger.Handler, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  ldgr,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain       string `json:"chain"`
	Mode        string `json:"mode"`
	Height      uint64 `json:"height,string"`
	LastEventId uint64 `json:"lastEventId,string"`
	Paused      bool   `json:"paused"`
	RPCs        uint64 `json:"rpcs"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return fault.WithCode(err)
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Height = node.Ledger.Height()
	reply.LastEventId = node.Ledger.LastEventID()
	reply.Paused = node.Ledger.Roles().Paused
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
