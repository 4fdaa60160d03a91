// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/ledger"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/rpc/ratelimit"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 1000
)

// Events - type for RPC calls
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Handler
}

// New - create the event log RPC handler
func New(log *logger.L, ldgr ledger.Handler) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Ledger:  ldgr,
	}
}

// GetArguments - event to read
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// GetReply - one event
type GetReply struct {
	Event *record.Event `json:"event"`
}

// Get - read one event
func (events *Events) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(events.Limiter); nil != err {
		return fault.WithCode(err)
	}

	event, err := events.Ledger.Event(arguments.Id)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Event = event
	return nil
}

// ListArguments - range of events
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - events in id order and where to continue
type ListReply struct {
	Events    []record.Event `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
}

// List - read up to count events starting at start
func (events *Events) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(events.Limiter, arguments.Count, eventlog.MaximumFetch); nil != err {
		return fault.WithCode(err)
	}

	list, err := events.Ledger.Events(arguments.Start, arguments.Count)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Events = list
	reply.NextStart = arguments.Start
	if n := len(list); n > 0 {
		reply.NextStart = list[n-1].Id + 1
	}
	return nil
}

// LastArguments - empty arguments for last id request
type LastArguments struct{}

// LastReply - id of the newest event, zero when the log is empty
type LastReply struct {
	Id uint64 `json:"id,string"`
}

// Last - id of the newest event
func (events *Events) Last(_ *LastArguments, reply *LastReply) error {
	if err := ratelimit.Limit(events.Limiter); nil != err {
		return fault.WithCode(err)
	}

	reply.Id = events.Ledger.LastEventID()
	return nil
}
