// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eventlog - the append-only audit trail of ledger actions
//
// events are numbered from 1 without gaps, each carries the height at
// which it was appended and is never changed or removed
package eventlog

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/height"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/storage"
)

// name of the counter holding the last event id
const counterName = "event"

// MaximumFetch - largest number of events returned by one Fetch
const MaximumFetch = 100

// Log - event log bound to a set of pools
type Log struct {
	log    *logger.L
	pools  *storage.Pools
	height height.Source
}

// New - create an event log
func New(log *logger.L, pools *storage.Pools, source height.Source) *Log {
	return &Log{
		log:    log,
		pools:  pools,
		height: source,
	}
}

// Append - add an event inside the caller's transaction
func (l *Log) Append(trx storage.Transaction, eventType record.EventType, subjectId uint64, actor principal.Principal, payload string) (uint64, error) {
	if !eventType.Valid() {
		return 0, fault.InvalidEventType
	}

	id := storage.NextCounter(trx, l.pools.Counters, counterName)
	event := &record.Event{
		Id:        id,
		Type:      eventType,
		SubjectId: subjectId,
		Actor:     actor,
		Payload:   payload,
		Height:    l.height.Height(),
	}
	trx.Put(l.pools.Events, storage.IdKey(id), event.Pack())

	l.log.Debugf("append: %d  type: %s  subject: %d", id, eventType, subjectId)
	return id, nil
}

// Get - read one event
func (l *Log) Get(r storage.Reader, id uint64) (*record.Event, error) {
	packed := r.Get(l.pools.Events, storage.IdKey(id))
	if nil == packed {
		return nil, fault.EventNotFound
	}
	return record.UnpackEvent(packed)
}

// LastID - id of the most recent event, zero if there are none
func (l *Log) LastID(r storage.Reader) uint64 {
	n, _ := r.GetN(l.pools.Counters, []byte(counterName))
	return n
}

// Fetch - committed events with id >= start in ascending order
func (l *Log) Fetch(start uint64, count int) ([]record.Event, error) {
	if count <= 0 || count > MaximumFetch {
		return nil, fault.InvalidCount
	}
	if 0 == start {
		start = 1
	}

	elements, err := l.pools.Events.NewFetchCursor().Seek(storage.IdKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	events := make([]record.Event, 0, len(elements))
	for _, e := range elements {
		event, err := record.UnpackEvent(e.Value)
		if nil != err {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}
