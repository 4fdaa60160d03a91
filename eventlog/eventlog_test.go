// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eventlog_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/fixtures"
	"github.com/bitmark-inc/heritaged/height"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/storage"
)

func setup(t *testing.T) (*storage.Database, *height.Counter, *eventlog.Log) {
	fixtures.SetupTestLogger()
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	counter := height.NewCounter(100)
	return db, counter, eventlog.New(logger.New(fixtures.LogCategory), &db.Pool, counter)
}

func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func TestAppendAllocatesSequentialIds(t *testing.T) {
	db, counter, log := setup(t)
	defer teardown(db)

	assert.Equal(t, uint64(0), log.LastID(db), "empty log")

	trx, _ := db.Begin()
	id1, err := log.Append(trx, record.ProposalCreated, 1, fixtures.Alice, "first")
	assert.Nil(t, err, "first append")
	counter.Set(101)
	id2, err := log.Append(trx, record.VoteCast, 1, fixtures.Bob, "second")
	assert.Nil(t, err, "second append")
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, uint64(1), id1, "ids start at 1")
	assert.Equal(t, uint64(2), id2, "ids increase by one")
	assert.Equal(t, uint64(2), log.LastID(db), "last id")

	event, err := log.Get(db, 2)
	assert.Nil(t, err, "get")
	assert.Equal(t, record.VoteCast, event.Type, "type")
	assert.Equal(t, fixtures.Bob, event.Actor, "actor")
	assert.Equal(t, "second", event.Payload, "payload")
	assert.Equal(t, uint64(101), event.Height, "height")
}

func TestAbortedAppendLeavesNoTrace(t *testing.T) {
	db, _, log := setup(t)
	defer teardown(db)

	trx, _ := db.Begin()
	_, err := log.Append(trx, record.ProjectFunded, 1, fixtures.Alice, "")
	assert.Nil(t, err, "append")
	trx.Abort()

	assert.Equal(t, uint64(0), log.LastID(db), "counter untouched")
	_, err = log.Get(db, 1)
	assert.Equal(t, fault.EventNotFound, err, "event absent")
}

func TestAppendInvalidType(t *testing.T) {
	db, _, log := setup(t)
	defer teardown(db)

	trx, _ := db.Begin()
	defer trx.Abort()
	_, err := log.Append(trx, record.UnknownEvent, 1, fixtures.Alice, "")
	assert.Equal(t, fault.InvalidEventType, err, "unknown type")
}

func TestFetch(t *testing.T) {
	db, _, log := setup(t)
	defer teardown(db)

	trx, _ := db.Begin()
	for i := uint64(1); i <= 5; i += 1 {
		log.Append(trx, record.ProjectFunded, i, fixtures.Alice, "")
	}
	assert.Nil(t, trx.Commit(), "commit")

	events, err := log.Fetch(2, 3)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 3, len(events), "count")
	assert.Equal(t, uint64(2), events[0].Id, "first id")
	assert.Equal(t, uint64(4), events[2].Id, "last id")

	events, err = log.Fetch(0, 10)
	assert.Nil(t, err, "fetch from zero")
	assert.Equal(t, 5, len(events), "all events")

	_, err = log.Fetch(1, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
	_, err = log.Fetch(1, eventlog.MaximumFetch+1)
	assert.Equal(t, fault.InvalidCount, err, "excess count")
}
