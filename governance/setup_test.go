// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/access"
	"github.com/bitmark-inc/heritaged/escrow"
	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fixtures"
	"github.com/bitmark-inc/heritaged/governance"
	"github.com/bitmark-inc/heritaged/height"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/storage"
)

const (
	votingPeriod  = 1440
	quorumPercent = 60
)

type testData struct {
	t       *testing.T
	db      *storage.Database
	height  *height.Counter
	events  *eventlog.Log
	control *access.Control
	escrow  *escrow.Engine
	engine  *governance.Engine
}

// creator nil selects the real escrow engine
func setup(t *testing.T, creator governance.ProjectCreator) *testData {
	fixtures.SetupTestLogger()
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	log := logger.New(fixtures.LogCategory)
	counter := height.NewCounter(100)
	events := eventlog.New(log, &db.Pool, counter)
	control := access.New(log, &db.Pool, events)
	escrowEngine, err := escrow.New(log, &db.Pool, control, events, escrow.Configuration{MaximumMilestones: 4})
	if nil != err {
		t.Fatalf("escrow new error: %s", err)
	}
	if nil == creator {
		creator = escrowEngine
	}
	engine, err := governance.New(log, &db.Pool, control, events, counter, creator, governance.Configuration{
		VotingPeriod:  votingPeriod,
		QuorumPercent: quorumPercent,
	})
	if nil != err {
		t.Fatalf("governance new error: %s", err)
	}

	d := &testData{
		t:       t,
		db:      db,
		height:  counter,
		events:  events,
		control: control,
		escrow:  escrowEngine,
		engine:  engine,
	}
	err = d.apply(func(trx storage.Transaction) error {
		return control.Bootstrap(trx, fixtures.Admin, fixtures.Dao, fixtures.Oracle)
	})
	if nil != err {
		t.Fatalf("bootstrap error: %s", err)
	}
	return d
}

func (d *testData) teardown() {
	d.db.Close()
	fixtures.TeardownTestLogger()
}

// run one operation in its own transaction, committing only on success
func (d *testData) apply(f func(storage.Transaction) error) error {
	trx, err := d.db.Begin()
	if nil != err {
		d.t.Fatalf("begin error: %s", err)
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func (d *testData) setHeight(h uint64) {
	if err := d.height.Set(h); nil != err {
		d.t.Fatalf("set height error: %s", err)
	}
}

func (d *testData) propose(caller principal.Principal, description string, goal uint64, milestones ...uint64) (id uint64, err error) {
	err = d.apply(func(trx storage.Transaction) error {
		id, err = d.engine.CreateProposal(trx, caller, description, goal, fixtures.Target, milestones)
		return err
	})
	return
}

func (d *testData) vote(caller principal.Principal, proposalId uint64, inFavour bool, amount uint64) error {
	return d.apply(func(trx storage.Transaction) error {
		return d.engine.Vote(trx, caller, proposalId, inFavour, amount)
	})
}

func (d *testData) execute(caller principal.Principal, proposalId uint64) (projectId uint64, err error) {
	err = d.apply(func(trx storage.Transaction) error {
		projectId, err = d.engine.ExecuteProposal(trx, caller, proposalId)
		return err
	})
	return
}

func (d *testData) pause(pause bool) {
	err := d.apply(func(trx storage.Transaction) error {
		_, err := d.control.SetPaused(trx, fixtures.Admin, pause)
		return err
	})
	if nil != err {
		d.t.Fatalf("pause error: %s", err)
	}
}
