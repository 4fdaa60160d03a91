// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/access"
	"github.com/bitmark-inc/heritaged/escrow"
	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fixtures"
	"github.com/bitmark-inc/heritaged/height"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/storage"
)

type testData struct {
	t       *testing.T
	db      *storage.Database
	events  *eventlog.Log
	control *access.Control
	engine  *escrow.Engine
}

func setup(t *testing.T, configuration escrow.Configuration) *testData {
	fixtures.SetupTestLogger()
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	log := logger.New(fixtures.LogCategory)
	events := eventlog.New(log, &db.Pool, height.NewCounter(1))
	control := access.New(log, &db.Pool, events)
	engine, err := escrow.New(log, &db.Pool, control, events, configuration)
	if nil != err {
		t.Fatalf("escrow new error: %s", err)
	}

	d := &testData{
		t:       t,
		db:      db,
		events:  events,
		control: control,
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

func (d *testData) createProject(amounts ...uint64) (id uint64, err error) {
	err = d.apply(func(trx storage.Transaction) error {
		id, err = d.engine.CreateProject(trx, fixtures.Dao, 1, amounts)
		return err
	})
	return
}

func (d *testData) fund(caller principal.Principal, projectId uint64, amount uint64) error {
	return d.apply(func(trx storage.Transaction) error {
		_, err := d.engine.FundProject(trx, caller, projectId, amount)
		return err
	})
}

func (d *testData) verify(caller principal.Principal, projectId uint64, index uint64) error {
	return d.apply(func(trx storage.Transaction) error {
		return d.engine.VerifyMilestone(trx, caller, projectId, index)
	})
}

func (d *testData) release(caller principal.Principal, projectId uint64, index uint64) (amount uint64, err error) {
	err = d.apply(func(trx storage.Transaction) error {
		amount, err = d.engine.ReleaseFunds(trx, caller, projectId, index)
		return err
	})
	return
}

func (d *testData) refund(caller principal.Principal, projectId uint64) error {
	return d.apply(func(trx storage.Transaction) error {
		return d.engine.RefundContributors(trx, caller, projectId)
	})
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
