// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/access"
	"github.com/bitmark-inc/heritaged/escrow"
	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/governance"
	"github.com/bitmark-inc/heritaged/height"
	"github.com/bitmark-inc/heritaged/messagebus"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/storage"
)

// EventCommand - messagebus command for a committed event
const EventCommand = "event"

// RolesConfiguration - initial role holders as base58 principals
type RolesConfiguration struct {
	Admin  string `gluamapper:"admin" json:"admin"`
	Dao    string `gluamapper:"dao" json:"dao"`
	Oracle string `gluamapper:"oracle" json:"oracle"`
}

// Configuration - ledger rules
type Configuration struct {
	Roles      RolesConfiguration       `gluamapper:"roles" json:"roles"`
	Governance governance.Configuration `gluamapper:"governance" json:"governance"`
	Escrow     escrow.Configuration     `gluamapper:"escrow" json:"escrow"`
}

// Ledger - single writer over all state
type Ledger struct {
	sync.Mutex

	log        *logger.L
	database   *storage.Database
	height     *height.Pinned
	events     *eventlog.Log
	access     *access.Control
	governance *governance.Engine
	escrow     *escrow.Engine
	notify     *messagebus.Queue
}

var _ Handler = (*Ledger)(nil)

// New - create the ledger over an open database
//
// notify may be nil if committed events are not published
func New(log *logger.L, database *storage.Database, source height.Source, configuration Configuration, notify *messagebus.Queue) (*Ledger, error) {
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if nil == database {
		return nil, fault.DatabaseIsNotSet
	}

	pinned := height.NewPinned(source)
	pools := &database.Pool
	events := eventlog.New(log, pools, pinned)
	control := access.New(log, pools, events)

	escrowEngine, err := escrow.New(log, pools, control, events, configuration.Escrow)
	if nil != err {
		return nil, err
	}

	governanceEngine, err := governance.New(log, pools, control, events, pinned, escrowEngine, configuration.Governance)
	if nil != err {
		return nil, err
	}

	l := &Ledger{
		log:        log,
		database:   database,
		height:     pinned,
		events:     events,
		access:     control,
		governance: governanceEngine,
		escrow:     escrowEngine,
		notify:     notify,
	}
	return l, nil
}

// Bootstrap - install the configured roles on an empty database
//
// an already bootstrapped database is left unchanged
func (l *Ledger) Bootstrap(roles RolesConfiguration) error {
	if l.access.Bootstrapped(l.database) {
		l.log.Info("roles already present")
		return nil
	}

	admin, err := principal.FromBase58(roles.Admin)
	if nil != err {
		return err
	}
	dao, err := principal.FromBase58(roles.Dao)
	if nil != err {
		return err
	}
	oracle, err := principal.FromBase58(roles.Oracle)
	if nil != err {
		return err
	}

	return l.apply(func(trx storage.Transaction) error {
		return l.access.Bootstrap(trx, admin, dao, oracle)
	})
}

// apply - run one call inside a transaction under the ledger lock
func (l *Ledger) apply(f func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	l.height.Hold()
	defer l.height.Release()

	before := l.events.LastID(l.database)

	trx, err := l.database.Begin()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("commit error: %s", err)
		return err
	}

	l.publish(before)
	return nil
}

// queue events committed after the given id
func (l *Ledger) publish(after uint64) {
	if nil == l.notify {
		return
	}

	last := l.events.LastID(l.database)
	for id := after + 1; id <= last; id += 1 {
		event, err := l.events.Get(l.database, id)
		if nil != err {
			l.log.Errorf("event: %d  read error: %s", id, err)
			continue
		}
		if !l.notify.Send(EventCommand, event.Pack()) {
			l.log.Warnf("event: %d  publish queue full", id)
		}
	}
}
