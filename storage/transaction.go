// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/heritaged/fault"
)

// Transaction - a batch of writes that is applied atomically
//
// reads through a transaction see its own pending writes
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	database *Database
	batch    *leveldb.Batch
	cache    *dbCache
	done     bool
}

func newTransaction(d *Database) *transaction {
	return &transaction{
		database: d,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

// Put - queue a key/value write
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.batch.Put(k, v)
	t.cache.set(dbPut, k, v)
}

// PutN - queue a write of a big endian uint64
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

// Delete - queue removal of a key
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	t.batch.Delete(k)
	t.cache.set(dbDelete, k, nil)
}

// Get - pending value if any, otherwise the committed value
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	value, deleted, found := t.cache.get(p.prefixKey(key))
	if deleted {
		return nil
	}
	if found {
		return value
	}
	return p.Get(key)
}

// GetN - pending or committed value decoded as uint64
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Panicf("transaction.GetN truncated record for: %x", p.prefixKey(key))
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - pending or committed existence of a key
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	_, deleted, found := t.cache.get(p.prefixKey(key))
	if deleted {
		return false
	}
	if found {
		return true
	}
	return p.Has(key)
}

// Commit - write all pending operations in one batch
func (t *transaction) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	defer t.database.finish()
	defer t.cache.clear()

	t.database.Lock()
	db := t.database.db
	t.database.Unlock()
	if nil == db {
		return fault.DatabaseIsNotSet
	}
	return db.Write(t.batch, nil)
}

// Abort - discard all pending operations
func (t *transaction) Abort() {
	if t.done {
		return
	}
	t.done = true
	t.batch.Reset()
	t.cache.clear()
	t.database.finish()
}
