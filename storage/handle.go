// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/heritaged/fault"
)

// PoolHandle - the structure for a pool
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Reader - read access to committed or pending data
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Panicf("pool.GetN truncated record for: %x", p.prefixKey(key))
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	value, err := p.database.Has(p.prefixKey(key), nil)
	fault.PanicIfError("pool.Has", err)
	return value
}

// LastElement - highest keyed element of the pool, used to recover
// the most recent event
func (p *PoolHandle) LastElement() (Element, bool) {
	bounds := p.bounds()
	iter := p.database.NewIterator(&bounds, nil)
	defer iter.Release()

	if !iter.Last() {
		fault.PanicIfError("pool.LastElement", iter.Error())
		return Element{}, false
	}
	e := newElement(iter.Key(), iter.Value())
	fault.PanicIfError("pool.LastElement", iter.Error())
	return e, true
}

// key range holding every record of the pool
func (p *PoolHandle) bounds() ldb_util.Range {
	return ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
}

// copy an iterator position, dropping the pool prefix from the key
func newElement(prefixedKey []byte, value []byte) Element {
	return Element{
		Key:   append([]byte{}, prefixedKey[1:]...),
		Value: append([]byte{}, value...),
	}
}

// IdKey - big endian encoding of an id for use as a key
func IdKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// PairKey - id followed by a second key component
func PairKey(id uint64, second []byte) []byte {
	key := make([]byte, 8, 8+len(second))
	binary.BigEndian.PutUint64(key, id)
	return append(key, second...)
}

// NextCounter - increment a named counter inside a transaction
//
// the first value allocated is 1
func NextCounter(trx Transaction, pool *PoolHandle, name string) uint64 {
	n, _ := trx.GetN(pool, []byte(name))
	n += 1
	trx.PutN(pool, []byte(name), n)
	return n
}
