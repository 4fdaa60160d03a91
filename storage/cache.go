// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// pending operation kinds
const (
	dbPut = iota
	dbDelete
)

// overlay of the writes pending in a transaction
type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// get returns found=true if the key has a pending operation,
// deleted=true if that operation removes the key
func (c *dbCache) get(key []byte) (value []byte, deleted bool, found bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true, true
	}
	return data.value, false, true
}

func (c *dbCache) set(op int, key []byte, value []byte) {
	c.cache.Set(string(key), cacheData{op: op, value: value}, cache.NoExpiration)
}

func (c *dbCache) clear() {
	c.cache.Flush()
}
