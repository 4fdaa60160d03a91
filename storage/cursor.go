// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/heritaged/fault"
)

// FetchCursor - position within the key range of one pool
type FetchCursor struct {
	pool   *PoolHandle
	bounds ldb_util.Range
}

// NewFetchCursor - cursor covering every key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:   p,
		bounds: p.bounds(),
	}
}

// Seek - start at key, or the first key after it
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.bounds.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Within - restrict the cursor to keys starting with prefix
//
// e.g. all contributions of one project keyed by project id
func (cursor *FetchCursor) Within(prefix []byte) *FetchCursor {
	cursor.bounds = *ldb_util.BytesPrefix(cursor.pool.prefixKey(prefix))
	return cursor
}

// Fetch - next count elements, advancing the cursor past the last one
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.walk(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// successor of the last key returned
		last := cursor.pool.prefixKey(results[n-1].Key)
		cursor.bounds.Start = append(last, 0x00)
	}
	return results, err
}

// Map - apply f to each element in the range, stopping at the first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	var mapErr error
	err := cursor.walk(func(e Element) bool {
		mapErr = f(e.Key, e.Value)
		return nil == mapErr
	})
	if nil != mapErr {
		return mapErr
	}
	return err
}

// visit copies of each element until more returns false
func (cursor *FetchCursor) walk(more func(Element) bool) error {
	iter := cursor.pool.database.NewIterator(&cursor.bounds, nil)
	defer iter.Release()

	for iter.Next() {
		if !more(newElement(iter.Key(), iter.Value())) {
			break
		}
	}
	return iter.Error()
}
