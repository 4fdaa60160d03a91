// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/storage"
)

// configure for testing
func setupMemory(t *testing.T) *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

func TestOpenFileReopen(t *testing.T) {
	dir, err := ioutil.TempDir("", "heritaged-storage")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "test.leveldb")

	db, err := storage.Open(name, storage.ReadWrite)
	assert.Nil(t, err, "open")

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")
	trx.Put(db.Pool.TestData, []byte("key"), []byte("value"))
	assert.Nil(t, trx.Commit(), "commit")
	db.Close()

	db, err = storage.Open(name, storage.ReadOnly)
	assert.Nil(t, err, "reopen")
	defer db.Close()

	assert.Equal(t, []byte("value"), db.Get(db.Pool.TestData, []byte("key")), "persisted value")
}

func TestOpenMissingReadOnly(t *testing.T) {
	dir, err := ioutil.TempDir("", "heritaged-storage")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	_, err = storage.Open(filepath.Join(dir, "absent.leveldb"), storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")
}

func TestSingleTransaction(t *testing.T) {
	db := setupMemory(t)
	defer db.Close()

	trx, err := db.Begin()
	assert.Nil(t, err, "first begin")

	_, err = db.Begin()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second begin")

	trx.Abort()

	trx, err = db.Begin()
	assert.Nil(t, err, "begin after abort")
	assert.Nil(t, trx.Commit(), "commit")
}

func TestBeginAfterClose(t *testing.T) {
	db := setupMemory(t)
	db.Close()

	_, err := db.Begin()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "begin on closed database")
}
