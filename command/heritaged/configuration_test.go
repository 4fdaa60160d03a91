// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/heritaged/chain"
	"github.com/bitmark-inc/heritaged/escrow"
	"github.com/bitmark-inc/heritaged/fixtures"
)

const sampleFile = "heritaged.conf.sample"

// copy the sample and its certificate into a scratch directory
func setupSample(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "heritaged")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	files := map[string]string{
		"heritaged.conf": text,
		"rpc.crt":        fixtures.Certificate(),
		"rpc.key":        fixtures.Key(),
	}
	for name, content := range files {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0600); nil != err {
			t.Fatalf("write: %q  error: %s", name, err)
		}
	}
	return dir, filepath.Join(dir, "heritaged.conf")
}

func readSample(t *testing.T) string {
	sample, err := ioutil.ReadFile(sampleFile)
	if nil != err {
		t.Fatalf("read sample error: %s", err)
	}
	return string(sample)
}

func TestSampleConfiguration(t *testing.T) {
	dir, fileName := setupSample(t, readSample(t))
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "sample configuration error")

	assert.Equal(t, chain.Local, options.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "height"), options.HeightFile, "wrong height file")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")

	assert.Equal(t, fixtures.Certificate(), options.ClientRPC.Certificate, "certificate not read")
	assert.Equal(t, fixtures.Key(), options.ClientRPC.PrivateKey, "key not read")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, []string{"127.0.0.0/8", "::1/128"}, options.HttpsRPC.Allow["events"], "wrong allow")

	assert.Equal(t, uint64(100), options.Ledger.Governance.VotingPeriod, "wrong voting period")
	assert.Equal(t, uint64(51), options.Ledger.Governance.QuorumPercent, "wrong quorum")
	assert.Equal(t, escrow.ReleaseAnnounce, options.Ledger.Escrow.ReleasePolicy, "wrong release policy")

	// no key files were generated
	assert.Equal(t, "", options.Publishing.PrivateKey, "private key kept")
	assert.Equal(t, "", options.Publishing.PublicKey, "public key kept")

	info, err := os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database path not a directory")
}

func TestConfigurationUnknownChain(t *testing.T) {
	dir, fileName := setupSample(t, `return { data_directory = ".", chain = "moon" }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "unknown chain accepted")
}

func TestConfigurationMissingDataDirectory(t *testing.T) {
	dir, fileName := setupSample(t, `return { chain = "local" }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "blank data directory accepted")
}

func TestConfigurationDatabasePath(t *testing.T) {
	dir, fileName := setupSample(t, `return { data_directory = ".", database = { name = "sub/x.leveldb" } }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "database path accepted as name")
}
