// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the ledgers a daemon can run
//
// a chain selects the default database and whether the daemon runs
// in test mode
package chain

// names of all chains
const (
	Heritage = "heritage"
	Testing  = "testing"
	Local    = "local"
)

type properties struct {
	testing  bool
	database string
}

var chains = map[string]properties{
	Heritage: {testing: false, database: Heritage + ".leveldb"},
	Testing:  {testing: true, database: Testing + ".leveldb"},
	Local:    {testing: true, database: Local + ".leveldb"},
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := chains[name]
	return ok
}

// IsTesting - true for chains whose state carries no real value
func IsTesting(name string) bool {
	return chains[name].testing
}

// DatabaseName - default LevelDB directory name, blank for an unknown chain
func DatabaseName(name string) string {
	return chains[name].database
}
