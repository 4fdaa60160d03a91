// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/principal"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known principals for tests
var (
	Admin    = principal.FromSeed("admin")
	Dao      = principal.FromSeed("dao")
	Oracle   = principal.FromSeed("oracle")
	Alice    = principal.FromSeed("alice")
	Bob      = principal.FromSeed("bob")
	Carol    = principal.FromSeed("carol")
	Target   = principal.FromSeed("escrow-target")
	Stranger = principal.FromSeed("stranger")
)

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
