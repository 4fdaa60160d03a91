// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - process wide run state of the daemon
//
// mutating RPC calls are accepted only in Normal mode
package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/chain"
	"github.com/bitmark-inc/heritaged/fault"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Normal
	Stopping
	maximum
)

var modeNames = [maximum]string{
	Stopped:  "Stopped",
	Starting: "Starting",
	Normal:   "Normal",
	Stopping: "Stopping",
}

type state struct {
	sync.RWMutex
	log   *logger.L
	mode  Mode
	chain string

	// set once during initialise
	initialised bool
}

var globalData state

// Initialise - select the chain and enter Starting mode
func Initialise(chainName string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("mode")
	if !chain.Valid(chainName) {
		log.Criticalf("unknown chain: %q", chainName)
		return fault.InvalidChain
	}

	globalData.log = log
	globalData.chain = chainName
	globalData.mode = Starting
	globalData.initialised = true

	log.Infof("chain: %s  testing: %t", chainName, chain.IsTesting(chainName))
	return nil
}

// Finalise - enter Stopped mode and release the chain
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.mode = Stopped
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// Set - change mode, out of range values are ignored
func Set(mode Mode) {
	globalData.Lock()
	defer globalData.Unlock()

	if mode < Stopped || mode >= maximum {
		if nil != globalData.log {
			globalData.log.Errorf("ignore invalid set: %d", mode)
		}
		return
	}

	if nil != globalData.log && mode != globalData.mode {
		globalData.log.Infof("%s -> %s", globalData.mode, mode)
	}
	globalData.mode = mode
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	return !Is(mode)
}

// IsTesting - true for the testing and local chains
func IsTesting() bool {
	return chain.IsTesting(ChainName())
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

func (m Mode) String() string {
	if m < Stopped || m >= maximum {
		return "*Unknown*"
	}
	return modeNames[m]
}
