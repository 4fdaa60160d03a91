// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/counter"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/ledger"
	"github.com/bitmark-inc/heritaged/rpc/certificate"
	"github.com/bitmark-inc/heritaged/rpc/handler"
	"github.com/bitmark-inc/heritaged/rpc/listeners"
	"github.com/bitmark-inc/heritaged/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	// connected JSON RPC clients
	count counter.Counter

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, ldgr ledger.Handler) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &globalData.count, ldgr)

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &globalData.count, s, tlsConfig, fingerprint)
	if nil != err {
		return err
	}
	globalData.listeners = []listeners.Listener{rpcListener}

	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, _, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}

		hdlr := handler.New(log, s, ldgr, time.Now().UTC(), version, httpsConfiguration.MaximumConnections)
		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	for _, l := range globalData.listeners {
		if err := l.Serve(); nil != err {
			closeAll()
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - close all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	closeAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - number of connected JSON RPC clients
func ConnectionCount() uint64 {
	return globalData.count.Uint64()
}

func closeAll() {
	for _, l := range globalData.listeners {
		l.Close()
	}
	globalData.listeners = nil
}
