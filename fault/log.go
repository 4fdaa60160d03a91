// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the logger to write out before panicking
const flushDelay = 100 * time.Millisecond

// logger channel used for the last message before an abort
var critical struct {
	sync.Mutex
	log *logger.L
}

// Initialise - open the critical log channel
//
// must be called after logger.Initialise
func Initialise() error {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		return AlreadyInitialised
	}
	critical.log = logger.New("PANIC")
	if nil == critical.log {
		return InvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach the critical log channel
func Finalise() {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		critical.log.Flush()
		critical.log = nil
	}
}

// Panicf - record a formatted message tagged with the caller then abort
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	abort(message)
}

// Panic - record the message then abort
func Panic(message string) {
	abort(message)
}

// PanicIfError - abort when a storage operation the ledger depends on failed
func PanicIfError(operation string, err error) {
	if nil == err {
		return
	}
	abort(fmt.Sprintf("%s failed with error: %v", operation, err))
}

func abort(message string) {
	critical.Lock()
	l := critical.log
	critical.Unlock()

	if nil == l {
		fmt.Printf("*** %s\n", message)
	} else {
		l.Critical(message)
		l.Flush()
		time.Sleep(flushDelay)
	}
	panic(message)
}
