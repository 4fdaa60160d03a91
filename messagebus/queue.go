// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a bounded queue that never blocks the sender
type Queue struct {
	c       chan Message
	dropped uint64
}

// NewQueue - create a queue, size zero selects the default
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = queueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, dropping it if the queue is full
//
// returns false if the message was dropped
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	if nil == queue {
		return false
	}
	select {
	case queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}:
		return true
	default:
		atomic.AddUint64(&queue.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - count of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
