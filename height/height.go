// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package height - the host supplied monotonic block height
package height

import (
	"sync"

	"github.com/bitmark-inc/heritaged/fault"
)

// Source - anything that can report the current height
type Source interface {
	Height() uint64
}

// Counter - a height that never decreases
type Counter struct {
	sync.RWMutex
	height uint64
}

// NewCounter - create a counter starting at the given height
func NewCounter(initial uint64) *Counter {
	return &Counter{
		height: initial,
	}
}

// Height - current height
func (c *Counter) Height() uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.height
}

// Set - advance the height, equal values are accepted
func (c *Counter) Set(h uint64) error {
	c.Lock()
	defer c.Unlock()
	if h < c.height {
		return fault.HeightDecreased
	}
	c.height = h
	return nil
}

// Pinned - a source that holds one height for the length of a ledger call
//
// every read between Hold and Release reports the same value so a gate
// and the event recording it cannot disagree
type Pinned struct {
	sync.RWMutex
	source Source
	held   bool
	height uint64
}

// NewPinned - wrap a live source
func NewPinned(source Source) *Pinned {
	return &Pinned{
		source: source,
	}
}

// Hold - capture the live height until Release
func (p *Pinned) Hold() uint64 {
	h := p.source.Height()
	p.Lock()
	p.held = true
	p.height = h
	p.Unlock()
	return h
}

// Release - go back to reporting the live height
func (p *Pinned) Release() {
	p.Lock()
	p.held = false
	p.Unlock()
}

// Height - held height, or the live one when nothing is held
func (p *Pinned) Height() uint64 {
	p.RLock()
	held, h := p.held, p.height
	p.RUnlock()
	if held {
		return h
	}
	return p.source.Height()
}
