// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling shared by the RPC handlers
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/heritaged/fault"
)

// MaximumDelay - longest a handler goroutine is held before the
// request is refused instead
const MaximumDelay = 2 * time.Second

// Limit - charge a single request
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitN - charge a request that fetches count items
//
// an out of range count still costs one token before being rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return reserve(limiter, count)
	}
	if err := reserve(limiter, 1); nil != err {
		return err
	}
	return fault.InvalidCount
}

func reserve(limiter *rate.Limiter, n int) error {
	now := time.Now()
	r := limiter.ReserveN(now, n)
	if !r.OK() {
		return fault.RateLimiting
	}

	delay := r.DelayFrom(now)
	if delay > MaximumDelay {
		r.CancelAt(now)
		return fault.RateLimiting
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	return nil
}
