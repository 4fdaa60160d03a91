// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)

	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "burst %d", i)
	}
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(100, 0)

	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "wrong error")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(100, 50)

	assert.Nil(t, ratelimit.LimitN(limiter, 20, 100), "wrong LimitN")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 100), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 101, 100), "count over maximum")
}

func TestLimitNOverBurst(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)

	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 20, 100), "count over burst")
}

func TestLimitBacklogRefused(t *testing.T) {
	limiter := rate.NewLimiter(0.1, 1)

	assert.Nil(t, ratelimit.Limit(limiter), "first request")
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "backlog beyond maximum delay")

	// cancelled reservation must not consume further tokens
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "still limited")
}

func TestLimitNOutOfRangeChargesOne(t *testing.T) {
	limiter := rate.NewLimiter(0.1, 2)

	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count")
	assert.Nil(t, ratelimit.Limit(limiter), "one token left")
}
