// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/util"
)

func TestCanonical(t *testing.T) {
	testData := []struct {
		in  string
		out string
		v6  bool
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234", false},
		{" 127.0.0.1:1 ", "127.0.0.1:1", false},
		{"127.0.0.1:65535", "127.0.0.1:65535", false},
		{"0.0.0.0:1234", "0.0.0.0:1234", false},
		{"[::1]:1234", "[::1]:1234", true},
		{"[0:0::0:0]:1234", "[::]:1234", true},
		{"[0:0:0:0::1]:1234", "[::1]:1234", true},
	}

	for i, item := range testData {
		c, v6, err := util.CanonicalIPandPort("", item.in)
		assert.Nil(t, err, "%d: %q", i, item.in)
		assert.Equal(t, item.out, c, "%d: %q", i, item.in)
		assert.Equal(t, item.v6, v6, "%d: %q", i, item.in)
	}
}

func TestCanonicalPrefix(t *testing.T) {
	c, v6, err := util.CanonicalIPandPort("tcp://", "[::1]:2140")
	assert.Nil(t, err, "wrong error")
	assert.True(t, v6, "not IPv6")
	assert.Equal(t, "tcp://[::1]:2140", c, "wrong address")
}

func TestCanonicalIP(t *testing.T) {
	testData := []string{
		"127.1:1234",
		"256.0.0.0:1234",
		"0.0.0.256:1234",
		"0:0:1234",
		"[]:1234",
		"[as34::]:1234",
		"*:1234",
		"no-port",
	}

	for i, d := range testData {
		_, _, err := util.CanonicalIPandPort("", d)
		assert.Equal(t, fault.InvalidIpAddress, err, "%d: %q", i, d)
	}
}

func TestCanonicalPort(t *testing.T) {
	testData := []string{
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"127.0.0.1:-1",
		"127.0.0.1:port",
	}

	for i, d := range testData {
		_, _, err := util.CanonicalIPandPort("", d)
		assert.Equal(t, fault.InvalidPortNumber, err, "%d: %q", i, d)
	}
}
