// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/heritaged/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Heritage, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "chain: %q", name)
	}
	for _, name := range []string{"", "bitmark", "Local", "live"} {
		assert.False(t, chain.Valid(name), "chain: %q", name)
	}
}

func TestProperties(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Heritage), "heritage is testing")
	assert.True(t, chain.IsTesting(chain.Testing), "testing is not testing")
	assert.True(t, chain.IsTesting(chain.Local), "local is not testing")

	assert.Equal(t, "local.leveldb", chain.DatabaseName(chain.Local), "wrong database")
	assert.Equal(t, "", chain.DatabaseName("moon"), "unknown chain has a database")
}
