// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/heritaged/principal"
)

func TestParsePrincipal(t *testing.T) {
	alice := principal.FromSeed("alice")

	p, err := parsePrincipal("@alice")
	assert.Nil(t, err, "seed error")
	assert.Equal(t, alice, p, "wrong seed principal")

	p, err = parsePrincipal(" " + alice.String() + " ")
	assert.Nil(t, err, "base58 error")
	assert.Equal(t, alice, p, "wrong base58 principal")

	_, err = parsePrincipal("")
	assert.Equal(t, errMissingPrincipal, err, "blank accepted")

	_, err = parsePrincipal("not-base58-0OIl")
	assert.NotNil(t, err, "invalid base58 accepted")
}

func TestParseMilestones(t *testing.T) {
	amounts, err := parseMilestones("100, 200,300")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, []uint64{100, 200, 300}, amounts, "wrong amounts")

	amounts, err = parseMilestones("  ")
	assert.Nil(t, err, "blank error")
	assert.Nil(t, amounts, "blank gave amounts")

	_, err = parseMilestones("100,x")
	assert.NotNil(t, err, "non numeric accepted")

	_, err = parseMilestones("-5")
	assert.NotNil(t, err, "negative accepted")
}

func TestGetCaller(t *testing.T) {
	_, err := getCaller(&metadata{})
	assert.Equal(t, errMissingCaller, err, "missing caller accepted")

	p, err := getCaller(&metadata{caller: "@dao"})
	assert.Nil(t, err, "caller error")
	assert.Equal(t, principal.FromSeed("dao"), p, "wrong caller")
}
