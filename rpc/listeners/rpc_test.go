// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/counter"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/fixtures"
	"github.com/bitmark-inc/heritaged/rpc/certificate"
	"github.com/bitmark-inc/heritaged/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Bandwidth:          10000000,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if err != nil {
		t.Error("register with error: ", err)
		t.FailNow()
	}

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		testTLS(t),
		certificate.Fingerprint{},
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if err != nil {
		t.Error("dial with error: ", err)
		t.FailNow()
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestNewRPCValidation(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	testData := []struct {
		name string
		conf listeners.RPCConfiguration
		err  error
	}{
		{"connections", listeners.RPCConfiguration{MaximumConnections: 0, Bandwidth: 10000000, Listen: []string{"127.0.0.1:2130"}}, fault.MissingParameters},
		{"bandwidth", listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 100, Listen: []string{"127.0.0.1:2130"}}, fault.MissingParameters},
		{"listen", listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{}}, fault.MissingParameters},
		{"address", listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{"localhost:2130"}}, fault.InvalidIpAddress},
		{"wildcard", listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{"*:2130"}}, nil},
		{"ipv6", listeners.RPCConfiguration{MaximumConnections: 1, Bandwidth: 10000000, Listen: []string{"[::1]:2130"}}, nil},
	}

	count := counter.Counter(0)
	for _, item := range testData {
		_, err := listeners.NewRPC(
			&item.conf,
			logger.New(fixtures.LogCategory),
			&count,
			rpc.NewServer(),
			&tls.Config{},
			certificate.Fingerprint{},
		)
		assert.Equal(t, item.err, err, "case: %s", item.name)
	}
}
