// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/util"
)

const (
	lingerTime = 100 * time.Millisecond
)

// NewPublisher - bind a PUB socket to a list of addresses
//
// with an empty private key the socket is plain, otherwise it is a
// CURVE server accepting any client
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewPublisher(log *logger.L, zapDomain string, privateKey []byte, publicKey []byte, addresses []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	for _, address := range addresses {
		bindTo, v6, err := util.CanonicalIPandPort("tcp://", address)
		if nil != err {
			log.Errorf("publish address: %q  error: %s", address, err)
			closeAll(socket4, socket6)
			return nil, nil, err
		}

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = newPublishSocket(zapDomain, privateKey, publicKey, v6)
			if nil != err {
				closeAll(socket4, socket6)
				return nil, nil, err
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		if err := socket.Bind(bindTo); nil != err {
			log.Errorf("bind: %q  error: %s", bindTo, err)
			closeAll(socket4, socket6)
			return nil, nil, err
		}
		log.Infof("bind: %q", bindTo)
	}

	return socket4, socket6, nil
}

func newPublishSocket(zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	if len(privateKey) > 0 {
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)
		_ = socket.SetCurveServer(1)
		_ = socket.SetCurveSecretkey(string(privateKey))
		_ = socket.SetZapDomain(zapDomain)
		_ = socket.SetIdentity(string(publicKey))
	}

	_ = socket.SetIpv6(v6)
	_ = socket.SetLinger(lingerTime)

	return socket, nil
}

func closeAll(sockets ...*zmq.Socket) {
	for _, s := range sockets {
		if nil != s {
			_ = s.Close()
		}
	}
}
