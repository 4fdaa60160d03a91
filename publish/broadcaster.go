// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/messagebus"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/zmqutil"
)

const (
	zapDomain = "publisher"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// Broadcaster - background process forwarding queued events
type Broadcaster struct {
	log     *logger.L
	queue   *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// New - bind the publishing sockets
//
// key files are optional, without them the sockets are plain
func New(log *logger.L, configuration *Configuration, queue *messagebus.Queue) (*Broadcaster, error) {
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}
	if nil == queue {
		return nil, fault.MissingParameters
	}

	var privateKey, publicKey []byte
	if "" != configuration.PrivateKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return nil, err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return nil, err
		}
		log.Infof("public key: %x", publicKey)
	}

	socket4, socket6, err := zmqutil.NewPublisher(log, zapDomain, privateKey, publicKey, configuration.Broadcast)
	if nil != err {
		return nil, err
	}

	return &Broadcaster{
		log:     log,
		queue:   queue,
		socket4: socket4,
		socket6: socket6,
	}, nil
}

// Run - forward events until shutdown
func (brdc *Broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			parts, err := frames(&item)
			if nil != err {
				log.Errorf("command: %s  error: %s", item.Command, err)
				continue
			}
			log.Debugf("sending: %s  type: %s", item.Command, parts[1])
			brdc.send(brdc.socket4, parts)
			brdc.send(brdc.socket6, parts)
		}
	}

	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}
	log.Info("stopped")
}

// convert a queued event to its published parts
func frames(item *messagebus.Message) ([][]byte, error) {
	if 1 != len(item.Parameters) {
		return nil, fault.MissingParameters
	}

	event, err := record.UnpackEvent(item.Parameters[0])
	if nil != err {
		return nil, err
	}

	data, err := json.Marshal(event)
	if nil != err {
		return nil, err
	}

	return [][]byte{
		[]byte(item.Command),
		[]byte(event.Type.String()),
		data,
	}, nil
}

func (brdc *Broadcaster) send(socket *zmq.Socket, parts [][]byte) {
	if nil == socket {
		return
	}

	last := len(parts) - 1
	for i, p := range parts {
		flags := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			brdc.log.Warnf("send error: %s", err)
			return
		}
	}
}
