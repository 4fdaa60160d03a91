// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS endpoints for the JSON RPC and HTTPS services
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a started network service
type Listener interface {
	Serve() error
	Close()
}

// split listen addresses into network type and address
//
// "*:PORT" becomes "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		listen = strings.TrimSpace(listen)
		if "" == listen {
			return nil, nil, fault.InvalidIpAddress
		}

		host := ""
		switch listen[0] {
		case '*':
			s := strings.Split(listen, ":")
			if 2 != len(s) {
				return nil, nil, fault.InvalidIpAddress
			}
			addresses[i] = "[::]:" + s[1]
			host = "::"
			networks[i] = "tcp"
		case '[':
			host = strings.Split(listen[1:], "]:")[0]
			addresses[i] = listen
			networks[i] = "tcp6"
		default:
			host = strings.Split(listen, ":")[0]
			addresses[i] = listen
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, err
		}
	}

	return networks, addresses, nil
}
