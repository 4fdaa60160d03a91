// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/heritaged/rpc/events"
)

// ListEvents - up to count events from start
func (c *Client) ListEvents(start uint64, count int) (*events.ListReply, error) {
	arguments := &events.ListArguments{
		Start: start,
		Count: count,
	}
	var reply events.ListReply
	if err := c.call("Events.List", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// LastEvent - id of the newest event
func (c *Client) LastEvent() (uint64, error) {
	var reply events.LastReply
	if err := c.call("Events.Last", &events.LastArguments{}, &reply); err != nil {
		return 0, err
	}
	return reply.Id, nil
}
