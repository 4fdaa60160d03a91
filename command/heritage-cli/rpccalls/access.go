// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/rpc/access"
)

// Roles - current role configuration
func (c *Client) Roles() (*record.RoleConfig, error) {
	var reply access.RolesReply
	if err := c.call("Access.Roles", &access.RolesArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply.Roles, nil
}

// SetPaused - pause or resume mutating operations
func (c *Client) SetPaused(caller principal.Principal, pause bool) (bool, error) {
	arguments := &access.PauseArguments{
		Caller: caller,
		Pause:  pause,
	}
	var reply access.PauseReply
	if err := c.call("Access.SetPaused", arguments, &reply); err != nil {
		return false, err
	}
	return reply.Paused, nil
}

// SetRole - replace one role holder, role is one of: dao, oracle, admin
func (c *Client) SetRole(role string, caller principal.Principal, holder principal.Principal) (*record.RoleConfig, error) {
	method := ""
	switch role {
	case "dao":
		method = "Access.SetDaoContract"
	case "oracle":
		method = "Access.SetOracle"
	case "admin":
		method = "Access.TransferAdmin"
	default:
		return nil, ErrUnknownRole
	}

	arguments := &access.RoleArguments{
		Caller:    caller,
		Principal: holder,
	}
	var reply access.RolesReply
	if err := c.call(method, arguments, &reply); err != nil {
		return nil, err
	}
	return &reply.Roles, nil
}
