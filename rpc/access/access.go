// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/ledger"
	"github.com/bitmark-inc/heritaged/mode"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/rpc/ratelimit"
)

const (
	rateLimitAccess = 10
	rateBurstAccess = 20
)

// Access - type for RPC calls
type Access struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Ledger       ledger.Handler
	IsNormalMode func(mode.Mode) bool
}

// New - create the access control RPC handler
func New(log *logger.L, ldgr ledger.Handler, isNormalMode func(mode.Mode) bool) *Access {
	return &Access{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAccess, rateBurstAccess),
		Ledger:       ldgr,
		IsNormalMode: isNormalMode,
	}
}

// RolesArguments - empty arguments for roles request
type RolesArguments struct{}

// RolesReply - the current role configuration
type RolesReply struct {
	Roles record.RoleConfig `json:"roles"`
}

// Roles - read the role configuration
func (access *Access) Roles(_ *RolesArguments, reply *RolesReply) error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return fault.WithCode(err)
	}

	reply.Roles = access.Ledger.Roles()
	return nil
}

// PauseArguments - set or clear the pause flag
type PauseArguments struct {
	Caller principal.Principal `json:"caller"`
	Pause  bool                `json:"pause"`
}

// PauseReply - resulting pause flag
type PauseReply struct {
	Paused bool `json:"paused"`
}

// SetPaused - admin pauses or resumes mutating operations
func (access *Access) SetPaused(arguments *PauseArguments, reply *PauseReply) error {
	if err := access.check(); nil != err {
		return err
	}

	access.Log.Infof("set paused: %t  caller: %s", arguments.Pause, arguments.Caller)

	paused, err := access.Ledger.SetPaused(arguments.Caller, arguments.Pause)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Paused = paused
	return nil
}

// RoleArguments - replace one role holder
type RoleArguments struct {
	Caller    principal.Principal `json:"caller"`
	Principal principal.Principal `json:"principal"`
}

// SetDaoContract - admin replaces the DAO principal
func (access *Access) SetDaoContract(arguments *RoleArguments, reply *RolesReply) error {
	return access.setRole(arguments, reply, "dao", access.Ledger.SetDaoContract)
}

// SetOracle - admin replaces the oracle principal
func (access *Access) SetOracle(arguments *RoleArguments, reply *RolesReply) error {
	return access.setRole(arguments, reply, "oracle", access.Ledger.SetOracle)
}

// TransferAdmin - admin hands the admin role to another principal
func (access *Access) TransferAdmin(arguments *RoleArguments, reply *RolesReply) error {
	return access.setRole(arguments, reply, "admin", access.Ledger.TransferAdmin)
}

func (access *Access) setRole(arguments *RoleArguments, reply *RolesReply, role string, set func(principal.Principal, principal.Principal) error) error {
	if err := access.check(); nil != err {
		return err
	}

	access.Log.Infof("set %s: %s  caller: %s", role, arguments.Principal, arguments.Caller)

	if err := set(arguments.Caller, arguments.Principal); nil != err {
		return fault.WithCode(err)
	}

	reply.Roles = access.Ledger.Roles()
	return nil
}

// common checks for mutating calls
func (access *Access) check() error {
	if err := ratelimit.Limit(access.Limiter); nil != err {
		return fault.WithCode(err)
	}
	if !access.IsNormalMode(mode.Normal) {
		return fault.WithCode(fault.NotAvailableDuringStartup)
	}
	return nil
}
