// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - the role configuration consulted by every
// privileged ledger operation
//
// the configuration is a single record holding the admin, DAO and
// oracle principals plus the pause flag; only the admin may change it
package access

import (
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/storage"
)

// key of the single role record
var rolesKey = []byte("roles")

// Control - access control bound to a set of pools
type Control struct {
	log    *logger.L
	pools  *storage.Pools
	events *eventlog.Log
}

// New - create access control
func New(log *logger.L, pools *storage.Pools, events *eventlog.Log) *Control {
	return &Control{
		log:    log,
		pools:  pools,
		events: events,
	}
}

// Roles - current role configuration, zero value before bootstrap
func (c *Control) Roles(r storage.Reader) record.RoleConfig {
	packed := r.Get(c.pools.Roles, rolesKey)
	if nil == packed {
		return record.RoleConfig{}
	}
	roles, err := record.UnpackRoleConfig(packed)
	fault.PanicIfError("access.Roles", err)
	return *roles
}

// Bootstrapped - true once an initial role configuration exists
func (c *Control) Bootstrapped(r storage.Reader) bool {
	return r.Has(c.pools.Roles, rolesKey)
}

// Bootstrap - write the initial roles into an empty database
//
// returns AlreadyBootstrapped without writing if roles exist
func (c *Control) Bootstrap(trx storage.Transaction, admin principal.Principal, dao principal.Principal, oracle principal.Principal) error {
	if c.Bootstrapped(trx) {
		return fault.AlreadyBootstrapped
	}
	if admin.IsNull() || dao.IsNull() || oracle.IsNull() {
		return fault.InvalidAddress
	}

	roles := record.RoleConfig{
		Admin:       admin,
		DaoContract: dao,
		Oracle:      oracle,
	}
	c.store(trx, roles)
	c.log.Infof("bootstrap admin: %s  dao: %s  oracle: %s", admin, dao, oracle)
	return nil
}

// SetPaused - admin sets the pause flag
func (c *Control) SetPaused(trx storage.Transaction, caller principal.Principal, pause bool) (bool, error) {
	roles, err := c.adminRoles(trx, caller)
	if nil != err {
		return false, err
	}

	_, err = c.events.Append(trx, record.PauseToggled, 0, caller, strconv.FormatBool(pause))
	if nil != err {
		return false, err
	}
	c.store(trx, roles.WithPaused(pause))
	return pause, nil
}

// SetDaoContract - admin replaces the DAO principal without an event
func (c *Control) SetDaoContract(trx storage.Transaction, caller principal.Principal, dao principal.Principal) error {
	roles, err := c.adminRoles(trx, caller)
	if nil != err {
		return err
	}
	if dao.IsNull() {
		return fault.InvalidAddress
	}
	c.store(trx, roles.WithDaoContract(dao))
	return nil
}

// SetOracle - admin replaces the oracle principal without an event
func (c *Control) SetOracle(trx storage.Transaction, caller principal.Principal, oracle principal.Principal) error {
	roles, err := c.adminRoles(trx, caller)
	if nil != err {
		return err
	}
	if oracle.IsNull() {
		return fault.InvalidAddress
	}
	c.store(trx, roles.WithOracle(oracle))
	return nil
}

// TransferAdmin - admin hands the admin role to another principal
func (c *Control) TransferAdmin(trx storage.Transaction, caller principal.Principal, admin principal.Principal) error {
	roles, err := c.adminRoles(trx, caller)
	if nil != err {
		return err
	}
	if admin.IsNull() {
		return fault.InvalidAddress
	}

	_, err = c.events.Append(trx, record.AdminTransferred, 0, caller, admin.String())
	if nil != err {
		return err
	}
	c.store(trx, roles.WithAdmin(admin))
	return nil
}

// current roles if the caller is the admin
func (c *Control) adminRoles(r storage.Reader, caller principal.Principal) (record.RoleConfig, error) {
	roles := c.Roles(r)
	if roles.Admin.IsNull() || caller != roles.Admin {
		return roles, fault.NotAuthorised
	}
	return roles, nil
}

func (c *Control) store(trx storage.Transaction, roles record.RoleConfig) {
	trx.Put(c.pools.Roles, rolesKey, roles.Pack())
}
