// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/storage"
)

// Height - current host height
func (l *Ledger) Height() uint64 {
	return l.height.Height()
}

// access control
// --------------

// Roles - committed role configuration
func (l *Ledger) Roles() record.RoleConfig {
	return l.access.Roles(l.database)
}

// SetPaused - admin sets the pause flag
func (l *Ledger) SetPaused(caller principal.Principal, pause bool) (paused bool, err error) {
	err = l.apply(func(trx storage.Transaction) error {
		paused, err = l.access.SetPaused(trx, caller, pause)
		return err
	})
	return
}

// SetDaoContract - admin replaces the DAO principal, no event
func (l *Ledger) SetDaoContract(caller principal.Principal, dao principal.Principal) error {
	return l.apply(func(trx storage.Transaction) error {
		return l.access.SetDaoContract(trx, caller, dao)
	})
}

// SetOracle - admin replaces the oracle principal, no event
func (l *Ledger) SetOracle(caller principal.Principal, oracle principal.Principal) error {
	return l.apply(func(trx storage.Transaction) error {
		return l.access.SetOracle(trx, caller, oracle)
	})
}

// TransferAdmin - admin hands over the admin role
func (l *Ledger) TransferAdmin(caller principal.Principal, admin principal.Principal) error {
	return l.apply(func(trx storage.Transaction) error {
		return l.access.TransferAdmin(trx, caller, admin)
	})
}

// governance
// ----------

// ChangeDaoContract - admin replaces the DAO principal with an audit event
func (l *Ledger) ChangeDaoContract(caller principal.Principal, dao principal.Principal) error {
	return l.apply(func(trx storage.Transaction) error {
		return l.governance.SetDaoContract(trx, caller, dao)
	})
}

// CreateProposal - open a proposal for voting
func (l *Ledger) CreateProposal(caller principal.Principal, description string, fundingGoal uint64, target principal.Principal, milestones []uint64) (id uint64, err error) {
	err = l.apply(func(trx storage.Transaction) error {
		id, err = l.governance.CreateProposal(trx, caller, description, fundingGoal, target, milestones)
		return err
	})
	return
}

// Vote - cast a weighted vote
func (l *Ledger) Vote(caller principal.Principal, proposalId uint64, inFavour bool, amount uint64) error {
	return l.apply(func(trx storage.Transaction) error {
		return l.governance.Vote(trx, caller, proposalId, inFavour, amount)
	})
}

// ExecuteProposal - execute a closed proposal, returns the new project id
func (l *Ledger) ExecuteProposal(caller principal.Principal, proposalId uint64) (projectId uint64, err error) {
	err = l.apply(func(trx storage.Transaction) error {
		projectId, err = l.governance.ExecuteProposal(trx, caller, proposalId)
		return err
	})
	return
}

// Proposal - committed proposal and its state at the current height
func (l *Ledger) Proposal(proposalId uint64) (*record.Proposal, record.ProposalState, error) {
	proposal, err := l.governance.Proposal(l.database, proposalId)
	if nil != err {
		return nil, record.Open, err
	}
	return proposal, proposal.StateAt(l.height.Height()), nil
}

// VoteOf - committed vote of one voter
func (l *Ledger) VoteOf(proposalId uint64, voter principal.Principal) (*record.Vote, error) {
	return l.governance.VoteOf(l.database, proposalId, voter)
}

// escrow
// ------

// CreateProject - DAO opens a project directly
func (l *Ledger) CreateProject(caller principal.Principal, proposalId uint64, milestoneAmounts []uint64) (id uint64, err error) {
	err = l.apply(func(trx storage.Transaction) error {
		id, err = l.escrow.CreateProject(trx, caller, proposalId, milestoneAmounts)
		return err
	})
	return
}

// FundProject - contribute to an active project
//
// returns the caller's total as committed by this call
func (l *Ledger) FundProject(caller principal.Principal, projectId uint64, amount uint64) (contribution *record.Contribution, err error) {
	err = l.apply(func(trx storage.Transaction) error {
		contribution, err = l.escrow.FundProject(trx, caller, projectId, amount)
		return err
	})
	if nil != err {
		return nil, err
	}
	return contribution, nil
}

// VerifyMilestone - oracle attests one milestone
func (l *Ledger) VerifyMilestone(caller principal.Principal, projectId uint64, index uint64) error {
	return l.apply(func(trx storage.Transaction) error {
		return l.escrow.VerifyMilestone(trx, caller, projectId, index)
	})
}

// ReleaseFunds - announce release of a verified milestone
func (l *Ledger) ReleaseFunds(caller principal.Principal, projectId uint64, index uint64) (amount uint64, err error) {
	err = l.apply(func(trx storage.Transaction) error {
		amount, err = l.escrow.ReleaseFunds(trx, caller, projectId, index)
		return err
	})
	return
}

// RefundContributors - DAO closes a project
func (l *Ledger) RefundContributors(caller principal.Principal, projectId uint64) error {
	return l.apply(func(trx storage.Transaction) error {
		return l.escrow.RefundContributors(trx, caller, projectId)
	})
}

// Project - committed project
func (l *Ledger) Project(projectId uint64) (*record.Project, error) {
	return l.escrow.Project(l.database, projectId)
}

// Contribution - committed contribution
func (l *Ledger) Contribution(projectId uint64, contributor principal.Principal) (*record.Contribution, error) {
	return l.escrow.Contribution(l.database, projectId, contributor)
}

// RefundList - committed contributions of a project
func (l *Ledger) RefundList(projectId uint64) ([]record.Contribution, error) {
	return l.escrow.RefundList(projectId)
}

// events
// ------

// Event - one committed event
func (l *Ledger) Event(id uint64) (*record.Event, error) {
	return l.events.Get(l.database, id)
}

// Events - a range of committed events
func (l *Ledger) Events(start uint64, count int) ([]record.Event, error) {
	return l.events.Fetch(start, count)
}

// LastEventID - id of the last committed event
func (l *Ledger) LastEventID() uint64 {
	return l.events.LastID(l.database)
}
