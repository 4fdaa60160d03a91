// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

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
	rateLimitGovernance = 200
	rateBurstGovernance = 100
)

// Governance - type for RPC calls
type Governance struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Ledger       ledger.Handler
	IsNormalMode func(mode.Mode) bool
}

// New - create the governance RPC handler
func New(log *logger.L, ldgr ledger.Handler, isNormalMode func(mode.Mode) bool) *Governance {
	return &Governance{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitGovernance, rateBurstGovernance),
		Ledger:       ldgr,
		IsNormalMode: isNormalMode,
	}
}

// Governance.Create
// -----------------

// CreateArguments - a new proposal
//
// an empty milestone list selects a single milestone of the whole goal
type CreateArguments struct {
	Caller      principal.Principal `json:"caller"`
	Description string              `json:"description"`
	FundingGoal uint64              `json:"fundingGoal,string"`
	Target      principal.Principal `json:"target"`
	Milestones  []uint64            `json:"milestones"`
}

// CreateReply - id of the new proposal
type CreateReply struct {
	Id uint64 `json:"id,string"`
}

// Create - open a proposal for voting
func (governance *Governance) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := governance.check(); nil != err {
		return err
	}

	id, err := governance.Ledger.CreateProposal(
		arguments.Caller,
		arguments.Description,
		arguments.FundingGoal,
		arguments.Target,
		arguments.Milestones,
	)
	if nil != err {
		return fault.WithCode(err)
	}

	governance.Log.Infof("proposal: %d  created by: %s", id, arguments.Caller)

	reply.Id = id
	return nil
}

// Governance.Vote
// ---------------

// VoteArguments - one weighted ballot
type VoteArguments struct {
	Caller     principal.Principal `json:"caller"`
	ProposalId uint64              `json:"proposalId,string"`
	InFavour   bool                `json:"inFavour"`
	Amount     uint64              `json:"amount,string"`
}

// VoteReply - the recorded ballot
type VoteReply struct {
	Vote record.Vote `json:"vote"`
}

// Vote - cast a ballot on an open proposal
func (governance *Governance) Vote(arguments *VoteArguments, reply *VoteReply) error {
	if err := governance.check(); nil != err {
		return err
	}

	err := governance.Ledger.Vote(arguments.Caller, arguments.ProposalId, arguments.InFavour, arguments.Amount)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Vote = record.Vote{
		ProposalId: arguments.ProposalId,
		Voter:      arguments.Caller,
		InFavour:   arguments.InFavour,
		Weight:     arguments.Amount,
	}
	return nil
}

// Governance.Execute
// ------------------

// ExecuteArguments - proposal to execute
type ExecuteArguments struct {
	Caller     principal.Principal `json:"caller"`
	ProposalId uint64              `json:"proposalId,string"`
}

// ExecuteReply - escrow project created for the proposal
type ExecuteReply struct {
	ProjectId uint64 `json:"projectId,string"`
}

// Execute - execute a closed proposal that met quorum
func (governance *Governance) Execute(arguments *ExecuteArguments, reply *ExecuteReply) error {
	if err := governance.check(); nil != err {
		return err
	}

	projectId, err := governance.Ledger.ExecuteProposal(arguments.Caller, arguments.ProposalId)
	if nil != err {
		return fault.WithCode(err)
	}

	governance.Log.Infof("proposal: %d  executed as project: %d", arguments.ProposalId, projectId)

	reply.ProjectId = projectId
	return nil
}

// Governance.SetDaoContract
// -------------------------

// DaoArguments - new DAO principal
type DaoArguments struct {
	Caller principal.Principal `json:"caller"`
	Dao    principal.Principal `json:"dao"`
}

// DaoReply - role configuration after the change
type DaoReply struct {
	Roles record.RoleConfig `json:"roles"`
}

// SetDaoContract - admin replaces the DAO principal with an audit event
func (governance *Governance) SetDaoContract(arguments *DaoArguments, reply *DaoReply) error {
	if err := governance.check(); nil != err {
		return err
	}

	if err := governance.Ledger.ChangeDaoContract(arguments.Caller, arguments.Dao); nil != err {
		return fault.WithCode(err)
	}

	reply.Roles = governance.Ledger.Roles()
	return nil
}

// Governance.Get
// --------------

// GetArguments - proposal to read
type GetArguments struct {
	Id uint64 `json:"id,string"`
}

// GetReply - proposal and its state at the current height
type GetReply struct {
	Proposal *record.Proposal `json:"proposal"`
	State    string           `json:"state"`
}

// Get - read a proposal
func (governance *Governance) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(governance.Limiter); nil != err {
		return fault.WithCode(err)
	}

	proposal, state, err := governance.Ledger.Proposal(arguments.Id)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Proposal = proposal
	reply.State = state.String()
	return nil
}

// Governance.VoteOf
// -----------------

// VoteOfArguments - ballot to read
type VoteOfArguments struct {
	ProposalId uint64              `json:"proposalId,string"`
	Voter      principal.Principal `json:"voter"`
}

// VoteOf - read one voter's ballot
func (governance *Governance) VoteOf(arguments *VoteOfArguments, reply *VoteReply) error {
	if err := ratelimit.Limit(governance.Limiter); nil != err {
		return fault.WithCode(err)
	}

	vote, err := governance.Ledger.VoteOf(arguments.ProposalId, arguments.Voter)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Vote = *vote
	return nil
}

// common checks for mutating calls
func (governance *Governance) check() error {
	if err := ratelimit.Limit(governance.Limiter); nil != err {
		return fault.WithCode(err)
	}
	if !governance.IsNormalMode(mode.Normal) {
		return fault.WithCode(fault.NotAvailableDuringStartup)
	}
	return nil
}
