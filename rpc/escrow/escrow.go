// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

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
	rateLimitEscrow = 200
	rateBurstEscrow = 100
)

// Escrow - type for RPC calls
type Escrow struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Ledger       ledger.Handler
	IsNormalMode func(mode.Mode) bool
}

// New - create the escrow RPC handler
func New(log *logger.L, ldgr ledger.Handler, isNormalMode func(mode.Mode) bool) *Escrow {
	return &Escrow{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitEscrow, rateBurstEscrow),
		Ledger:       ldgr,
		IsNormalMode: isNormalMode,
	}
}

// Escrow.Create
// -------------

// CreateArguments - a project created directly by the DAO
type CreateArguments struct {
	Caller     principal.Principal `json:"caller"`
	ProposalId uint64              `json:"proposalId,string"`
	Milestones []uint64            `json:"milestones"`
}

// CreateReply - id of the new project
type CreateReply struct {
	Id uint64 `json:"id,string"`
}

// Create - DAO creates a project
func (escrow *Escrow) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := escrow.check(); nil != err {
		return err
	}

	id, err := escrow.Ledger.CreateProject(arguments.Caller, arguments.ProposalId, arguments.Milestones)
	if nil != err {
		return fault.WithCode(err)
	}

	escrow.Log.Infof("project: %d  created for proposal: %d", id, arguments.ProposalId)

	reply.Id = id
	return nil
}

// Escrow.Fund
// -----------

// FundArguments - a contribution to a project
type FundArguments struct {
	Caller    principal.Principal `json:"caller"`
	ProjectId uint64              `json:"projectId,string"`
	Amount    uint64              `json:"amount,string"`
}

// ContributionReply - cumulative contribution of one principal
type ContributionReply struct {
	Contribution *record.Contribution `json:"contribution"`
}

// Fund - add to a project's escrow
func (escrow *Escrow) Fund(arguments *FundArguments, reply *ContributionReply) error {
	if err := escrow.check(); nil != err {
		return err
	}

	contribution, err := escrow.Ledger.FundProject(arguments.Caller, arguments.ProjectId, arguments.Amount)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Contribution = contribution
	return nil
}

// Escrow.Verify and Escrow.Release
// --------------------------------

// MilestoneArguments - one milestone of a project
type MilestoneArguments struct {
	Caller    principal.Principal `json:"caller"`
	ProjectId uint64              `json:"projectId,string"`
	Index     uint64              `json:"index"`
}

// VerifyReply - the verified milestone
type VerifyReply struct {
	ProjectId uint64 `json:"projectId,string"`
	Index     uint64 `json:"index"`
}

// Verify - oracle confirms a milestone
func (escrow *Escrow) Verify(arguments *MilestoneArguments, reply *VerifyReply) error {
	if err := escrow.check(); nil != err {
		return err
	}

	err := escrow.Ledger.VerifyMilestone(arguments.Caller, arguments.ProjectId, arguments.Index)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.ProjectId = arguments.ProjectId
	reply.Index = arguments.Index
	return nil
}

// ReleaseReply - amount announced for release
type ReleaseReply struct {
	Amount uint64 `json:"amount,string"`
}

// Release - announce release of a verified milestone
func (escrow *Escrow) Release(arguments *MilestoneArguments, reply *ReleaseReply) error {
	if err := escrow.check(); nil != err {
		return err
	}

	amount, err := escrow.Ledger.ReleaseFunds(arguments.Caller, arguments.ProjectId, arguments.Index)
	if nil != err {
		return fault.WithCode(err)
	}

	escrow.Log.Infof("project: %d  milestone: %d  release: %d", arguments.ProjectId, arguments.Index, amount)

	reply.Amount = amount
	return nil
}

// Escrow.Refund
// -------------

// ProjectArguments - project to act on
type ProjectArguments struct {
	Caller    principal.Principal `json:"caller"`
	ProjectId uint64              `json:"projectId,string"`
}

// RefundReply - contributions to be returned
type RefundReply struct {
	Contributions []record.Contribution `json:"contributions"`
}

// Refund - DAO deactivates a project, the reply lists the contributions
// the asset transfer service must return
func (escrow *Escrow) Refund(arguments *ProjectArguments, reply *RefundReply) error {
	if err := escrow.check(); nil != err {
		return err
	}

	err := escrow.Ledger.RefundContributors(arguments.Caller, arguments.ProjectId)
	if nil != err {
		return fault.WithCode(err)
	}

	escrow.Log.Infof("project: %d  refunded", arguments.ProjectId)

	contributions, err := escrow.Ledger.RefundList(arguments.ProjectId)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Contributions = contributions
	return nil
}

// reads
// -----

// ProjectReply - project state
type ProjectReply struct {
	Project *record.Project `json:"project"`
}

// Get - read a project
func (escrow *Escrow) Get(arguments *ProjectArguments, reply *ProjectReply) error {
	if err := ratelimit.Limit(escrow.Limiter); nil != err {
		return fault.WithCode(err)
	}

	project, err := escrow.Ledger.Project(arguments.ProjectId)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Project = project
	return nil
}

// ContributionArguments - contribution to read
type ContributionArguments struct {
	ProjectId   uint64              `json:"projectId,string"`
	Contributor principal.Principal `json:"contributor"`
}

// Contribution - read one contributor's total
func (escrow *Escrow) Contribution(arguments *ContributionArguments, reply *ContributionReply) error {
	if err := ratelimit.Limit(escrow.Limiter); nil != err {
		return fault.WithCode(err)
	}

	contribution, err := escrow.Ledger.Contribution(arguments.ProjectId, arguments.Contributor)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Contribution = contribution
	return nil
}

// RefundList - list every contribution of a project
func (escrow *Escrow) RefundList(arguments *ProjectArguments, reply *RefundReply) error {
	if err := ratelimit.Limit(escrow.Limiter); nil != err {
		return fault.WithCode(err)
	}

	contributions, err := escrow.Ledger.RefundList(arguments.ProjectId)
	if nil != err {
		return fault.WithCode(err)
	}

	reply.Contributions = contributions
	return nil
}

// common checks for mutating calls
func (escrow *Escrow) check() error {
	if err := ratelimit.Limit(escrow.Limiter); nil != err {
		return fault.WithCode(err)
	}
	if !escrow.IsNormalMode(mode.Normal) {
		return fault.WithCode(fault.NotAvailableDuringStartup)
	}
	return nil
}
