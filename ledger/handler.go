// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
)

//go:generate mockgen -source=handler.go -destination=../rpc/mocks/ledger.go -package=mocks

// Handler - the operations offered to the RPC layer
type Handler interface {
	Height() uint64
	Roles() record.RoleConfig
	SetPaused(caller principal.Principal, pause bool) (bool, error)
	SetDaoContract(caller principal.Principal, dao principal.Principal) error
	SetOracle(caller principal.Principal, oracle principal.Principal) error
	TransferAdmin(caller principal.Principal, admin principal.Principal) error

	ChangeDaoContract(caller principal.Principal, dao principal.Principal) error
	CreateProposal(caller principal.Principal, description string, fundingGoal uint64, target principal.Principal, milestones []uint64) (uint64, error)
	Vote(caller principal.Principal, proposalId uint64, inFavour bool, amount uint64) error
	ExecuteProposal(caller principal.Principal, proposalId uint64) (uint64, error)
	Proposal(proposalId uint64) (*record.Proposal, record.ProposalState, error)
	VoteOf(proposalId uint64, voter principal.Principal) (*record.Vote, error)

	CreateProject(caller principal.Principal, proposalId uint64, milestoneAmounts []uint64) (uint64, error)
	FundProject(caller principal.Principal, projectId uint64, amount uint64) (*record.Contribution, error)
	VerifyMilestone(caller principal.Principal, projectId uint64, index uint64) error
	ReleaseFunds(caller principal.Principal, projectId uint64, index uint64) (uint64, error)
	RefundContributors(caller principal.Principal, projectId uint64) error
	Project(projectId uint64) (*record.Project, error)
	Contribution(projectId uint64, contributor principal.Principal) (*record.Contribution, error)
	RefundList(projectId uint64) ([]record.Contribution, error)

	Event(id uint64) (*record.Event, error)
	Events(start uint64, count int) ([]record.Event, error)
	LastEventID() uint64
}
