// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"fmt"
	"math/bits"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/access"
	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/height"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/storage"
)

// name of the counter holding the last proposal id
const counterName = "proposal"

// Configuration - voting rules
type Configuration struct {
	VotingPeriod  uint64 `gluamapper:"voting_period" json:"voting_period"`
	QuorumPercent uint64 `gluamapper:"quorum_percent" json:"quorum_percent"`
}

//go:generate mockgen -source=governance.go -destination=mocks/project_creator.go -package=mocks

// ProjectCreator - the escrow entry point used on execution
type ProjectCreator interface {
	CreateProject(trx storage.Transaction, caller principal.Principal, proposalId uint64, milestoneAmounts []uint64) (uint64, error)
	MaximumMilestones() int
}

// Engine - the governance state machine
type Engine struct {
	log           *logger.L
	pools         *storage.Pools
	access        *access.Control
	events        *eventlog.Log
	height        height.Source
	escrow        ProjectCreator
	votingPeriod  uint64
	quorumPercent uint64
}

// New - create a governance engine
func New(log *logger.L, pools *storage.Pools, control *access.Control, events *eventlog.Log, source height.Source, escrow ProjectCreator, configuration Configuration) (*Engine, error) {
	if configuration.QuorumPercent > 100 {
		return nil, fault.InvalidQuorum
	}

	log.Infof("voting period: %d  quorum: %d%%", configuration.VotingPeriod, configuration.QuorumPercent)

	return &Engine{
		log:           log,
		pools:         pools,
		access:        control,
		events:        events,
		height:        source,
		escrow:        escrow,
		votingPeriod:  configuration.VotingPeriod,
		quorumPercent: configuration.QuorumPercent,
	}, nil
}

// CreateProposal - record a new proposal open for voting
//
// an empty milestone schedule means a single milestone of the whole goal
func (e *Engine) CreateProposal(trx storage.Transaction, caller principal.Principal, description string, fundingGoal uint64, target principal.Principal, milestones []uint64) (uint64, error) {
	if e.access.Roles(trx).Paused {
		return 0, fault.Paused
	}
	if "" == description || 0 == fundingGoal || target.IsNull() {
		return 0, fault.InvalidProposal
	}

	schedule, err := e.schedule(fundingGoal, milestones)
	if nil != err {
		return 0, err
	}

	closingHeight, carry := bits.Add64(e.height.Height(), e.votingPeriod, 0)
	if 0 != carry {
		return 0, fault.InvalidProposal
	}

	id := storage.NextCounter(trx, e.pools.Counters, counterName)
	proposal := &record.Proposal{
		Id:            id,
		Creator:       caller,
		Description:   description,
		FundingGoal:   fundingGoal,
		TargetEscrow:  target,
		Milestones:    schedule,
		ClosingHeight: closingHeight,
	}

	_, err = e.events.Append(trx, record.ProposalCreated, id, caller, description)
	if nil != err {
		return 0, err
	}
	e.putProposal(trx, proposal)

	e.log.Infof("proposal: %d  goal: %d  closing height: %d", id, fundingGoal, closingHeight)
	return id, nil
}

// Vote - cast a single weighted vote
//
// the weight is trusted, stake checks belong to the token ledger
func (e *Engine) Vote(trx storage.Transaction, caller principal.Principal, proposalId uint64, inFavour bool, amount uint64) error {
	if e.access.Roles(trx).Paused {
		return fault.Paused
	}

	proposal, err := e.getProposal(trx, proposalId)
	if fault.ProposalNotFound == err || (nil == err && 0 == amount) {
		return fault.InvalidProposal
	} else if nil != err {
		return err
	}

	if e.height.Height() > proposal.ClosingHeight {
		return fault.VotingClosed
	}

	voteKey := storage.PairKey(proposalId, caller.Bytes())
	if trx.Has(e.pools.Votes, voteKey) {
		return fault.AlreadyVoted
	}

	updated, err := proposal.WithVote(inFavour, amount)
	if nil != err {
		return err
	}

	vote := &record.Vote{
		ProposalId: proposalId,
		Voter:      caller,
		InFavour:   inFavour,
		Weight:     amount,
	}

	_, err = e.events.Append(trx, record.VoteCast, proposalId, caller, fmt.Sprintf("inFavour=%t weight=%d", inFavour, amount))
	if nil != err {
		return err
	}
	trx.Put(e.pools.Votes, voteKey, vote.Pack())
	e.putProposal(trx, updated)

	return nil
}

// ExecuteProposal - after closing, execute a proposal that met quorum
//
// returns the id of the escrow project created for it; if the escrow
// engine refuses, the error is returned and the caller must discard
// the transaction
func (e *Engine) ExecuteProposal(trx storage.Transaction, caller principal.Principal, proposalId uint64) (uint64, error) {
	roles := e.access.Roles(trx)
	if roles.Paused {
		return 0, fault.Paused
	}

	proposal, err := e.getProposal(trx, proposalId)
	if fault.ProposalNotFound == err {
		return 0, fault.InvalidProposal
	} else if nil != err {
		return 0, err
	}
	if proposal.Executed {
		return 0, fault.InvalidProposal
	}

	if e.height.Height() <= proposal.ClosingHeight {
		return 0, fault.VotingClosed
	}

	ratio, ok := proposal.QuorumRatio()
	if !ok || ratio < e.quorumPercent {
		return 0, fault.QuorumNotMet
	}

	_, err = e.events.Append(trx, record.ProposalExecuted, proposalId, caller, fmt.Sprintf("for=%d against=%d ratio=%d", proposal.VotesFor, proposal.VotesAgainst, ratio))
	if nil != err {
		return 0, err
	}

	projectId, err := e.escrow.CreateProject(trx, roles.DaoContract, proposalId, proposal.Milestones)
	if nil != err {
		e.log.Warnf("proposal: %d  project creation error: %s", proposalId, err)
		return 0, err
	}
	e.putProposal(trx, proposal.WithExecution(projectId))

	e.log.Infof("proposal: %d  executed as project: %d", proposalId, projectId)
	return projectId, nil
}

// SetDaoContract - admin replaces the DAO principal with an audit event
func (e *Engine) SetDaoContract(trx storage.Transaction, caller principal.Principal, dao principal.Principal) error {
	err := e.access.SetDaoContract(trx, caller, dao)
	if nil != err {
		return err
	}
	_, err = e.events.Append(trx, record.DaoContractChanged, 0, caller, dao.String())
	return err
}

// Proposal - read a proposal
func (e *Engine) Proposal(r storage.Reader, proposalId uint64) (*record.Proposal, error) {
	return e.getProposal(r, proposalId)
}

// VoteOf - read the vote of one voter on a proposal
func (e *Engine) VoteOf(r storage.Reader, proposalId uint64, voter principal.Principal) (*record.Vote, error) {
	packed := r.Get(e.pools.Votes, storage.PairKey(proposalId, voter.Bytes()))
	if nil == packed {
		return nil, fault.VoteNotFound
	}
	return record.UnpackVote(packed)
}

// State - lifecycle state of a proposal at the current height
func (e *Engine) State(r storage.Reader, proposalId uint64) (record.ProposalState, error) {
	proposal, err := e.getProposal(r, proposalId)
	if nil != err {
		return record.Open, err
	}
	return proposal.StateAt(e.height.Height()), nil
}

// check or construct the milestone schedule
func (e *Engine) schedule(fundingGoal uint64, milestones []uint64) ([]uint64, error) {
	if 0 == len(milestones) {
		return []uint64{fundingGoal}, nil
	}
	if len(milestones) > e.escrow.MaximumMilestones() {
		return nil, fault.InvalidProposal
	}

	sum := uint64(0)
	for _, amount := range milestones {
		if 0 == amount {
			return nil, fault.InvalidProposal
		}
		var carry uint64
		sum, carry = bits.Add64(sum, amount, 0)
		if 0 != carry {
			return nil, fault.InvalidProposal
		}
	}
	if sum != fundingGoal {
		return nil, fault.InvalidProposal
	}

	schedule := make([]uint64, len(milestones))
	copy(schedule, milestones)
	return schedule, nil
}

func (e *Engine) getProposal(r storage.Reader, proposalId uint64) (*record.Proposal, error) {
	packed := r.Get(e.pools.Proposals, storage.IdKey(proposalId))
	if nil == packed {
		return nil, fault.ProposalNotFound
	}
	return record.UnpackProposal(packed)
}

func (e *Engine) putProposal(trx storage.Transaction, proposal *record.Proposal) {
	trx.Put(e.pools.Proposals, storage.IdKey(proposal.Id), proposal.Pack())
}
