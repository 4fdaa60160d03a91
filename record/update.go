// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"math/big"
	"math/bits"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/principal"
)

// ProposalState - life cycle of a proposal
type ProposalState int

// all proposal states
const (
	Open ProposalState = iota
	ClosedPending
	Executed
)

// String - proposal state as text
func (s ProposalState) String() string {
	switch s {
	case Open:
		return "Open"
	case ClosedPending:
		return "Closed-Pending"
	case Executed:
		return "Executed"
	default:
		return "*Unknown*"
	}
}

// WithPaused - copy of roles with a new pause flag
func (roles RoleConfig) WithPaused(paused bool) RoleConfig {
	roles.Paused = paused
	return roles
}

// WithAdmin - copy of roles with a new admin
func (roles RoleConfig) WithAdmin(admin principal.Principal) RoleConfig {
	roles.Admin = admin
	return roles
}

// WithDaoContract - copy of roles with a new DAO identity
func (roles RoleConfig) WithDaoContract(dao principal.Principal) RoleConfig {
	roles.DaoContract = dao
	return roles
}

// WithOracle - copy of roles with a new oracle
func (roles RoleConfig) WithOracle(oracle principal.Principal) RoleConfig {
	roles.Oracle = oracle
	return roles
}

// StateAt - the state of a proposal as seen at a height
//
// voting is open up to and including the closing height
func (proposal *Proposal) StateAt(height uint64) ProposalState {
	switch {
	case proposal.Executed:
		return Executed
	case height > proposal.ClosingHeight:
		return ClosedPending
	default:
		return Open
	}
}

// QuorumRatio - percentage of votes in favour, truncated
//
// second result is false when no votes were cast
func (proposal *Proposal) QuorumRatio() (uint64, bool) {
	if 0 == proposal.VotesFor && 0 == proposal.VotesAgainst {
		return 0, false
	}
	total := new(big.Int).SetUint64(proposal.VotesFor)
	total.Add(total, new(big.Int).SetUint64(proposal.VotesAgainst))

	ratio := new(big.Int).SetUint64(proposal.VotesFor)
	ratio.Mul(ratio, big.NewInt(100))
	ratio.Quo(ratio, total)
	return ratio.Uint64(), true
}

// WithVote - copy of the proposal with a vote added to one tally
func (proposal *Proposal) WithVote(inFavour bool, weight uint64) (*Proposal, error) {
	updated := proposal.clone()
	var carry uint64
	if inFavour {
		updated.VotesFor, carry = bits.Add64(proposal.VotesFor, weight, 0)
	} else {
		updated.VotesAgainst, carry = bits.Add64(proposal.VotesAgainst, weight, 0)
	}
	if 0 != carry {
		return nil, fault.InvalidAmount
	}
	return updated, nil
}

// WithExecution - copy of the proposal marked executed
func (proposal *Proposal) WithExecution(projectId uint64) *Proposal {
	updated := proposal.clone()
	updated.Executed = true
	updated.ProjectId = projectId
	return updated
}

func (proposal *Proposal) clone() *Proposal {
	updated := *proposal
	updated.Milestones = make([]uint64, len(proposal.Milestones))
	copy(updated.Milestones, proposal.Milestones)
	return &updated
}

// WithFunding - copy of the project with more funds
func (project *Project) WithFunding(amount uint64) (*Project, error) {
	total, carry := bits.Add64(project.TotalFunded, amount, 0)
	if 0 != carry {
		return nil, fault.InvalidAmount
	}
	updated := project.clone()
	updated.TotalFunded = total
	return updated, nil
}

// WithMilestoneVerified - copy of the project with one milestone verified
func (project *Project) WithMilestoneVerified(index int) *Project {
	updated := project.clone()
	updated.Milestones[index].Verified = true
	return updated
}

// WithMilestoneReleased - copy of the project with one milestone released
func (project *Project) WithMilestoneReleased(index int) *Project {
	updated := project.clone()
	updated.Milestones[index].Released = true
	return updated
}

// Deactivated - copy of the project closed for refund
func (project *Project) Deactivated() *Project {
	updated := project.clone()
	updated.Active = false
	return updated
}

func (project *Project) clone() *Project {
	updated := *project
	updated.Milestones = make([]Milestone, len(project.Milestones))
	copy(updated.Milestones, project.Milestones)
	return &updated
}

// WithAmount - copy of the contribution increased by amount
func (contribution *Contribution) WithAmount(amount uint64) (*Contribution, error) {
	total, carry := bits.Add64(contribution.Amount, amount, 0)
	if 0 != carry {
		return nil, fault.InvalidAmount
	}
	updated := *contribution
	updated.Amount = total
	return &updated, nil
}
