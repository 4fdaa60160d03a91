// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/heritaged/principal"
)

// Pack - pack the role configuration
func (roles *RoleConfig) Pack() Packed {
	message := appendUint64(nil, uint64(RoleConfigTag))
	message = appendPrincipal(message, roles.Admin)
	message = appendPrincipal(message, roles.DaoContract)
	message = appendPrincipal(message, roles.Oracle)
	return appendBool(message, roles.Paused)
}

// Pack - pack a proposal
func (proposal *Proposal) Pack() Packed {
	message := appendUint64(nil, uint64(ProposalTag))
	message = appendUint64(message, proposal.Id)
	message = appendPrincipal(message, proposal.Creator)
	message = appendString(message, proposal.Description)
	message = appendUint64(message, proposal.FundingGoal)
	message = appendPrincipal(message, proposal.TargetEscrow)
	message = appendUint64(message, uint64(len(proposal.Milestones)))
	for _, amount := range proposal.Milestones {
		message = appendUint64(message, amount)
	}
	message = appendUint64(message, proposal.VotesFor)
	message = appendUint64(message, proposal.VotesAgainst)
	message = appendUint64(message, proposal.ClosingHeight)
	message = appendBool(message, proposal.Executed)
	return appendUint64(message, proposal.ProjectId)
}

// Pack - pack a vote
func (vote *Vote) Pack() Packed {
	message := appendUint64(nil, uint64(VoteTag))
	message = appendUint64(message, vote.ProposalId)
	message = appendPrincipal(message, vote.Voter)
	message = appendBool(message, vote.InFavour)
	return appendUint64(message, vote.Weight)
}

// Pack - pack a project with its milestones
func (project *Project) Pack() Packed {
	message := appendUint64(nil, uint64(ProjectTag))
	message = appendUint64(message, project.Id)
	message = appendUint64(message, project.ProposalId)
	message = appendUint64(message, project.TotalFunded)
	message = appendUint64(message, uint64(len(project.Milestones)))
	for _, m := range project.Milestones {
		message = appendUint64(message, m.Amount)
		message = appendBool(message, m.Verified)
		message = appendBool(message, m.Released)
	}
	return appendBool(message, project.Active)
}

// Pack - pack a contribution
func (contribution *Contribution) Pack() Packed {
	message := appendUint64(nil, uint64(ContributionTag))
	message = appendUint64(message, contribution.ProjectId)
	message = appendPrincipal(message, contribution.Contributor)
	return appendUint64(message, contribution.Amount)
}

// Pack - pack an event
func (event *Event) Pack() Packed {
	message := appendUint64(nil, uint64(EventTag))
	message = appendUint64(message, event.Id)
	message = appendUint64(message, uint64(event.Type))
	message = appendUint64(message, event.SubjectId)
	message = appendPrincipal(message, event.Actor)
	message = appendString(message, event.Payload)
	return appendUint64(message, event.Height)
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a principal to a buffer
//
// fixed length, so no prefix
func appendPrincipal(buffer Packed, p principal.Principal) Packed {
	return append(buffer, p[:]...)
}

func appendBool(buffer Packed, b bool) Packed {
	if b {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(valueBytes, value)
	return append(buffer, valueBytes[:n]...)
}
