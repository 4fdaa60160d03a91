// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/heritaged/principal"
)

// TagType - type code for packed records
type TagType uint64

// enumerate the possible record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	RoleConfigTag   = TagType(iota)
	ProposalTag     = TagType(iota)
	VoteTag         = TagType(iota)
	ProjectTag      = TagType(iota)
	ContributionTag = TagType(iota)
	EventTag        = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() Packed
}

// RoleConfig - the principals allowed to perform privileged operations
type RoleConfig struct {
	Admin       principal.Principal `json:"admin"`
	DaoContract principal.Principal `json:"daoContract"`
	Oracle      principal.Principal `json:"oracle"`
	Paused      bool                `json:"paused"`
}

// Proposal - a funding proposal put to a vote
type Proposal struct {
	Id            uint64              `json:"id,string"`
	Creator       principal.Principal `json:"creator"`
	Description   string              `json:"description"`
	FundingGoal   uint64              `json:"fundingGoal,string"`
	TargetEscrow  principal.Principal `json:"targetEscrow"`
	Milestones    []uint64            `json:"milestones"`
	VotesFor      uint64              `json:"votesFor,string"`
	VotesAgainst  uint64              `json:"votesAgainst,string"`
	ClosingHeight uint64              `json:"closingHeight,string"`
	Executed      bool                `json:"executed"`
	ProjectId     uint64              `json:"projectId,string"`
}

// Vote - one voter's weighted ballot on one proposal
type Vote struct {
	ProposalId uint64              `json:"proposalId,string"`
	Voter      principal.Principal `json:"voter"`
	InFavour   bool                `json:"inFavour"`
	Weight     uint64              `json:"weight,string"`
}

// Milestone - a payout unit of a project
type Milestone struct {
	Amount   uint64 `json:"amount,string"`
	Verified bool   `json:"verified"`
	Released bool   `json:"released"`
}

// Project - an escrow funding campaign created from an executed proposal
type Project struct {
	Id          uint64      `json:"id,string"`
	ProposalId  uint64      `json:"proposalId,string"`
	TotalFunded uint64      `json:"totalFunded,string"`
	Milestones  []Milestone `json:"milestones"`
	Active      bool        `json:"active"`
}

// Contribution - cumulative funding by one contributor to one project
type Contribution struct {
	ProjectId   uint64              `json:"projectId,string"`
	Contributor principal.Principal `json:"contributor"`
	Amount      uint64              `json:"amount,string"`
}

// Event - one entry of the audit log
type Event struct {
	Id        uint64              `json:"id,string"`
	Type      EventType           `json:"type"`
	SubjectId uint64              `json:"subjectId,string"`
	Actor     principal.Principal `json:"actor"`
	Payload   string              `json:"payload"`
	Height    uint64              `json:"height,string"`
}
