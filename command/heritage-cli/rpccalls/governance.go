// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/rpc/governance"
)

// ProposalData - fields of a new proposal
type ProposalData struct {
	Caller      principal.Principal
	Description string
	FundingGoal uint64
	Target      principal.Principal
	Milestones  []uint64
}

// CreateProposal - open a proposal, returns its id
func (c *Client) CreateProposal(data *ProposalData) (uint64, error) {
	arguments := &governance.CreateArguments{
		Caller:      data.Caller,
		Description: data.Description,
		FundingGoal: data.FundingGoal,
		Target:      data.Target,
		Milestones:  data.Milestones,
	}
	var reply governance.CreateReply
	if err := c.call("Governance.Create", arguments, &reply); err != nil {
		return 0, err
	}
	return reply.Id, nil
}

// Vote - cast a weighted ballot
func (c *Client) Vote(caller principal.Principal, proposalId uint64, inFavour bool, amount uint64) (*record.Vote, error) {
	arguments := &governance.VoteArguments{
		Caller:     caller,
		ProposalId: proposalId,
		InFavour:   inFavour,
		Amount:     amount,
	}
	var reply governance.VoteReply
	if err := c.call("Governance.Vote", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply.Vote, nil
}

// Execute - execute a closed proposal, returns the project id
func (c *Client) Execute(caller principal.Principal, proposalId uint64) (uint64, error) {
	arguments := &governance.ExecuteArguments{
		Caller:     caller,
		ProposalId: proposalId,
	}
	var reply governance.ExecuteReply
	if err := c.call("Governance.Execute", arguments, &reply); err != nil {
		return 0, err
	}
	return reply.ProjectId, nil
}

// GetProposal - proposal and its state
func (c *Client) GetProposal(id uint64) (*governance.GetReply, error) {
	var reply governance.GetReply
	if err := c.call("Governance.Get", &governance.GetArguments{Id: id}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
