// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/rpc/escrow"
)

// Fund - contribute to a project, returns the cumulative contribution
func (c *Client) Fund(caller principal.Principal, projectId uint64, amount uint64) (*record.Contribution, error) {
	arguments := &escrow.FundArguments{
		Caller:    caller,
		ProjectId: projectId,
		Amount:    amount,
	}
	var reply escrow.ContributionReply
	if err := c.call("Escrow.Fund", arguments, &reply); err != nil {
		return nil, err
	}
	return reply.Contribution, nil
}

// Verify - oracle verifies a milestone
func (c *Client) Verify(caller principal.Principal, projectId uint64, index uint64) error {
	arguments := &escrow.MilestoneArguments{
		Caller:    caller,
		ProjectId: projectId,
		Index:     index,
	}
	var reply escrow.VerifyReply
	return c.call("Escrow.Verify", arguments, &reply)
}

// Release - announce the release of a verified milestone, returns the amount
func (c *Client) Release(caller principal.Principal, projectId uint64, index uint64) (uint64, error) {
	arguments := &escrow.MilestoneArguments{
		Caller:    caller,
		ProjectId: projectId,
		Index:     index,
	}
	var reply escrow.ReleaseReply
	if err := c.call("Escrow.Release", arguments, &reply); err != nil {
		return 0, err
	}
	return reply.Amount, nil
}

// Refund - close a project, returns the contributions to return
func (c *Client) Refund(caller principal.Principal, projectId uint64) ([]record.Contribution, error) {
	arguments := &escrow.ProjectArguments{
		Caller:    caller,
		ProjectId: projectId,
	}
	var reply escrow.RefundReply
	if err := c.call("Escrow.Refund", arguments, &reply); err != nil {
		return nil, err
	}
	return reply.Contributions, nil
}

// GetProject - read a project
func (c *Client) GetProject(projectId uint64) (*record.Project, error) {
	var reply escrow.ProjectReply
	if err := c.call("Escrow.Get", &escrow.ProjectArguments{ProjectId: projectId}, &reply); err != nil {
		return nil, err
	}
	return reply.Project, nil
}

// GetContribution - read one contributor's total
func (c *Client) GetContribution(projectId uint64, contributor principal.Principal) (*record.Contribution, error) {
	arguments := &escrow.ContributionArguments{
		ProjectId:   projectId,
		Contributor: contributor,
	}
	var reply escrow.ContributionReply
	if err := c.call("Escrow.Contribution", arguments, &reply); err != nil {
		return nil, err
	}
	return reply.Contribution, nil
}

// RefundList - every contribution of a project
func (c *Client) RefundList(projectId uint64) ([]record.Contribution, error) {
	var reply escrow.RefundReply
	if err := c.call("Escrow.RefundList", &escrow.ProjectArguments{ProjectId: projectId}, &reply); err != nil {
		return nil, err
	}
	return reply.Contributions, nil
}
