// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/fixtures"
	"github.com/bitmark-inc/heritaged/mode"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/rpc/governance"
	"github.com/bitmark-inc/heritaged/rpc/mocks"
)

func normalMode(mode.Mode) bool   { return true }
func startingMode(mode.Mode) bool { return false }

func setup(t *testing.T, isNormal func(mode.Mode) bool) (*governance.Governance, *mocks.MockHandler, *gomock.Controller) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockHandler(ctl)
	g := governance.New(logger.New(fixtures.LogCategory), l, isNormal)
	return g, l, ctl
}

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	args := governance.CreateArguments{
		Caller:      fixtures.Alice,
		Description: "community garden",
		FundingGoal: 1000,
		Target:      fixtures.Target,
		Milestones:  []uint64{400, 600},
	}
	l.EXPECT().CreateProposal(fixtures.Alice, "community garden", uint64(1000), fixtures.Target, []uint64{400, 600}).Return(uint64(1), nil).Times(1)

	var reply governance.CreateReply
	err := g.Create(&args, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, uint64(1), reply.Id, "wrong id")
}

func TestCreateWhenInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().CreateProposal(fixtures.Alice, "", uint64(1000), fixtures.Target, []uint64(nil)).Return(uint64(0), fault.InvalidProposal).Times(1)

	var reply governance.CreateReply
	err := g.Create(&governance.CreateArguments{Caller: fixtures.Alice, FundingGoal: 1000, Target: fixtures.Target}, &reply)
	assert.Equal(t, "200: invalid proposal", err.Error(), "wrong error")
}

func TestCreateDuringStartup(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, _, ctl := setup(t, startingMode)
	defer ctl.Finish()

	var reply governance.CreateReply
	err := g.Create(&governance.CreateArguments{}, &reply)
	assert.True(t, errors.Is(err, fault.NotAvailableDuringStartup), "wrong error")
}

func TestVote(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().Vote(fixtures.Bob, uint64(3), true, uint64(70)).Return(nil).Times(1)

	var reply governance.VoteReply
	err := g.Vote(&governance.VoteArguments{Caller: fixtures.Bob, ProposalId: 3, InFavour: true, Amount: 70}, &reply)
	assert.Nil(t, err, "wrong Vote")
	assert.Equal(t, record.Vote{ProposalId: 3, Voter: fixtures.Bob, InFavour: true, Weight: 70}, reply.Vote, "wrong vote")
}

func TestVoteWhenAlreadyVoted(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().Vote(fixtures.Bob, uint64(3), false, uint64(5)).Return(fault.AlreadyVoted).Times(1)

	var reply governance.VoteReply
	err := g.Vote(&governance.VoteArguments{Caller: fixtures.Bob, ProposalId: 3, Amount: 5}, &reply)
	assert.Equal(t, fault.CodeAlreadyVoted, err.(fault.CodedError).Code, "wrong code")
}

func TestExecute(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().ExecuteProposal(fixtures.Carol, uint64(3)).Return(uint64(9), nil).Times(1)

	var reply governance.ExecuteReply
	err := g.Execute(&governance.ExecuteArguments{Caller: fixtures.Carol, ProposalId: 3}, &reply)
	assert.Nil(t, err, "wrong Execute")
	assert.Equal(t, uint64(9), reply.ProjectId, "wrong project id")
}

func TestExecuteWhenQuorumNotMet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().ExecuteProposal(fixtures.Carol, uint64(3)).Return(uint64(0), fault.QuorumNotMet).Times(1)

	var reply governance.ExecuteReply
	err := g.Execute(&governance.ExecuteArguments{Caller: fixtures.Carol, ProposalId: 3}, &reply)
	assert.Equal(t, "202: quorum not met", err.Error(), "wrong error")
	assert.Equal(t, uint64(0), reply.ProjectId, "reply changed on error")
}

func TestSetDaoContract(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	roles := record.RoleConfig{Admin: fixtures.Admin, DaoContract: fixtures.Carol, Oracle: fixtures.Oracle}
	gomock.InOrder(
		l.EXPECT().ChangeDaoContract(fixtures.Admin, fixtures.Carol).Return(nil),
		l.EXPECT().Roles().Return(roles),
	)

	var reply governance.DaoReply
	err := g.SetDaoContract(&governance.DaoArguments{Caller: fixtures.Admin, Dao: fixtures.Carol}, &reply)
	assert.Nil(t, err, "wrong SetDaoContract")
	assert.Equal(t, roles, reply.Roles, "wrong roles")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, startingMode)
	defer ctl.Finish()

	proposal := &record.Proposal{
		Id:            2,
		Creator:       fixtures.Alice,
		Description:   "library roof",
		FundingGoal:   500,
		TargetEscrow:  fixtures.Target,
		Milestones:    []uint64{500},
		ClosingHeight: 1540,
	}
	l.EXPECT().Proposal(uint64(2)).Return(proposal, record.ClosedPending, nil).Times(1)

	var reply governance.GetReply
	err := g.Get(&governance.GetArguments{Id: 2}, &reply)
	assert.Nil(t, err, "reads are allowed during startup")
	assert.Equal(t, proposal, reply.Proposal, "wrong proposal")
	assert.Equal(t, record.ClosedPending.String(), reply.State, "wrong state")
}

func TestGetWhenAbsent(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().Proposal(uint64(99)).Return(nil, record.Open, fault.ProposalNotFound).Times(1)

	var reply governance.GetReply
	err := g.Get(&governance.GetArguments{Id: 99}, &reply)
	assert.True(t, errors.Is(err, fault.ProposalNotFound), "wrong error")
	assert.Equal(t, fault.CodeOther, err.(fault.CodedError).Code, "wrong code")
}

func TestVoteOf(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	g, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	vote := &record.Vote{ProposalId: 2, Voter: fixtures.Bob, InFavour: false, Weight: 12}
	l.EXPECT().VoteOf(uint64(2), fixtures.Bob).Return(vote, nil).Times(1)

	var reply governance.VoteReply
	err := g.VoteOf(&governance.VoteOfArguments{ProposalId: 2, Voter: fixtures.Bob}, &reply)
	assert.Nil(t, err, "wrong VoteOf")
	assert.Equal(t, *vote, reply.Vote, "wrong vote")
}
