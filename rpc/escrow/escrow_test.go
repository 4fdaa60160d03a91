// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

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
	"github.com/bitmark-inc/heritaged/rpc/escrow"
	"github.com/bitmark-inc/heritaged/rpc/mocks"
)

func normalMode(mode.Mode) bool   { return true }
func startingMode(mode.Mode) bool { return false }

func setup(t *testing.T, isNormal func(mode.Mode) bool) (*escrow.Escrow, *mocks.MockHandler, *gomock.Controller) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockHandler(ctl)
	e := escrow.New(logger.New(fixtures.LogCategory), l, isNormal)
	return e, l, ctl
}

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().CreateProject(fixtures.Dao, uint64(4), []uint64{100, 200}).Return(uint64(2), nil).Times(1)

	var reply escrow.CreateReply
	err := e.Create(&escrow.CreateArguments{Caller: fixtures.Dao, ProposalId: 4, Milestones: []uint64{100, 200}}, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, uint64(2), reply.Id, "wrong id")
}

func TestCreateWhenNotDao(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().CreateProject(fixtures.Alice, uint64(4), []uint64{100}).Return(uint64(0), fault.NotAuthorised).Times(1)

	var reply escrow.CreateReply
	err := e.Create(&escrow.CreateArguments{Caller: fixtures.Alice, ProposalId: 4, Milestones: []uint64{100}}, &reply)
	assert.Equal(t, fault.CodeNotAuthorised, err.(fault.CodedError).Code, "wrong code")
}

func TestFund(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	contribution := &record.Contribution{ProjectId: 1, Contributor: fixtures.Alice, Amount: 750}
	l.EXPECT().FundProject(fixtures.Alice, uint64(1), uint64(250)).Return(contribution, nil).Times(1)
	l.EXPECT().Contribution(gomock.Any(), gomock.Any()).Times(0)

	var reply escrow.ContributionReply
	err := e.Fund(&escrow.FundArguments{Caller: fixtures.Alice, ProjectId: 1, Amount: 250}, &reply)
	assert.Nil(t, err, "wrong Fund")
	assert.Equal(t, contribution, reply.Contribution, "wrong contribution")
}

func TestFundWhenPaused(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().FundProject(fixtures.Alice, uint64(1), uint64(250)).Return(nil, fault.Paused).Times(1)

	var reply escrow.ContributionReply
	err := e.Fund(&escrow.FundArguments{Caller: fixtures.Alice, ProjectId: 1, Amount: 250}, &reply)
	assert.Equal(t, "102: paused", err.Error(), "wrong error")
	assert.Nil(t, reply.Contribution, "reply changed on error")
}

func TestFundDuringStartup(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, _, ctl := setup(t, startingMode)
	defer ctl.Finish()

	var reply escrow.ContributionReply
	err := e.Fund(&escrow.FundArguments{Caller: fixtures.Alice, ProjectId: 1, Amount: 250}, &reply)
	assert.True(t, errors.Is(err, fault.NotAvailableDuringStartup), "wrong error")
}

func TestVerify(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().VerifyMilestone(fixtures.Oracle, uint64(1), uint64(0)).Return(nil).Times(1)
	l.EXPECT().VerifyMilestone(fixtures.Oracle, uint64(1), uint64(5)).Return(fault.InvalidMilestone).Times(1)

	var reply escrow.VerifyReply
	err := e.Verify(&escrow.MilestoneArguments{Caller: fixtures.Oracle, ProjectId: 1, Index: 0}, &reply)
	assert.Nil(t, err, "wrong Verify")
	assert.Equal(t, escrow.VerifyReply{ProjectId: 1, Index: 0}, reply, "wrong reply")

	err = e.Verify(&escrow.MilestoneArguments{Caller: fixtures.Oracle, ProjectId: 1, Index: 5}, &reply)
	assert.Equal(t, "301: invalid milestone", err.Error(), "wrong error")
}

func TestRelease(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().ReleaseFunds(fixtures.Bob, uint64(1), uint64(0)).Return(uint64(400), nil).Times(1)
	l.EXPECT().ReleaseFunds(fixtures.Bob, uint64(1), uint64(1)).Return(uint64(0), fault.MilestoneNotVerified).Times(1)

	var reply escrow.ReleaseReply
	err := e.Release(&escrow.MilestoneArguments{Caller: fixtures.Bob, ProjectId: 1, Index: 0}, &reply)
	assert.Nil(t, err, "wrong Release")
	assert.Equal(t, uint64(400), reply.Amount, "wrong amount")

	err = e.Release(&escrow.MilestoneArguments{Caller: fixtures.Bob, ProjectId: 1, Index: 1}, &reply)
	assert.Equal(t, fault.CodeMilestoneNotVerified, err.(fault.CodedError).Code, "wrong code")
}

func TestRefund(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	contributions := []record.Contribution{
		{ProjectId: 1, Contributor: fixtures.Alice, Amount: 300},
		{ProjectId: 1, Contributor: fixtures.Bob, Amount: 200},
	}
	gomock.InOrder(
		l.EXPECT().RefundContributors(fixtures.Dao, uint64(1)).Return(nil),
		l.EXPECT().RefundList(uint64(1)).Return(contributions, nil),
	)

	var reply escrow.RefundReply
	err := e.Refund(&escrow.ProjectArguments{Caller: fixtures.Dao, ProjectId: 1}, &reply)
	assert.Nil(t, err, "wrong Refund")
	assert.Equal(t, contributions, reply.Contributions, "wrong contributions")
}

func TestRefundWhenInactive(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, normalMode)
	defer ctl.Finish()

	l.EXPECT().RefundContributors(fixtures.Dao, uint64(1)).Return(fault.InvalidProject).Times(1)

	var reply escrow.RefundReply
	err := e.Refund(&escrow.ProjectArguments{Caller: fixtures.Dao, ProjectId: 1}, &reply)
	assert.Equal(t, "300: invalid project", err.Error(), "wrong error")
}

func TestReads(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	e, l, ctl := setup(t, startingMode)
	defer ctl.Finish()

	project := &record.Project{
		Id:          1,
		ProposalId:  4,
		TotalFunded: 500,
		Milestones: []record.Milestone{
			{Amount: 200, Verified: true, Released: true},
			{Amount: 300},
		},
		Active: true,
	}
	contribution := &record.Contribution{ProjectId: 1, Contributor: fixtures.Carol, Amount: 500}

	l.EXPECT().Project(uint64(1)).Return(project, nil).Times(1)
	l.EXPECT().Contribution(uint64(1), fixtures.Carol).Return(contribution, nil).Times(1)
	l.EXPECT().RefundList(uint64(1)).Return([]record.Contribution{*contribution}, nil).Times(1)
	l.EXPECT().Project(uint64(7)).Return(nil, fault.ProjectNotFound).Times(1)

	var projectReply escrow.ProjectReply
	err := e.Get(&escrow.ProjectArguments{ProjectId: 1}, &projectReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, project, projectReply.Project, "wrong project")

	var contributionReply escrow.ContributionReply
	err = e.Contribution(&escrow.ContributionArguments{ProjectId: 1, Contributor: fixtures.Carol}, &contributionReply)
	assert.Nil(t, err, "wrong Contribution")
	assert.Equal(t, contribution, contributionReply.Contribution, "wrong contribution")

	var refundReply escrow.RefundReply
	err = e.RefundList(&escrow.ProjectArguments{ProjectId: 1}, &refundReply)
	assert.Nil(t, err, "wrong RefundList")
	assert.Equal(t, 1, len(refundReply.Contributions), "wrong contribution count")

	err = e.Get(&escrow.ProjectArguments{ProjectId: 7}, &projectReply)
	assert.True(t, errors.Is(err, fault.ProjectNotFound), "wrong error")
}
