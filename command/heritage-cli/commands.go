// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/heritaged/command/heritage-cli/rpccalls"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
)

func runInfo(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}
	printJson(m.w, info)
	return nil
}

func runPrincipal(c *cli.Context) error {
	m := getMetadata(c)
	if 0 == c.NArg() {
		return errMissingPrincipal
	}
	for _, seed := range c.Args() {
		fmt.Fprintf(m.w, "%s  %s\n", principal.FromSeed(seed), seed)
	}
	return nil
}

func runRoles(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	roles, err := client.Roles()
	if nil != err {
		return err
	}
	printJson(m.w, roles)
	return nil
}

func runPause(c *cli.Context) error {
	return setPaused(c, true)
}

func runResume(c *cli.Context) error {
	return setPaused(c, false)
}

func setPaused(c *cli.Context, pause bool) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	paused, err := client.SetPaused(caller, pause)
	if nil != err {
		return err
	}
	printJson(m.w, map[string]bool{"paused": paused})
	return nil
}

func runSetRole(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}
	holder, err := parsePrincipal(c.String("principal"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	roles, err := client.SetRole(c.String("role"), caller, holder)
	if nil != err {
		return err
	}
	printJson(m.w, roles)
	return nil
}

func runPropose(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	description := c.String("description")
	if "" == description {
		return errMissingDescription
	}
	target, err := parsePrincipal(c.String("target"))
	if nil != err {
		return err
	}
	milestones, err := parseMilestones(c.String("milestones"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := client.CreateProposal(&rpccalls.ProposalData{
		Caller:      caller,
		Description: description,
		FundingGoal: c.Uint64("goal"),
		Target:      target,
		Milestones:  milestones,
	})
	if nil != err {
		return err
	}
	printJson(m.w, map[string]uint64{"proposalId": id})
	return nil
}

func runVote(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return errZeroAmount
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	vote, err := client.Vote(caller, c.Uint64("proposal"), !c.Bool("against"), amount)
	if nil != err {
		return err
	}
	printJson(m.w, vote)
	return nil
}

func runExecute(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	projectId, err := client.Execute(caller, c.Uint64("proposal"))
	if nil != err {
		return err
	}
	printJson(m.w, map[string]uint64{"projectId": projectId})
	return nil
}

func runProposal(c *cli.Context) error {
	m := getMetadata(c)
	id, err := parseId(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetProposal(id)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runFund(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return errZeroAmount
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	contribution, err := client.Fund(caller, c.Uint64("project"), amount)
	if nil != err {
		return err
	}
	printJson(m.w, contribution)
	return nil
}

func runVerify(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	projectId := c.Uint64("project")
	index := c.Uint64("milestone")
	if err := client.Verify(caller, projectId, index); nil != err {
		return err
	}
	printJson(m.w, map[string]uint64{"projectId": projectId, "verified": index})
	return nil
}

func runRelease(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	amount, err := client.Release(caller, c.Uint64("project"), c.Uint64("milestone"))
	if nil != err {
		return err
	}
	printJson(m.w, map[string]uint64{"amount": amount})
	return nil
}

func runRefund(c *cli.Context) error {
	m := getMetadata(c)
	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	contributions, err := client.Refund(caller, c.Uint64("project"))
	if nil != err {
		return err
	}
	printJson(m.w, contributions)
	return nil
}

type projectOutput struct {
	Project       *record.Project       `json:"project"`
	Contributions []record.Contribution `json:"contributions"`
}

func runProject(c *cli.Context) error {
	m := getMetadata(c)
	id, err := parseId(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	project, err := client.GetProject(id)
	if nil != err {
		return err
	}
	contributions, err := client.RefundList(id)
	if nil != err {
		return err
	}
	printJson(m.w, projectOutput{
		Project:       project,
		Contributions: contributions,
	})
	return nil
}

func runEvents(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListEvents(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}
