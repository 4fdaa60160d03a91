// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/access"
	"github.com/bitmark-inc/heritaged/eventlog"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/storage"
)

// release policies
const (
	ReleaseAnnounce = "announce" // every release of a verified milestone is announced
	ReleaseOnce     = "once"     // a milestone can be released only once
)

// defaults for zero configuration values
const (
	DefaultMaximumProjects   = 10000
	DefaultMaximumMilestones = 10
)

// name of the counter holding the last project id
const counterName = "project"

// Configuration - escrow limits and policy
type Configuration struct {
	MaximumProjects   uint64 `gluamapper:"maximum_projects" json:"maximum_projects"`
	MaximumMilestones int    `gluamapper:"maximum_milestones" json:"maximum_milestones"`
	ReleasePolicy     string `gluamapper:"release_policy" json:"release_policy"`
}

// Engine - the escrow state machine
type Engine struct {
	log               *logger.L
	pools             *storage.Pools
	access            *access.Control
	events            *eventlog.Log
	maximumProjects   uint64
	maximumMilestones int
	releaseOnce       bool
}

// New - create an escrow engine
func New(log *logger.L, pools *storage.Pools, control *access.Control, events *eventlog.Log, configuration Configuration) (*Engine, error) {
	e := &Engine{
		log:               log,
		pools:             pools,
		access:            control,
		events:            events,
		maximumProjects:   configuration.MaximumProjects,
		maximumMilestones: configuration.MaximumMilestones,
	}

	if 0 == e.maximumProjects {
		e.maximumProjects = DefaultMaximumProjects
	}
	if e.maximumMilestones <= 0 {
		e.maximumMilestones = DefaultMaximumMilestones
	}
	if e.maximumMilestones > record.MaximumListLength {
		return nil, fault.InvalidMilestoneLimit
	}

	switch configuration.ReleasePolicy {
	case "", ReleaseAnnounce:
		e.releaseOnce = false
	case ReleaseOnce:
		e.releaseOnce = true
	default:
		return nil, fault.InvalidReleasePolicy
	}

	log.Infof("maximum projects: %d  milestones: %d  release once: %t", e.maximumProjects, e.maximumMilestones, e.releaseOnce)
	return e, nil
}

// MaximumMilestones - the bound on a project's milestone list
func (e *Engine) MaximumMilestones() int {
	return e.maximumMilestones
}

// CreateProject - the DAO opens a funding campaign
func (e *Engine) CreateProject(trx storage.Transaction, caller principal.Principal, proposalId uint64, milestoneAmounts []uint64) (uint64, error) {
	roles := e.access.Roles(trx)
	if roles.DaoContract.IsNull() || caller != roles.DaoContract {
		return 0, fault.NotAuthorised
	}

	if 0 == len(milestoneAmounts) || len(milestoneAmounts) > e.maximumMilestones {
		return 0, fault.InvalidProject
	}
	for _, amount := range milestoneAmounts {
		if 0 == amount {
			return 0, fault.InvalidProject
		}
	}

	count, _ := trx.GetN(e.pools.Counters, []byte(counterName))
	if count >= e.maximumProjects {
		return 0, fault.InvalidProject
	}

	milestones := make([]record.Milestone, len(milestoneAmounts))
	for i, amount := range milestoneAmounts {
		milestones[i] = record.Milestone{
			Amount: amount,
		}
	}

	id := storage.NextCounter(trx, e.pools.Counters, counterName)
	project := &record.Project{
		Id:          id,
		ProposalId:  proposalId,
		TotalFunded: 0,
		Milestones:  milestones,
		Active:      true,
	}

	_, err := e.events.Append(trx, record.ProjectCreated, id, caller, fmt.Sprintf("proposal=%d milestones=%d", proposalId, len(milestones)))
	if nil != err {
		return 0, err
	}
	e.putProject(trx, project)

	e.log.Infof("project: %d  created from proposal: %d", id, proposalId)
	return id, nil
}

// FundProject - add to a contributor's total for an active project
func (e *Engine) FundProject(trx storage.Transaction, caller principal.Principal, projectId uint64, amount uint64) (*record.Contribution, error) {
	if e.access.Roles(trx).Paused {
		return nil, fault.Paused
	}
	if 0 == amount {
		return nil, fault.InvalidAmount
	}

	project, err := e.activeProject(trx, projectId)
	if nil != err {
		return nil, err
	}

	contribution, err := e.getContribution(trx, projectId, caller)
	if fault.ContributionNotFound == err {
		contribution = &record.Contribution{
			ProjectId:   projectId,
			Contributor: caller,
		}
	} else if nil != err {
		return nil, err
	}

	updatedContribution, err := contribution.WithAmount(amount)
	if nil != err {
		return nil, err
	}
	updatedProject, err := project.WithFunding(amount)
	if nil != err {
		return nil, err
	}

	_, err = e.events.Append(trx, record.ProjectFunded, projectId, caller, fmt.Sprintf("amount=%d", amount))
	if nil != err {
		return nil, err
	}
	trx.Put(e.pools.Contributions, storage.PairKey(projectId, caller.Bytes()), updatedContribution.Pack())
	e.putProject(trx, updatedProject)

	return updatedContribution, nil
}

// VerifyMilestone - the oracle attests completion of one milestone
func (e *Engine) VerifyMilestone(trx storage.Transaction, caller principal.Principal, projectId uint64, index uint64) error {
	roles := e.access.Roles(trx)
	if roles.Oracle.IsNull() || caller != roles.Oracle {
		return fault.NotAuthorised
	}

	project, err := e.activeProject(trx, projectId)
	if nil != err {
		return err
	}

	if index >= uint64(len(project.Milestones)) || project.Milestones[index].Verified {
		return fault.InvalidMilestone
	}

	_, err = e.events.Append(trx, record.MilestoneVerified, projectId, caller, fmt.Sprintf("milestone=%d", index))
	if nil != err {
		return err
	}
	e.putProject(trx, project.WithMilestoneVerified(int(index)))

	e.log.Infof("project: %d  milestone: %d verified", projectId, index)
	return nil
}

// ReleaseFunds - announce the payout of a verified milestone
//
// returns the milestone amount, the transfer itself happens elsewhere
func (e *Engine) ReleaseFunds(trx storage.Transaction, caller principal.Principal, projectId uint64, index uint64) (uint64, error) {
	if e.access.Roles(trx).Paused {
		return 0, fault.Paused
	}

	project, err := e.activeProject(trx, projectId)
	if nil != err {
		return 0, err
	}

	if index >= uint64(len(project.Milestones)) || !project.Milestones[index].Verified {
		return 0, fault.MilestoneNotVerified
	}
	milestone := project.Milestones[index]
	if e.releaseOnce && milestone.Released {
		return 0, fault.MilestoneAlreadyReleased
	}

	_, err = e.events.Append(trx, record.FundsReleased, projectId, caller, fmt.Sprintf("milestone=%d amount=%d", index, milestone.Amount))
	if nil != err {
		return 0, err
	}
	if !milestone.Released {
		e.putProject(trx, project.WithMilestoneReleased(int(index)))
	}

	e.log.Infof("project: %d  milestone: %d released amount: %d", projectId, index, milestone.Amount)
	return milestone.Amount, nil
}

// RefundContributors - the DAO closes a failed project
func (e *Engine) RefundContributors(trx storage.Transaction, caller principal.Principal, projectId uint64) error {
	roles := e.access.Roles(trx)
	if roles.DaoContract.IsNull() || caller != roles.DaoContract {
		return fault.NotAuthorised
	}

	project, err := e.activeProject(trx, projectId)
	if nil != err {
		return err
	}

	_, err = e.events.Append(trx, record.ProjectRefunded, projectId, caller, fmt.Sprintf("total=%d", project.TotalFunded))
	if nil != err {
		return err
	}
	e.putProject(trx, project.Deactivated())

	e.log.Warnf("project: %d  closed for refund of: %d", projectId, project.TotalFunded)
	return nil
}

// Project - read a project
func (e *Engine) Project(r storage.Reader, projectId uint64) (*record.Project, error) {
	packed := r.Get(e.pools.Projects, storage.IdKey(projectId))
	if nil == packed {
		return nil, fault.ProjectNotFound
	}
	return record.UnpackProject(packed)
}

// Contribution - read the cumulative contribution of one contributor
func (e *Engine) Contribution(r storage.Reader, projectId uint64, contributor principal.Principal) (*record.Contribution, error) {
	return e.getContribution(r, projectId, contributor)
}

// active project or InvalidProject
func (e *Engine) activeProject(r storage.Reader, projectId uint64) (*record.Project, error) {
	project, err := e.Project(r, projectId)
	if fault.ProjectNotFound == err {
		return nil, fault.InvalidProject
	} else if nil != err {
		return nil, err
	}
	if !project.Active {
		return nil, fault.InvalidProject
	}
	return project, nil
}

func (e *Engine) getContribution(r storage.Reader, projectId uint64, contributor principal.Principal) (*record.Contribution, error) {
	packed := r.Get(e.pools.Contributions, storage.PairKey(projectId, contributor.Bytes()))
	if nil == packed {
		return nil, fault.ContributionNotFound
	}
	return record.UnpackContribution(packed)
}

func (e *Engine) putProject(trx storage.Transaction, project *record.Project) {
	trx.Put(e.pools.Projects, storage.IdKey(project.Id), project.Pack())
}
