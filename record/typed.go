// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/heritaged/fault"
)

// UnpackRoleConfig - unpack and check type
func UnpackRoleConfig(packed Packed) (*RoleConfig, error) {
	r, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	roles, ok := r.(*RoleConfig)
	if !ok {
		return nil, fault.UnknownRecordType
	}
	return roles, nil
}

// UnpackProposal - unpack and check type
func UnpackProposal(packed Packed) (*Proposal, error) {
	r, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	proposal, ok := r.(*Proposal)
	if !ok {
		return nil, fault.UnknownRecordType
	}
	return proposal, nil
}

// UnpackVote - unpack and check type
func UnpackVote(packed Packed) (*Vote, error) {
	r, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	vote, ok := r.(*Vote)
	if !ok {
		return nil, fault.UnknownRecordType
	}
	return vote, nil
}

// UnpackProject - unpack and check type
func UnpackProject(packed Packed) (*Project, error) {
	r, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	project, ok := r.(*Project)
	if !ok {
		return nil, fault.UnknownRecordType
	}
	return project, nil
}

// UnpackContribution - unpack and check type
func UnpackContribution(packed Packed) (*Contribution, error) {
	r, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	contribution, ok := r.(*Contribution)
	if !ok {
		return nil, fault.UnknownRecordType
	}
	return contribution, nil
}

// UnpackEvent - unpack and check type
func UnpackEvent(packed Packed) (*Event, error) {
	r, _, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	event, ok := r.(*Event)
	if !ok {
		return nil, fault.UnknownRecordType
	}
	return event, nil
}
