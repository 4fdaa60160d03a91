// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strconv"
)

// EventType - what happened
type EventType uint64

// all event types
const (
	UnknownEvent EventType = iota
	PauseToggled
	AdminTransferred
	DaoContractChanged
	ProposalCreated
	VoteCast
	ProposalExecuted
	ProjectCreated
	ProjectFunded
	MilestoneVerified
	FundsReleased
	ProjectRefunded
	maximumEvent
)

var eventNames = map[EventType]string{
	PauseToggled:       "pause-toggled",
	AdminTransferred:   "admin-transferred",
	DaoContractChanged: "dao-contract-changed",
	ProposalCreated:    "proposal-created",
	VoteCast:           "vote-cast",
	ProposalExecuted:   "proposal-executed",
	ProjectCreated:     "project-created",
	ProjectFunded:      "project-funded",
	MilestoneVerified:  "milestone-verified",
	FundsReleased:      "funds-released",
	ProjectRefunded:    "project-refunded",
}

// Valid - true for a defined event type
func (t EventType) Valid() bool {
	return t > UnknownEvent && t < maximumEvent
}

// String - event type as text
func (t EventType) String() string {
	if s, ok := eventNames[t]; ok {
		return s
	}
	return "unknown-" + strconv.FormatUint(uint64(t), 10)
}

// MarshalText - event type for JSON
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText - event type from JSON
func (t *EventType) UnmarshalText(s []byte) error {
	for k, v := range eventNames {
		if v == string(s) {
			*t = k
			return nil
		}
	}
	*t = UnknownEvent
	return nil
}
