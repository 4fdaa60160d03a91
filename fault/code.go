// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// Code - numeric code as seen by RPC clients
type Code uint16

// codes for the governance/escrow taxonomy
//
// these values are part of the client protocol and must never be renumbered
const (
	CodeNone                 Code = 0
	CodeNotAuthorised        Code = 100
	CodeInvalidAddress       Code = 101
	CodePaused               Code = 102
	CodeInvalidProposal      Code = 200
	CodeVotingClosed         Code = 201
	CodeQuorumNotMet         Code = 202
	CodeAlreadyVoted         Code = 203
	CodeInvalidProject       Code = 300
	CodeInvalidMilestone     Code = 301
	CodeMilestoneNotVerified Code = 302
	CodeInvalidAmount        Code = 303
	CodeAlreadyReleased      Code = 304
	CodeOther                Code = 999
)

var codes = map[error]Code{
	NotAuthorised:            CodeNotAuthorised,
	InvalidAddress:           CodeInvalidAddress,
	Paused:                   CodePaused,
	InvalidProposal:          CodeInvalidProposal,
	VotingClosed:             CodeVotingClosed,
	QuorumNotMet:             CodeQuorumNotMet,
	AlreadyVoted:             CodeAlreadyVoted,
	InvalidProject:           CodeInvalidProject,
	InvalidMilestone:         CodeInvalidMilestone,
	MilestoneNotVerified:     CodeMilestoneNotVerified,
	InvalidAmount:            CodeInvalidAmount,
	MilestoneAlreadyReleased: CodeAlreadyReleased,
}

// CodeOf - the numeric code of an error
//
// nil is CodeNone, anything outside the taxonomy is CodeOther
func CodeOf(err error) Code {
	if nil == err {
		return CodeNone
	}
	if c, ok := codes[err]; ok {
		return c
	}
	return CodeOther
}

// CodedError - an error carrying its numeric code for RPC clients
type CodedError struct {
	Code Code
	Err  error
}

func (e CodedError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Err)
}

// Unwrap - the original error
func (e CodedError) Unwrap() error { return e.Err }

// WithCode - attach the numeric code to an error, nil stays nil
func WithCode(err error) error {
	if nil == err {
		return nil
	}
	if _, ok := err.(CodedError); ok {
		return err
	}
	return CodedError{
		Code: CodeOf(err),
		Err:  err,
	}
}
