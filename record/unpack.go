// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/principal"
)

// MaximumListLength - longest list a record can hold
//
// unpacking refuses larger counts so a corrupt record cannot allocate
// huge slices, packing must therefore never exceed it
const MaximumListLength = 1024

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	switch r := result.(type) {
//	case *record.Proposal:
func (record Packed) Unpack() (Record, int, error) {

	u := &unpacker{buffer: record}

	recordType := TagType(u.uint64())
	if nil != u.err {
		return nil, 0, fault.NotRecordPack
	}

	var r Record

	switch recordType {

	case RoleConfigTag:
		r = &RoleConfig{
			Admin:       u.principal(),
			DaoContract: u.principal(),
			Oracle:      u.principal(),
			Paused:      u.bool(),
		}

	case ProposalTag:
		p := &Proposal{
			Id:           u.uint64(),
			Creator:      u.principal(),
			Description:  u.string(),
			FundingGoal:  u.uint64(),
			TargetEscrow: u.principal(),
		}
		count := u.count()
		p.Milestones = make([]uint64, count)
		for i := range p.Milestones {
			p.Milestones[i] = u.uint64()
		}
		p.VotesFor = u.uint64()
		p.VotesAgainst = u.uint64()
		p.ClosingHeight = u.uint64()
		p.Executed = u.bool()
		p.ProjectId = u.uint64()
		r = p

	case VoteTag:
		r = &Vote{
			ProposalId: u.uint64(),
			Voter:      u.principal(),
			InFavour:   u.bool(),
			Weight:     u.uint64(),
		}

	case ProjectTag:
		p := &Project{
			Id:          u.uint64(),
			ProposalId:  u.uint64(),
			TotalFunded: u.uint64(),
		}
		count := u.count()
		p.Milestones = make([]Milestone, count)
		for i := range p.Milestones {
			p.Milestones[i] = Milestone{
				Amount:   u.uint64(),
				Verified: u.bool(),
				Released: u.bool(),
			}
		}
		p.Active = u.bool()
		r = p

	case ContributionTag:
		r = &Contribution{
			ProjectId:   u.uint64(),
			Contributor: u.principal(),
			Amount:      u.uint64(),
		}

	case EventTag:
		r = &Event{
			Id:        u.uint64(),
			Type:      EventType(u.uint64()),
			SubjectId: u.uint64(),
			Actor:     u.principal(),
			Payload:   u.string(),
			Height:    u.uint64(),
		}

	default:
		return nil, 0, fault.UnknownRecordType
	}

	if nil != u.err {
		return nil, 0, u.err
	}
	return r, u.n, nil
}

// sequential field reader, the first error sticks
type unpacker struct {
	buffer []byte
	n      int
	err    error
}

func (u *unpacker) uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := binary.Uvarint(u.buffer[u.n:])
	if count <= 0 {
		u.err = fault.RecordTruncated
		return 0
	}
	u.n += count
	return value
}

func (u *unpacker) count() int {
	n := u.uint64()
	if n > MaximumListLength {
		u.err = fault.RecordTruncated
		return 0
	}
	return int(n)
}

func (u *unpacker) bool() bool {
	if nil != u.err {
		return false
	}
	if u.n >= len(u.buffer) {
		u.err = fault.RecordTruncated
		return false
	}
	b := u.buffer[u.n]
	u.n += 1
	return 0 != b
}

func (u *unpacker) string() string {
	length := u.uint64()
	if nil != u.err {
		return ""
	}
	if uint64(len(u.buffer)-u.n) < length {
		u.err = fault.RecordTruncated
		return ""
	}
	s := string(u.buffer[u.n : u.n+int(length)])
	u.n += int(length)
	return s
}

func (u *unpacker) principal() principal.Principal {
	p := principal.Principal{}
	if nil != u.err {
		return p
	}
	if len(u.buffer)-u.n < principal.Length {
		u.err = fault.RecordTruncated
		return p
	}
	copy(p[:], u.buffer[u.n:u.n+principal.Length])
	u.n += principal.Length
	return p
}
