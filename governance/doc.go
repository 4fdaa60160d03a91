// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governance - proposals, weighted votes and quorum gated
// execution
//
// A proposal is open for voting until its closing height.  After
// that it may be executed once, provided the share of votes in favour
// reaches the configured quorum; execution asks the escrow engine to
// open a project for the proposal's milestone schedule.
//
// States:
//
//	Open  --(height > closing)-->  Closed-Pending  --(execute)-->  Executed
package governance
