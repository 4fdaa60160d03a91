// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - projects, milestones and contributions
//
// A project is created by the DAO principal when a proposal is
// executed.  Anyone may fund an active project, the oracle verifies
// milestones one at a time and release of a verified milestone is
// announced with its amount.  The DAO may close a failed project,
// after which the contributions form the refund list handed to the
// external transfer service.
//
// Every operation validates fully before writing anything into the
// caller's transaction.
package escrow
