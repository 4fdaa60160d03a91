// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/record"
	"github.com/bitmark-inc/heritaged/storage"
)

// RefundList - committed contributions of a project in contributor order
//
// this is the list the external transfer service uses to return funds
// once RefundContributors has closed the project
func (e *Engine) RefundList(projectId uint64) ([]record.Contribution, error) {
	if !e.pools.Projects.Has(storage.IdKey(projectId)) {
		return nil, fault.ProjectNotFound
	}

	contributions := make([]record.Contribution, 0, 16)

	cursor := e.pools.Contributions.NewFetchCursor().Within(storage.IdKey(projectId))
	err := cursor.Map(func(key []byte, value []byte) error {
		c, err := record.UnpackContribution(value)
		if nil != err {
			return err
		}
		contributions = append(contributions, *c)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return contributions, nil
}
