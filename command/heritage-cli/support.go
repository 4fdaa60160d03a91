// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/heritaged/command/heritage-cli/rpccalls"
	"github.com/bitmark-inc/heritaged/principal"
)

// prefix marking a seed instead of a base58 principal
const seedPrefix = "@"

var (
	errMissingCaller      = errors.New("missing caller, use --caller")
	errMissingPrincipal   = errors.New("missing principal")
	errMissingDescription = errors.New("missing description")
	errMissingId          = errors.New("missing id")
	errZeroAmount         = errors.New("amount must be greater than zero")
)

// principal from base58 text or @seed
func parsePrincipal(s string) (principal.Principal, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return principal.Principal{}, errMissingPrincipal
	}
	if strings.HasPrefix(s, seedPrefix) {
		return principal.FromSeed(strings.TrimPrefix(s, seedPrefix)), nil
	}
	return principal.FromBase58(s)
}

// comma separated list of amounts
func parseMilestones(s string) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, nil
	}
	items := strings.Split(s, ",")
	amounts := make([]uint64, len(items))
	for i, item := range items {
		n, err := strconv.ParseUint(strings.TrimSpace(item), 10, 64)
		if nil != err {
			return nil, fmt.Errorf("milestone[%d]: %q  error: %s", i, item, err)
		}
		amounts[i] = n
	}
	return amounts, nil
}

// single positional id argument
func parseId(c *cli.Context) (uint64, error) {
	if c.NArg() < 1 {
		return 0, errMissingId
	}
	return strconv.ParseUint(c.Args().Get(0), 10, 64)
}

func getCaller(m *metadata) (principal.Principal, error) {
	if "" == m.caller {
		return principal.Principal{}, errMissingCaller
	}
	return parsePrincipal(m.caller)
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(handle, "error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}
