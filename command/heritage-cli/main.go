// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {

	app := cli.NewApp()
	app.Name = "heritage-cli"
	app.Usage = "governance and escrow client for heritaged"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " heritaged `HOST:PORT`",
			EnvVar: "HERITAGE_CONNECT",
		},
		cli.StringFlag{
			Name:   "caller, i",
			Value:  "",
			Usage:  " acting principal `PRINCIPAL` (base58 or @seed)",
			EnvVar: "HERITAGE_CALLER",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display heritaged status",
			Action: runInfo,
		},
		{
			Name:      "principal",
			Usage:     "display the principal derived from a seed",
			ArgsUsage: "SEED...",
			Action:    runPrincipal,
		},
		{
			Name:   "roles",
			Usage:  "display the role configuration",
			Action: runRoles,
		},
		{
			Name:   "pause",
			Usage:  "pause mutating operations (admin)",
			Action: runPause,
		},
		{
			Name:   "resume",
			Usage:  "resume mutating operations (admin)",
			Action: runResume,
		},
		{
			Name:      "set-role",
			Usage:     "replace a role holder (admin)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "role, r",
					Value: "",
					Usage: "*role `NAME` [admin|dao|oracle]",
				},
				cli.StringFlag{
					Name:  "principal, p",
					Value: "",
					Usage: "*new holder `PRINCIPAL`",
				},
			},
			Action: runSetRole,
		},
		{
			Name:      "propose",
			Usage:     "create a funding proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*proposal description `STRING`",
				},
				cli.Uint64Flag{
					Name:  "goal, g",
					Value: 0,
					Usage: "*funding goal `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: "*target escrow `PRINCIPAL`",
				},
				cli.StringFlag{
					Name:  "milestones, m",
					Value: "",
					Usage: " comma separated milestone `AMOUNTS` summing to the goal",
				},
			},
			Action: runPropose,
		},
		{
			Name:      "vote",
			Usage:     "vote on an open proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "proposal, p",
					Value: 0,
					Usage: "*proposal `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*vote weight `AMOUNT`",
				},
				cli.BoolFlag{
					Name:  "against",
					Usage: " vote against, default is in favour",
				},
			},
			Action: runVote,
		},
		{
			Name:      "execute",
			Usage:     "execute a closed proposal that met quorum",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "proposal, p",
					Value: 0,
					Usage: "*proposal `ID`",
				},
			},
			Action: runExecute,
		},
		{
			Name:      "proposal",
			Usage:     "display a proposal",
			ArgsUsage: "ID",
			Action:    runProposal,
		},
		{
			Name:      "fund",
			Usage:     "contribute to a project",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "project, p",
					Value: 0,
					Usage: "*project `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*contribution `AMOUNT`",
				},
			},
			Action: runFund,
		},
		{
			Name:      "verify",
			Usage:     "verify a milestone (oracle)",
			ArgsUsage: "\n   (* = required)",
			Flags:     milestoneFlags(),
			Action:    runVerify,
		},
		{
			Name:      "release",
			Usage:     "announce release of a verified milestone",
			ArgsUsage: "\n   (* = required)",
			Flags:     milestoneFlags(),
			Action:    runRelease,
		},
		{
			Name:      "refund",
			Usage:     "close a project and list the refunds (dao)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "project, p",
					Value: 0,
					Usage: "*project `ID`",
				},
			},
			Action: runRefund,
		},
		{
			Name:      "project",
			Usage:     "display a project and its contributions",
			ArgsUsage: "ID",
			Action:    runProject,
		},
		{
			Name:      "events",
			Usage:     "list audit events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first event `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:  "version",
			Usage: "display heritage-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				caller:  c.GlobalString("caller"),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func milestoneFlags() []cli.Flag {
	return []cli.Flag{
		cli.Uint64Flag{
			Name:  "project, p",
			Value: 0,
			Usage: "*project `ID`",
		},
		cli.Uint64Flag{
			Name:  "milestone, m",
			Value: 0,
			Usage: "*milestone `INDEX` from zero",
		},
	}
}
