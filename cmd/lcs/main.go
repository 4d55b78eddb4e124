// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command lcs computes the longest common subsequences of two sequences.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	cli := &runner{out: os.Stdout}

	lengthCmd := subcmd.NewCommand("length",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cli.length, subcmd.ExactlyNumArguments(2))
	lengthCmd.Document("print the length of the longest common subsequence", "<a> <b>")

	allCmd := subcmd.NewCommand("all",
		subcmd.MustRegisterFlagStruct(&allFlags{}, nil, nil),
		cli.all, subcmd.ExactlyNumArguments(2))
	allCmd.Document("print all of the distinct longest common subsequences", "<a> <b>")

	tableCmd := subcmd.NewCommand("table",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cli.table, subcmd.ExactlyNumArguments(2))
	tableCmd.Document("print the dynamic programming table", "<a> <b>")

	diffCmd := subcmd.NewCommand("diff",
		subcmd.MustRegisterFlagStruct(&diffFlags{}, nil, nil),
		cli.diff, subcmd.ExactlyNumArguments(2))
	diffCmd.Document("print the shortest edit script that transforms <a> into <b>", "<a> <b>")

	configCmd := subcmd.NewCommand("config",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cli.config, subcmd.WithoutArguments())
	configCmd.Document("print the effective configuration")

	cmdSet = subcmd.NewCommandSet(lengthCmd, allCmd, tableCmd, diffCmd, configCmd)
	cmdSet.Document(`compute the longest common subsequences of two sequences.

Sequences are supplied as command line arguments, an argument of the form
@<file> is read from the named file. The dynamic programming table may be
built bottom-up or top-down, both produce identical results. Defaults may
be supplied via a YAML configuration file, see the config command.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
