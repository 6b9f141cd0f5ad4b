/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/my-cli/my/pkg/defaults"
	"github.com/my-cli/my/pkg/gather"
	"github.com/my-cli/my/pkg/result"
)

func everythingCmd() *cli.Command {
	return &cli.Command{
		Name:                  "everything",
		EnableShellCompletion: true,
		Usage:                 "Capture a snapshot of every fact",
		Description: `Run every probe and report the combined snapshot. Each probe is
best-effort: a failing probe is reported as a warning on stderr and its
fact goes absent from the snapshot instead of failing the command. The
date, time, architecture, and memory facts are computed locally and are
always present.

The snapshot carries a unique id and its capture timestamp, and renders
as four fixed sections: System, Datetime, Storage, and Network.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.SnapshotTimeout,
				Usage: "Overall deadline for the snapshot capture",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.Snapshot(ctx)
			})
		},
	}
}
