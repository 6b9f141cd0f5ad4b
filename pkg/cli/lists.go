/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/my-cli/my/pkg/gather"
	"github.com/my-cli/my/pkg/result"
)

func ipsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "ips",
		EnableShellCompletion: true,
		Usage:                 "Show this machine's IP addresses",
		Description: `Show the machine's IP addresses by category:

  public - address seen from the internet, resolved through a DNS query
           against the configured resolver
  local  - address of the default outbound route
  any    - both, keeping whichever lookup succeeds (the default)

The public and local categories fail when their lookup fails. The any
category fails only when both do; a single failed side is reported as a
warning on stderr.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "only",
				Value: string(result.IPAny),
				Usage: fmt.Sprintf("Address category (supported values: %s, %s, %s)",
					result.IPPublic, result.IPLocal, result.IPAny),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			category := result.IPCategory(cmd.String("only"))
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.IPs(ctx, category)
			})
		},
	}
}

func dnsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "dns",
		EnableShellCompletion: true,
		Usage:                 "Show the system DNS servers",
		Description: `Show the configured DNS resolvers in resolution order, deduplicated,
with 1-indexed positions.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.DNSServers(ctx)
			})
		},
	}
}

func interfacesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "interfaces",
		EnableShellCompletion: true,
		Usage:                 "Show network interface addresses",
		Description: `Show one line per interface address. By default only interfaces that
are up and not loopback are listed; --all includes the rest.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Include down and loopback interfaces",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			all := cmd.Bool("all")
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.Interfaces(ctx, all)
			})
		},
	}
}

func disksCmd() *cli.Command {
	return &cli.Command{
		Name:                  "disks",
		EnableShellCompletion: true,
		Usage:                 "Show mounted disks and their usage",
		Description: `Show one line per mounted disk: device name, filesystem kind, and free
space against total space.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.Disks(ctx)
			})
		},
	}
}
