/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/my-cli/my/pkg/gather"
	"github.com/my-cli/my/pkg/result"
)

func dateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "date",
		EnableShellCompletion: true,
		Usage:                 "Show today's date",
		Description: `Show the calendar date: weekday name, day of month, month name, year,
and ISO week number. Computed locally, never fails.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.Date(ctx)
			})
		},
	}
}

func timeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "time",
		EnableShellCompletion: true,
		Usage:                 "Show the current time of day",
		Description: `Show the wall-clock time with the local timezone abbreviation, annotated
with the clock offset against an NTP server when the server answers in
time. An unreachable NTP server degrades the reading to time-only.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.Time(ctx)
			})
		},
	}
}

func datetimeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "datetime",
		EnableShellCompletion: true,
		Usage:                 "Show the current date and time",
		Description:           `Show the date and time facts together, from one clock reading.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.DateTime(ctx)
			})
		},
	}
}

// namedCmd builds one identity fact command.
func namedCmd(cmdName string, kind result.NamedKind, usage string) *cli.Command {
	return &cli.Command{
		Name:                  cmdName,
		EnableShellCompletion: true,
		Usage:                 usage,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.Named(ctx, kind)
			})
		},
	}
}

func hostnameCmd() *cli.Command {
	return namedCmd("hostname", result.KindHostname, "Show the machine hostname")
}

func usernameCmd() *cli.Command {
	return namedCmd("username", result.KindUsername, "Show the current user name")
}

func deviceNameCmd() *cli.Command {
	return namedCmd("device-name", result.KindDeviceName, "Show the human-friendly device name")
}

func osCmd() *cli.Command {
	return namedCmd("os", result.KindOS, "Show the operating system name and version")
}

func architectureCmd() *cli.Command {
	return namedCmd("architecture", result.KindArchitecture, "Show the CPU architecture")
}

func cpuCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cpu",
		EnableShellCompletion: true,
		Usage:                 "Show processor brand, core count, and frequency",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.CPU(ctx)
			})
		},
	}
}

func ramCmd() *cli.Command {
	return &cli.Command{
		Name:                  "ram",
		EnableShellCompletion: true,
		Usage:                 "Show memory usage",
		Description: `Show total, used, and available memory. Percentages use exact integer
arithmetic over the byte counts.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, func(ctx context.Context, g *gather.Gatherer) (result.Result, error) {
				return g.RAM(ctx)
			})
		},
	}
}

func latencyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latency",
		EnableShellCompletion: true,
		Usage:                 "Measure round-trip latency to a DNS server",
		Description: `Measure the round-trip time of one DNS exchange against the target
server. The target defaults to the configured public IP resolver.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "target",
				Usage:   "Target server address (host:port)",
				Sources: cli.EnvVars("MY_LATENCY_TARGET"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c := *cfg
			if t := cmd.String("target"); t != "" {
				c.LatencyTarget = t
			}

			w, err := newWriter(cmd)
			if err != nil {
				return err
			}

			res, err := gather.New(&c).Latency(ctx, c.LatencyTarget)
			if err != nil {
				return err
			}
			return w.Render(res)
		},
	}
}
