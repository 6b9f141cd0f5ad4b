/*
Copyright © 2026 The my-cli Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/my-cli/my/pkg/config"
	"github.com/my-cli/my/pkg/errors"
	"github.com/my-cli/my/pkg/gather"
	"github.com/my-cli/my/pkg/logging"
	"github.com/my-cli/my/pkg/render"
	"github.com/my-cli/my/pkg/result"
	"github.com/my-cli/my/pkg/version"
)

const name = "my"

// cfg holds the loaded configuration; setup replaces the defaults before
// any command action runs.
var cfg = config.Default()

// Global flags shared by every command.
var (
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(render.FormatText),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", render.SupportedFormats()),
		Sources: cli.EnvVars("MY_FORMAT"),
	}
	noColorFlag = &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "Disable terminal colors",
		Sources: cli.EnvVars("MY_NO_COLOR"),
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "warn",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("MY_LOG_LEVEL"),
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Config file (default is $HOME/.my.yaml)",
	}
)

func rootCmd() *cli.Command {
	cmd := &cli.Command{
		Name:                  name,
		Usage:                 "Report facts about this machine and its network",
		Version:               version.String(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			formatFlag,
			noColorFlag,
			logLevelFlag,
			configFlag,
		},
		Before:       setup,
		OnUsageError: usageError,
		Commands: []*cli.Command{
			dateCmd(),
			timeCmd(),
			datetimeCmd(),
			ipsCmd(),
			dnsCmd(),
			interfacesCmd(),
			hostnameCmd(),
			usernameCmd(),
			deviceNameCmd(),
			osCmd(),
			architectureCmd(),
			disksCmd(),
			cpuCmd(),
			ramCmd(),
			latencyCmd(),
			everythingCmd(),
		},
	}

	// Flag parse failures surface on the command being parsed, so every
	// subcommand needs the classifier too.
	for _, sub := range cmd.Commands {
		sub.OnUsageError = usageError
	}

	return cmd
}

// usageError classifies argument and flag parse failures as invalid
// requests, so malformed invocations exit 2 before any probe runs.
func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid arguments", err)
}

// setup installs the default logger and loads configuration before any
// command action runs, so overrides like --log-level take effect first.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version.Version, cmd.String("log-level"))

	loaded, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	cfg = loaded
	return ctx, nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a failure to the process exit code: 2 for request errors
// such as an unknown category or output format, 1 for everything else.
func exitCode(err error) int {
	if errors.CodeOf(err) == errors.ErrCodeInvalidRequest {
		return 2
	}
	return 1
}

// newWriter builds the renderer from the global flags. Colors are on only
// for an interactive text session that did not opt out.
func newWriter(cmd *cli.Command) (*render.Writer, error) {
	format := render.Format(cmd.String("format"))
	if format.IsUnknown() {
		return nil, errors.Newf(errors.ErrCodeInvalidRequest, "unknown output format: %q", format)
	}

	color := !cmd.Bool("no-color") && isatty.IsTerminal(os.Stdout.Fd())
	return render.NewWriter(format, os.Stdout, render.WithColor(color)), nil
}

// run executes one gather operation and renders its result to stdout.
func run(ctx context.Context, cmd *cli.Command, op func(context.Context, *gather.Gatherer) (result.Result, error)) error {
	w, err := newWriter(cmd)
	if err != nil {
		return err
	}

	res, err := op(ctx, gather.New(cfg))
	if err != nil {
		return err
	}
	return w.Render(res)
}
