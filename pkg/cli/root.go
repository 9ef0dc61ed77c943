// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versionspec/pkg/logging"
	"github.com/NVIDIA/versionspec/pkg/serializer"
)

const (
	name           = "vspec"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Sources: cli.EnvVars("VSPEC_OUTPUT"),
	Usage:   "Output file path or ConfigMap URI cm://namespace/name (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Sources: cli.EnvVars("VSPEC_FORMAT"),
	Value:   string(serializer.FormatYAML),
	Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
}

var kubeconfigFlag = &cli.StringFlag{
	Name:    "kubeconfig",
	Aliases: []string{"k"},
	Sources: cli.EnvVars("KUBECONFIG"),
	Usage:   "Path to kubeconfig file for ConfigMap URIs (default: ~/.kube/config or in-cluster)",
}

// Execute runs the vspec command line and exits non-zero on error.
// It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "vspec - version specification toolkit",
		Description: `Parse, compare and check version strings against exact and range specifications.

Specifications:
  1.2.3            exact, compared with the legacy scheme
  [1.0-2.0)        1.0 <= v < 2.0
  (1.0.0-beta - *] v > 1.0.0-beta
  [*-2.0]          v <= 2.0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Sources: cli.EnvVars("VSPEC_LOG_LEVEL"),
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Shorthand for --log-level debug",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String("log-level")
			if cmd.Bool("debug") {
				level = "debug"
			}
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			checkCmd(),
			compareCmd(),
			sortCmd(),
			validateCmd(),
		},
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// writeResult serializes v to the --output destination in the --format format.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewOutputWriter(outFormat, cmd.String("output"), cmd.String("kubeconfig"))
	if err != nil {
		return fmt.Errorf("invalid output %q: %w", cmd.String("output"), err)
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close output", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	return nil
}
