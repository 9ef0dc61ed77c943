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
	"errors"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versionspec/pkg/check"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version specification and print its structure",
		ArgsUsage:             "SPEC",
		Description: `Parse an exact or range specification and print the normalized form.

A specification containing a hyphen is parsed as a range, anything else as an
exact version.

# Examples

  vspec parse 1.2.3
  vspec parse "[1.0.0-beta - 2.0.0)" --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("expected exactly one specification argument")
			}

			res, err := check.NewBuilder(check.WithVersion(version)).Parse(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			slog.Debug("specification parsed",
				"kind", res.Specification.Kind,
				"canonical", res.Canonical)

			return writeResult(ctx, cmd, res)
		},
	}
}
