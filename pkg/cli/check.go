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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versionspec/pkg/check"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check candidate versions against a specification",
		ArgsUsage:             "VERSION...",
		Description: `Evaluate each candidate version against an exact or range specification.

# Examples

Check a single version:
  vspec check --spec "[6.0.100-7.0)" 6.0.300

Check several versions and fail if any is rejected (useful for CI/CD):
  vspec check -s "[1.0-*]" 0.9 1.0 2.5.1 --fail-on-invalid`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "spec",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "Exact version or bracketed range, e.g. 1.2.3 or [1.0-2.0)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-invalid",
				Usage: "Exit with non-zero status if any version does not satisfy the specification",
			},
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			candidates := cmd.Args().Slice()
			if len(candidates) == 0 {
				return errors.New("at least one version argument is required")
			}

			res, err := check.NewBuilder(check.WithVersion(version)).Check(ctx, cmd.String("spec"), candidates)
			if err != nil {
				return err
			}

			if err := writeResult(ctx, cmd, res); err != nil {
				return err
			}

			slog.Debug("check completed",
				"specification", res.Specification,
				"candidates", len(res.Results),
				"valid", res.Valid)

			if cmd.Bool("fail-on-invalid") && !res.Valid {
				return fmt.Errorf("versions do not satisfy %s: %v", res.Specification, res.Invalid())
			}
			return nil
		},
	}
}
