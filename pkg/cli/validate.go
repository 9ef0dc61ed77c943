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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versionspec/pkg/defaults"
	"github.com/NVIDIA/versionspec/pkg/serializer"
	"github.com/NVIDIA/versionspec/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate an environment against constraint sets",
		Description: `Validate the versions recorded in an environment document against the
specifications in one or more constraint set documents.

Each constraint names an environment entry and lists the specifications it may
satisfy. A constraint passes when any specification accepts the recorded
version, and is skipped when the entry is missing.

# Document Format

  kind: ConstraintSet
  apiVersion: vspec.nvidia.com/v1
  constraints:
    - name: dotnet-sdk
      versions: ["[6.0.100-7.0)", "8.0.100"]

  kind: Environment
  apiVersion: vspec.nvidia.com/v1
  versions:
    dotnet-sdk: 6.0.300

# Examples

Validate an environment (results to stdout):
  vspec validate --constraints constraints.yaml --environment env.yaml

Read the environment from stdin and the constraints from a URL:
  vspec validate -c https://example.com/constraints.yaml -e - < env.yaml

Read the environment from a ConfigMap and store the result in another:
  vspec validate -c constraints.yaml -e cm://build/toolchain -o cm://build/validation

Fail the command if any constraint fails (useful for CI/CD):
  vspec validate -c constraints.yaml -e env.yaml --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "constraints",
				Aliases:  []string{"c"},
				Required: true,
				Usage: `Path/URL to a constraint set document (can be repeated).
	Supports: file paths, HTTP/HTTPS URLs, ConfigMap URIs (cm://namespace/name), or "-" for stdin.`,
			},
			&cli.StringFlag{
				Name:     "environment",
				Aliases:  []string{"e"},
				Required: true,
				Usage: `Path/URL to the environment document with the actual versions.
	Supports: file paths, HTTP/HTTPS URLs, ConfigMap URIs (cm://namespace/name), or "-" for stdin.`,
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Sources: cli.EnvVars("VSPEC_CONCURRENCY"),
				Value:   defaults.ValidateConcurrency,
				Usage:   "Maximum number of constraint sets validated in parallel",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any constraint fails validation",
			},
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIValidateTimeout)
			defer cancel()

			constraintPaths := cmd.StringSlice("constraints")
			envPath := cmd.String("environment")
			kubeconfig := cmd.String("kubeconfig")

			slog.Info("loading environment", "uri", envPath)

			env, err := serializer.FromFileWithKubeconfig[validator.Environment](ctx, envPath, kubeconfig)
			if err != nil {
				return fmt.Errorf("failed to load environment from %q: %w", envPath, err)
			}

			sets := make([]*validator.ConstraintSet, 0, len(constraintPaths))
			for _, p := range constraintPaths {
				slog.Info("loading constraints", "uri", p)
				set, err := serializer.FromFileWithKubeconfig[validator.ConstraintSet](ctx, p, kubeconfig)
				if err != nil {
					return fmt.Errorf("failed to load constraints from %q: %w", p, err)
				}
				sets = append(sets, set)
			}

			v := validator.New(
				validator.WithVersion(version),
				validator.WithConcurrency(int(cmd.Int("concurrency"))),
			)

			results, err := v.ValidateAll(ctx, sets, env)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			failed := 0
			for i, res := range results {
				res.ConstraintSource = constraintPaths[i]
				res.EnvironmentSource = envPath

				slog.Info("validation completed",
					"constraints", res.ConstraintSource,
					"status", res.Summary.Status,
					"passed", res.Summary.Passed,
					"failed", res.Summary.Failed,
					"skipped", res.Summary.Skipped,
					"duration", res.Summary.Duration)

				failed += res.Summary.Failed
			}

			var out any = results
			if len(results) == 1 {
				out = results[0]
			}
			if err := writeResult(ctx, cmd, out); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && failed > 0 {
				return fmt.Errorf("validation failed: %d constraint(s) did not pass", failed)
			}

			return nil
		},
	}
}
