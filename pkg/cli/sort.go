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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versionspec/pkg/check"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort SemVer versions by precedence",
		ArgsUsage:             "VERSION...",
		Description: `Sort versions by SemVer precedence. Versions that differ only in build
metadata are ordered by the metadata text. The sort is stable.

# Examples

  vspec sort 1.0.0 1.0.0-rc.1 1.0.0-alpha
  vspec sort --desc 2.0 10.0 1.5.3`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "Sort from highest to lowest",
			},
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			versions := cmd.Args().Slice()
			if len(versions) == 0 {
				return errors.New("at least one version argument is required")
			}

			res, err := check.NewBuilder(check.WithVersion(version)).Sort(ctx, versions, cmd.Bool("desc"))
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, res)
		},
	}
}
