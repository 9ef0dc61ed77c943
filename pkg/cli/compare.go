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

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two version strings",
		ArgsUsage:             "A B",
		Description: `Order two versions. SemVer precedence is used when both parse as SemVer,
the legacy 4-component scheme otherwise.

# Examples

  vspec compare 1.0.0-rc.1 1.0.0
  vspec compare 1.2 1.2.0.1 -t json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return errors.New("expected exactly two version arguments")
			}

			res, err := check.NewBuilder(check.WithVersion(version)).
				Compare(ctx, cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, res)
		},
	}
}
