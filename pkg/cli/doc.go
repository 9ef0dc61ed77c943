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


// Package cli implements the vspec command-line interface.
//
// # Commands
//
//	vspec parse SPEC
//	vspec check --spec SPEC VERSION... [--fail-on-invalid]
//	vspec compare A B
//	vspec sort [--desc] VERSION...
//	vspec validate -c constraints.yaml -e environment.yaml [--fail-on-error]
//
// Every command writes a versioned document (see pkg/header) through
// pkg/serializer.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env: VSPEC_LOG_LEVEL)
//	--debug        Shorthand for --log-level debug
//	--output, -o   Output file path (default: stdout, env: VSPEC_OUTPUT)
//	--format, -t   Output format: yaml, json, table (default: yaml, env: VSPEC_FORMAT)
//	--kubeconfig   Kubeconfig for cm:// paths (env: KUBECONFIG)
//
// Inputs and --output accept cm://namespace/name to read or write a
// Kubernetes ConfigMap instead of a file.
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, parse failure, or a failed --fail-on-* check
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/versionspec/pkg/cli.version=1.0.0'"
package cli
