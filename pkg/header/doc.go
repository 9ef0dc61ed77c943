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


// Package header provides the common header carried by versionspec documents.
//
// Constraint sets and environments read from disk, and every result the CLI
// and API write, start with the same Kind/APIVersion/Metadata triple:
//
//	kind: ConstraintSet
//	apiVersion: vspec.nvidia.com/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Result documents are stamped with Init:
//
//	var res CheckResult
//	res.Init(header.KindCheckResult, defaults.APIVersion, version)
//
// Documents read from disk use Expect to reject a file of the wrong kind.
package header
