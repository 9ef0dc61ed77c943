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


// Package check builds the documents behind the check, compare, parse and
// sort operations, and serves them over HTTP.
//
// Builder methods return a header-stamped result or a StructuredError with
// code INVALID_REQUEST, so the CLI and the API report the same failures:
//
//	b := check.NewBuilder(check.WithVersion(version))
//	res, err := b.Check(ctx, "[6.0-*]", []string{"6.0.300", "5.0"})
//	// res.Valid == false, res.Invalid() == ["5.0"]
//
// HTTP endpoints:
//
//	GET /v1/check?spec=[6.0-*]&version=6.0.300
//	GET /v1/compare?a=1.0.0-beta&b=1.0.0
//	GET /v1/parse?spec=(1.0-2.0]
package check
