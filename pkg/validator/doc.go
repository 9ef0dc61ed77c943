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


// Package validator checks an environment against a set of version constraints.
//
// # Overview
//
// A ConstraintSet names environment keys and, for each, one or more version
// specifications (see package version). An Environment supplies the live
// candidate version for each key. A constraint passes when any of its
// specifications accepts the candidate.
//
//	kind: ConstraintSet
//	constraints:
//	  - name: sdk
//	    versions: ["[6.0.100-7.0)", "8.0.100"]
//
//	kind: Environment
//	versions:
//	  sdk: 6.0.300
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version))
//	result, err := v.Validate(ctx, set, env)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//
// # Error Handling
//
// Constraints that cannot be evaluated (no candidate in the environment, or
// no specification parses) are marked "skipped" and the overall status
// becomes "partial". Specifications that fail to parse are ignored and listed
// in the constraint message.
package validator
