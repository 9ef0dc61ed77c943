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


package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/NVIDIA/versionspec/pkg/errors"
	"github.com/NVIDIA/versionspec/pkg/header"
	"github.com/NVIDIA/versionspec/pkg/version"
)

// Constraint names an environment key and the specifications a candidate
// version for that key may satisfy. The constraint holds when any one of
// Versions accepts the candidate.
type Constraint struct {
	// Name is the environment key, e.g. "host" or "sdk-version".
	Name string `json:"name" yaml:"name"`

	// Versions are raw specification strings such as "[6.0-*]" or "1.2.3".
	Versions []string `json:"versions" yaml:"versions"`
}

// ConstraintSet is a named list of constraints, typically read from a
// template manifest.
type ConstraintSet struct {
	header.Header `json:",inline" yaml:",inline"`

	Constraints []Constraint `json:"constraints" yaml:"constraints"`
}

// Check rejects sets with unnamed or duplicate constraints. Specification
// syntax is not checked here; unparsable specifications are reported per
// constraint at evaluation time.
func (s *ConstraintSet) Check() error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "constraint set cannot be nil")
	}
	if err := s.Expect(header.KindConstraintSet); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid constraint set", err)
	}

	seen := make(map[string]struct{}, len(s.Constraints))
	for i, c := range s.Constraints {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"constraint name cannot be empty", map[string]any{"index": i})
		}
		if _, dup := seen[name]; dup {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"duplicate constraint name", map[string]any{"name": name})
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Environment holds the live candidate version for each environment key.
type Environment struct {
	header.Header `json:",inline" yaml:",inline"`

	Versions map[string]string `json:"versions" yaml:"versions"`
}

// Lookup returns the trimmed candidate version for name.
func (e *Environment) Lookup(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.Versions[name]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// ConstraintEvalResult represents the result of evaluating a single constraint.
type ConstraintEvalResult struct {
	// Passed indicates if the constraint was satisfied.
	Passed bool

	// Actual is the candidate version taken from the environment.
	Actual string

	// Matched is the first specification that accepted Actual.
	Matched string

	// Invalid lists the specifications that failed to parse.
	Invalid []string

	// Error is set when the constraint could not be evaluated at all.
	Error error
}

// EvaluateConstraint evaluates one constraint against the environment.
// Specifications that fail to parse are recorded in Invalid and ignored;
// the constraint is unevaluable only when no candidate exists or no
// specification parses.
func EvaluateConstraint(c Constraint, env *Environment) ConstraintEvalResult {
	result := ConstraintEvalResult{}

	actual, ok := env.Lookup(c.Name)
	if !ok {
		result.Error = errors.NewWithContext(errors.ErrCodeNotFound,
			"no candidate version in environment", map[string]any{"name": c.Name})
		return result
	}
	result.Actual = actual

	specs := make([]version.Specification, 0, len(c.Versions))
	for _, raw := range c.Versions {
		spec, err := version.ParseSpecification(strings.TrimSpace(raw))
		if err != nil {
			result.Invalid = append(result.Invalid, raw)
			continue
		}
		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		result.Error = errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"no valid specification", map[string]any{"name": c.Name, "versions": slices.Clone(c.Versions)})
		return result
	}

	for _, spec := range specs {
		if spec.IsValid(actual) {
			result.Passed = true
			result.Matched = spec.String()
			break
		}
	}

	return result
}

// describeInvalid renders the unparsable specifications for a result message.
func describeInvalid(invalid []string) string {
	if len(invalid) == 0 {
		return ""
	}
	return fmt.Sprintf("ignored invalid specifications: %s", strings.Join(invalid, ", "))
}
