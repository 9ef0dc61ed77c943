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

package version

import (
	"fmt"
	"strings"
)

// SpecificationKind tags the variant held by a Specification.
type SpecificationKind string

const (
	// KindExact is a single required legacy version.
	KindExact SpecificationKind = "exact"

	// KindRange is a bracketed min/max range.
	KindRange SpecificationKind = "range"
)

// String returns the string representation of the SpecificationKind.
func (k SpecificationKind) String() string {
	return string(k)
}

// Specification is a parsed version constraint: exactly one of Exact or
// Range is meaningful, selected by Kind. The zero value accepts nothing.
type Specification struct {
	Kind  SpecificationKind   `json:"kind" yaml:"kind"`
	Exact *ExactSpecification `json:"exact,omitempty" yaml:"exact,omitempty"`
	Range *RangeSpecification `json:"range,omitempty" yaml:"range,omitempty"`
}

// ParseSpecification parses a raw constraint string. Text containing a '-'
// anywhere is parsed as a range, anything else as an exact version.
//
// The heuristic is kept as-is for compatibility with existing constraint
// files: "1.2.3-rc1" is routed to the range parser and fails because it has
// no brackets, and "[1.0,2.0]" is routed to the exact parser and fails too.
//
// Surrounding whitespace is not trimmed: callers must trim s first, since
// " 1.2" fails as an exact version.
func ParseSpecification(s string) (Specification, error) {
	if s == "" {
		return Specification{}, ErrEmptyVersion
	}

	if strings.Contains(s, "-") {
		r, err := ParseRangeSpecification(s)
		if err != nil {
			return Specification{}, err
		}
		return Specification{Kind: KindRange, Range: &r}, nil
	}

	e, err := ParseExactSpecification(s)
	if err != nil {
		return Specification{}, err
	}
	return Specification{Kind: KindExact, Exact: &e}, nil
}

// MustParseSpecification parses a specification and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseSpecification(s string) Specification {
	spec, err := ParseSpecification(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSpecification: %v", err))
	}
	return spec
}

// IsValid reports whether candidate satisfies the specification.
func (s Specification) IsValid(candidate string) bool {
	switch s.Kind {
	case KindExact:
		return s.Exact != nil && s.Exact.IsValid(candidate)
	case KindRange:
		return s.Range != nil && s.Range.IsValid(candidate)
	default:
		return false
	}
}

// String returns the normalized text of the held variant.
func (s Specification) String() string {
	switch s.Kind {
	case KindExact:
		if s.Exact != nil {
			return s.Exact.String()
		}
	case KindRange:
		if s.Range != nil {
			return s.Range.String()
		}
	}
	return ""
}

// ExactSpecification accepts versions equal to RequiredVersion under the
// legacy scheme, even when RequiredVersion is also valid SemVer.
type ExactSpecification struct {
	RequiredVersion string `json:"requiredVersion" yaml:"requiredVersion"`
}

// ParseExactSpecification succeeds when s is a well-formed legacy version.
// A pre-release version such as "1.2.3-beta" is rejected.
func ParseExactSpecification(s string) (ExactSpecification, error) {
	if _, err := ParseLegacyVersion(s); err != nil {
		return ExactSpecification{}, fmt.Errorf("%w: %w", ErrInvalidExactTarget, err)
	}
	return ExactSpecification{RequiredVersion: s}, nil
}

// IsValid reports whether candidate is legacy-equal to the required version.
// An unparsable candidate is never valid.
func (e ExactSpecification) IsValid(candidate string) bool {
	c, ok := CompareLegacy(e.RequiredVersion, candidate)
	return ok && c == 0
}

// String returns the required version.
func (e ExactSpecification) String() string {
	return e.RequiredVersion
}
