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


package check

import (
	"github.com/NVIDIA/versionspec/pkg/header"
	"github.com/NVIDIA/versionspec/pkg/version"
)

// CandidateResult is the verdict for one candidate version.
type CandidateResult struct {
	Candidate string `json:"candidate" yaml:"candidate"`
	Valid     bool   `json:"valid" yaml:"valid"`
}

// CheckResult reports which candidates satisfy a specification.
type CheckResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Specification is the normalized specification text.
	Specification string `json:"specification" yaml:"specification"`

	// SpecificationKind is exact or range.
	SpecificationKind version.SpecificationKind `json:"specificationKind" yaml:"specificationKind"`

	// Results holds one entry per candidate in input order.
	Results []CandidateResult `json:"results" yaml:"results"`

	// Valid is true when every candidate satisfies the specification.
	Valid bool `json:"valid" yaml:"valid"`
}

// Invalid returns the candidates that do not satisfy the specification.
func (r *CheckResult) Invalid() []string {
	var out []string
	for _, c := range r.Results {
		if !c.Valid {
			out = append(out, c.Candidate)
		}
	}
	return out
}

// ComparisonResult reports how two version strings order.
type ComparisonResult struct {
	header.Header `json:",inline" yaml:",inline"`

	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`

	// Scheme is the comparator that ordered the pair.
	Scheme version.Scheme `json:"scheme" yaml:"scheme"`

	// Order is -1, 0 or 1. For SemVer it includes the build metadata tie-break.
	Order int `json:"order" yaml:"order"`

	// BuildMetadataOnly is set when the SemVer versions differ only in build metadata.
	BuildMetadataOnly bool `json:"buildMetadataOnly" yaml:"buildMetadataOnly"`

	// Equal reports precedence equality, ignoring build metadata.
	Equal bool `json:"equal" yaml:"equal"`

	// Relation is "<", "=" or ">" by precedence.
	Relation string `json:"relation" yaml:"relation"`
}

// ParseResult is the structured form of a specification string.
type ParseResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Input string `json:"input" yaml:"input"`

	// Canonical is the normalized specification text.
	Canonical string `json:"canonical" yaml:"canonical"`

	Specification version.Specification `json:"specification" yaml:"specification"`
}

// SortResult lists versions in SemVer precedence order.
type SortResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Descending bool     `json:"descending" yaml:"descending"`
	Versions   []string `json:"versions" yaml:"versions"`
}
