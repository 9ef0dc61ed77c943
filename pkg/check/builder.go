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
	"context"
	"slices"
	"strings"

	"github.com/NVIDIA/versionspec/pkg/defaults"
	"github.com/NVIDIA/versionspec/pkg/errors"
	"github.com/NVIDIA/versionspec/pkg/header"
	"github.com/NVIDIA/versionspec/pkg/version"
)

// Builder produces the check, compare, parse and sort documents.
type Builder struct {
	// Version is stamped into document metadata.
	Version string
}

// Option is a functional option for configuring Builder instances.
type Option func(*Builder)

// WithVersion returns an Option that sets the Builder version string.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.Version = version
	}
}

// NewBuilder creates a new Builder with the provided options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Check evaluates each candidate against spec.
func (b *Builder) Check(ctx context.Context, spec string, candidates []string) (*CheckResult, error) {
	parsed, err := parseSpecification(spec)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one candidate version is required")
	}

	result := &CheckResult{
		Specification:     parsed.String(),
		SpecificationKind: parsed.Kind,
		Results:           make([]CandidateResult, 0, len(candidates)),
		Valid:             true,
	}
	result.Init(header.KindCheckResult, defaults.APIVersion, b.Version)

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "check canceled", err)
		}
		candidate := strings.TrimSpace(c)
		valid := parsed.IsValid(candidate)
		result.Results = append(result.Results, CandidateResult{Candidate: candidate, Valid: valid})
		result.Valid = result.Valid && valid
		recordCheck(parsed.Kind, valid)
	}

	return result, nil
}

// Compare orders a against b, choosing SemVer when both parse as SemVer and
// the legacy comparator otherwise.
func (b *Builder) Compare(_ context.Context, a, bv string) (*ComparisonResult, error) {
	a, bv = strings.TrimSpace(a), strings.TrimSpace(bv)

	result, ok := compareSemantic(a, bv)
	if !ok {
		order, scheme, comparable := version.CompareVersionStrings(a, bv)
		if !comparable {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"versions are not comparable", map[string]any{"a": a, "b": bv})
		}
		result = &ComparisonResult{A: a, B: bv, Scheme: scheme, Order: order, Equal: order == 0}
	}

	switch {
	case result.Equal:
		result.Relation = "="
	case result.Order < 0:
		result.Relation = "<"
	default:
		result.Relation = ">"
	}

	result.Init(header.KindComparisonResult, defaults.APIVersion, b.Version)
	return result, nil
}

// compareSemantic keeps the build metadata tie-break that
// CompareVersionStrings folds away.
func compareSemantic(a, b string) (*ComparisonResult, bool) {
	va, err := version.ParseSemanticVersion(a)
	if err != nil {
		return nil, false
	}
	vb, err := version.ParseSemanticVersion(b)
	if err != nil {
		return nil, false
	}

	c := version.CompareSemantic(va, vb)
	return &ComparisonResult{
		A:                 a,
		B:                 b,
		Scheme:            version.SchemeSemantic,
		Order:             c.Order,
		BuildMetadataOnly: c.BuildMetadataOnly,
		Equal:             c.Equal(),
	}, true
}

// Parse returns the structured form of spec.
func (b *Builder) Parse(_ context.Context, spec string) (*ParseResult, error) {
	parsed, err := parseSpecification(spec)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		Input:         spec,
		Canonical:     parsed.String(),
		Specification: parsed,
	}
	result.Init(header.KindParseResult, defaults.APIVersion, b.Version)
	return result, nil
}

// Sort orders versions by SemVer precedence using the build metadata
// tie-break. Every input must be a SemVer version.
func (b *Builder) Sort(_ context.Context, versions []string, descending bool) (*SortResult, error) {
	parsed := make([]version.SemanticVersion, 0, len(versions))
	var invalid []string
	for _, raw := range versions {
		v, err := version.ParseSemanticVersion(strings.TrimSpace(raw))
		if err != nil {
			invalid = append(invalid, raw)
			continue
		}
		parsed = append(parsed, v)
	}
	if len(invalid) > 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"not semantic versions", map[string]any{"invalid": invalid})
	}

	if descending {
		slices.SortStableFunc(parsed, func(x, y version.SemanticVersion) int {
			return version.CompareSemantic(y, x).Order
		})
	} else {
		version.SortSemantic(parsed)
	}

	result := &SortResult{
		Descending: descending,
		Versions:   make([]string, 0, len(parsed)),
	}
	for _, v := range parsed {
		result.Versions = append(result.Versions, v.Original())
	}
	result.Init(header.KindSortResult, defaults.APIVersion, b.Version)
	return result, nil
}

// parseSpecification trims and parses spec, mapping failures to INVALID_REQUEST.
func parseSpecification(spec string) (version.Specification, error) {
	spec = strings.TrimSpace(spec)
	parsed, err := version.ParseSpecification(spec)
	if err != nil {
		return version.Specification{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid specification", err, map[string]any{"specification": spec})
	}
	return parsed, nil
}
