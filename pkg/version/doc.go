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

// Package version parses version strings and evaluates version specifications.
//
// # Overview
//
// Two version grammars are supported:
//
//   - SemanticVersion: Semantic Versioning 2.0, major[.minor[.patch]][-pre][+build]
//   - LegacyVersion: 2 to 4 dot-separated integers, zero-padded to 4 components
//
// On top of them, a Specification is either an exact version or a bracketed range:
//
//	1.2.3            exact, compared with the legacy scheme
//	[1.0-2.0)        1.0 <= v < 2.0
//	(1.0.0-beta - *] v > 1.0.0-beta
//	[*-2.0]          v <= 2.0
//
// # Usage
//
//	spec, err := version.ParseSpecification("[1.0-*]")
//	if err != nil {
//	    return err
//	}
//	if spec.IsValid("6.0.100") {
//	    // compatible
//	}
//
// # Comparison
//
// SemanticVersion.Compare returns a Comparison. Build metadata is not part of
// SemVer precedence, so two versions that differ only in build metadata are
// Equal and neither LessThan nor GreaterThan the other, while Comparison.Order
// still orders them for SortSemantic.
//
// Ranges choose the comparator per bound and per candidate: SemVer when both
// strings parse as SemVer, legacy otherwise (see CompareVersionStrings).
//
// All functions are pure and all values are immutable once parsed, so they
// are safe for concurrent use.
package version
