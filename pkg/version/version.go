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
	"errors"
)

// Error types for version and specification parsing failures
var (
	ErrEmptyVersion       = errors.New("version string is empty")
	ErrTooManyComponents  = errors.New("version has more than 3 components")
	ErrInvalidComponent   = errors.New("version component is not a non-negative integer")
	ErrLeadingZero        = errors.New("numeric version component has a leading zero")
	ErrInvalidIdentifier  = errors.New("invalid pre-release or build identifier")
	ErrSegmentCount       = errors.New("legacy version must have 2 to 4 components")
	ErrInvalidRange       = errors.New("range must be enclosed in [ or ( and ] or )")
	ErrInvalidBound       = errors.New("range bound is not a version or wildcard")
	ErrUnboundedRange     = errors.New("range must have at least one bound")
	ErrInvalidSeparator   = errors.New("range bounds must be separated by a single - or ,")
	ErrInvalidExactTarget = errors.New("exact version must be a 2 to 4 component numeric version")
)

// Scheme identifies the comparator used to order two version strings.
type Scheme string

const (
	// SchemeSemantic orders versions by Semantic Versioning 2.0 precedence.
	SchemeSemantic Scheme = "semver"

	// SchemeLegacy orders versions as zero-padded 4 component numeric tuples.
	SchemeLegacy Scheme = "legacy"
)

// String returns the string representation of the Scheme.
func (s Scheme) String() string {
	return string(s)
}

// CompareVersionStrings compares a to b, choosing the comparator per call.
// When both strings parse as SemVer the SemVer precedence is used and a
// difference in build metadata alone counts as equal. Otherwise both strings
// must be legacy versions. The returned bool is false when the strings
// cannot be compared under either scheme.
//
//	CompareVersionStrings("1.0.0-beta", "1.0.0")   // -1, SchemeSemantic, true
//	CompareVersionStrings("1.2", "1.2.0.1")        // -1, SchemeLegacy, true
//	CompareVersionStrings("1.0.0-beta", "1.0.0.1") // 0, SchemeLegacy, false
func CompareVersionStrings(a, b string) (int, Scheme, bool) {
	if sa, err := ParseSemanticVersion(a); err == nil {
		if sb, err := ParseSemanticVersion(b); err == nil {
			c := sa.Compare(sb)
			if c.BuildMetadataOnly {
				return 0, SchemeSemantic, true
			}
			return c.Order, SchemeSemantic, true
		}
	}

	cmp, ok := CompareLegacy(a, b)
	return cmp, SchemeLegacy, ok
}
