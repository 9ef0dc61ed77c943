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
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

const (
	legacyMinSegments = 2
	legacyMaxSegments = 4
)

// LegacyVersion is a dotted numeric version of the form
// major.minor[.build[.revision]], right-padded with zeros to 4 components.
type LegacyVersion [legacyMaxSegments]int

// ParseLegacyVersion parses 2 to 4 dot-separated non-negative integers.
// Wildcards are not accepted here; ranges handle them one layer up.
func ParseLegacyVersion(s string) (LegacyVersion, error) {
	if s == "" {
		return LegacyVersion{}, ErrEmptyVersion
	}

	parts := strings.Split(s, ".")
	if len(parts) < legacyMinSegments || len(parts) > legacyMaxSegments {
		return LegacyVersion{}, fmt.Errorf("%w: %q has %d", ErrSegmentCount, s, len(parts))
	}

	var v LegacyVersion
	for i, part := range parts {
		if !isDigits(part) {
			return LegacyVersion{}, fmt.Errorf("%w: %q in %q", ErrInvalidComponent, part, s)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return LegacyVersion{}, fmt.Errorf("%w: %q out of range", ErrInvalidComponent, part)
		}
		v[i] = n
	}
	return v, nil
}

// IsWellFormedLegacy reports whether s parses as a LegacyVersion.
func IsWellFormedLegacy(s string) bool {
	_, err := ParseLegacyVersion(s)
	return err == nil
}

// CompareLegacy compares two legacy version strings component by component.
// The bool is false when either side does not parse, in which case the
// versions are incomparable and the int is meaningless.
//
//	CompareLegacy("1.2", "1.2.0.0") // 0, true
//	CompareLegacy("1.2", "1.2.0.1") // -1, true
//	CompareLegacy("1", "1.0")       // 0, false
func CompareLegacy(a, b string) (int, bool) {
	va, err := ParseLegacyVersion(a)
	if err != nil {
		return 0, false
	}
	vb, err := ParseLegacyVersion(b)
	if err != nil {
		return 0, false
	}
	return va.Compare(vb), true
}

// Compare returns -1, 0 or 1 comparing v to other lexicographically.
func (v LegacyVersion) Compare(other LegacyVersion) int {
	for i := range v {
		if c := cmp.Compare(v[i], other[i]); c != 0 {
			return c
		}
	}
	return 0
}

// String returns the padded major.minor.build.revision form.
func (v LegacyVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}
