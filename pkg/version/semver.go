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
	"slices"
	"strconv"
	"strings"
)

// SemanticVersion is an immutable Semantic Versioning 2.0 value.
// The zero value represents 0.0.0. Use ParseSemanticVersion to construct
// instances from text.
type SemanticVersion struct {
	major, minor, patch int
	prerelease          []string
	build               []string
	original            string
}

// Comparison is the result of comparing two SemanticVersion values.
//
// Order is -1, 0 or 1. When the versions agree on major, minor, patch and
// pre-release but their build metadata differs, Order carries an ordinal
// comparison of the build metadata and BuildMetadataOnly is true. SemVer
// precedence ignores build metadata, so such a result means "equal" to the
// relational helpers; Order is only meaningful as a sort tie-break.
type Comparison struct {
	Order             int  `json:"order" yaml:"order"`
	BuildMetadataOnly bool `json:"buildMetadataOnly" yaml:"buildMetadataOnly"`
}

// Equal reports whether the comparison denotes equal precedence.
func (c Comparison) Equal() bool {
	return c.Order == 0 || c.BuildMetadataOnly
}

// ParseSemanticVersion parses major[.minor[.patch]][-prerelease][+build].
// Minor and patch default to 0 when absent. Numeric components and numeric
// pre-release identifiers may not have leading zeros. Identifiers must be
// non-empty and contain only [A-Za-z0-9-].
func ParseSemanticVersion(s string) (SemanticVersion, error) {
	if s == "" {
		return SemanticVersion{}, ErrEmptyVersion
	}

	v := SemanticVersion{original: s}
	rest := s

	if i := strings.IndexByte(rest, '+'); i >= 0 {
		build, err := parseIdentifiers(rest[i+1:], false)
		if err != nil {
			return SemanticVersion{}, fmt.Errorf("build metadata of %q: %w", s, err)
		}
		v.build = build
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '-'); i >= 0 {
		pre, err := parseIdentifiers(rest[i+1:], true)
		if err != nil {
			return SemanticVersion{}, fmt.Errorf("pre-release of %q: %w", s, err)
		}
		v.prerelease = pre
		rest = rest[:i]
	}

	parts := strings.Split(rest, ".")
	if len(parts) > 3 {
		return SemanticVersion{}, fmt.Errorf("%w: %q", ErrTooManyComponents, s)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := parseNumericComponent(part)
		if err != nil {
			return SemanticVersion{}, fmt.Errorf("%q: %w", s, err)
		}
		nums[i] = n
	}
	v.major, v.minor, v.patch = nums[0], nums[1], nums[2]

	return v, nil
}

// MustParseSemanticVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseSemanticVersion(s string) SemanticVersion {
	v, err := ParseSemanticVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSemanticVersion: %v", err))
	}
	return v
}

// IsSemanticVersion reports whether s parses as a SemanticVersion.
func IsSemanticVersion(s string) bool {
	_, err := ParseSemanticVersion(s)
	return err == nil
}

func parseNumericComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("%w: empty component", ErrInvalidComponent)
	}
	if !isDigits(part) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidComponent, part)
	}
	if len(part) > 1 && part[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrLeadingZero, part)
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidComponent, part)
	}
	return n, nil
}

func parseIdentifiers(s string, prerelease bool) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}

	ids := strings.Split(s, ".")
	for _, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: empty identifier in %q", ErrInvalidIdentifier, s)
		}
		for i := 0; i < len(id); i++ {
			if !isIdentifierChar(id[i]) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
			}
		}
		if prerelease && len(id) > 1 && id[0] == '0' && isDigits(id) {
			return nil, fmt.Errorf("%w: %q", ErrLeadingZero, id)
		}
	}
	return ids, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIdentifierChar(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '-'
}

// Major returns the major version number.
func (v SemanticVersion) Major() int { return v.major }

// Minor returns the minor version number.
func (v SemanticVersion) Minor() int { return v.minor }

// Patch returns the patch version number.
func (v SemanticVersion) Patch() int { return v.patch }

// Prerelease returns the dot-joined pre-release, or "" when there is none.
func (v SemanticVersion) Prerelease() string {
	return strings.Join(v.prerelease, ".")
}

// PrereleaseIdentifiers returns a copy of the pre-release identifiers.
func (v SemanticVersion) PrereleaseIdentifiers() []string {
	return slices.Clone(v.prerelease)
}

// BuildMetadata returns the dot-joined build metadata, or "" when there is none.
func (v SemanticVersion) BuildMetadata() string {
	return strings.Join(v.build, ".")
}

// IsPrerelease reports whether the version carries a pre-release tag.
func (v SemanticVersion) IsPrerelease() bool {
	return len(v.prerelease) > 0
}

// Original returns the text the version was parsed from.
func (v SemanticVersion) Original() string {
	return v.original
}

// String returns the canonical major.minor.patch[-prerelease][+build] form.
func (v SemanticVersion) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(v.major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.patch))
	if len(v.prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(v.Prerelease())
	}
	if len(v.build) > 0 {
		b.WriteByte('+')
		b.WriteString(v.BuildMetadata())
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the original text.
func (v SemanticVersion) MarshalText() ([]byte, error) {
	if v.original != "" {
		return []byte(v.original), nil
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SemanticVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseSemanticVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// CompareSemantic compares a to b by SemVer precedence, reporting build
// metadata differences separately. See Comparison.
func CompareSemantic(a, b SemanticVersion) Comparison {
	if c := cmp.Compare(a.major, b.major); c != 0 {
		return Comparison{Order: c}
	}
	if c := cmp.Compare(a.minor, b.minor); c != 0 {
		return Comparison{Order: c}
	}
	if c := cmp.Compare(a.patch, b.patch); c != 0 {
		return Comparison{Order: c}
	}
	if c := comparePrerelease(a.prerelease, b.prerelease); c != 0 {
		return Comparison{Order: c}
	}

	ab, bb := a.BuildMetadata(), b.BuildMetadata()
	if ab == bb {
		return Comparison{}
	}
	return Comparison{Order: strings.Compare(ab, bb), BuildMetadataOnly: true}
}

// Compare compares v to other. See CompareSemantic.
func (v SemanticVersion) Compare(other SemanticVersion) Comparison {
	return CompareSemantic(v, other)
}

// Equal reports whether v and other have the same precedence.
// Versions that differ only in build metadata are equal.
func (v SemanticVersion) Equal(other SemanticVersion) bool {
	return v.Compare(other).Equal()
}

// LessThan reports whether v has lower precedence than other.
func (v SemanticVersion) LessThan(other SemanticVersion) bool {
	c := v.Compare(other)
	return !c.BuildMetadataOnly && c.Order < 0
}

// GreaterThan reports whether v has higher precedence than other.
func (v SemanticVersion) GreaterThan(other SemanticVersion) bool {
	c := v.Compare(other)
	return !c.BuildMetadataOnly && c.Order > 0
}

// LessThanOrEqual reports whether v does not have higher precedence than other.
func (v SemanticVersion) LessThanOrEqual(other SemanticVersion) bool {
	return !v.GreaterThan(other)
}

// GreaterThanOrEqual reports whether v does not have lower precedence than other.
func (v SemanticVersion) GreaterThanOrEqual(other SemanticVersion) bool {
	return !v.LessThan(other)
}

// SortSemantic sorts versions in ascending precedence. Versions that differ
// only in build metadata are ordered by their build metadata so the result
// does not depend on the input order.
func SortSemantic(versions []SemanticVersion) {
	slices.SortStableFunc(versions, func(a, b SemanticVersion) int {
		return CompareSemantic(a, b).Order
	})
}

// comparePrerelease orders pre-release identifier lists. A version without
// a pre-release ranks above one with a pre-release.
func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareIdentifier(a, b string) int {
	an, bn := isDigits(a), isDigits(b)
	switch {
	case an && bn:
		// no leading zeros, so a longer numeral is a larger number
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case an:
		return -1
	case bn:
		return 1
	default:
		return compareFoldASCII(a, b)
	}
}

// compareFoldASCII is an ordinal comparison after upper-casing ASCII letters.
func compareFoldASCII(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(upperASCII(a[i]), upperASCII(b[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
