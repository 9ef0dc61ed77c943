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

// Wildcard is the bound token meaning "unbounded on this side".
const Wildcard = "*"

// RangeSpecification accepts versions between Min and Max. Either bound may
// be Wildcard, but not both.
type RangeSpecification struct {
	Min          string `json:"min" yaml:"min"`
	Max          string `json:"max" yaml:"max"`
	MinInclusive bool   `json:"minInclusive" yaml:"minInclusive"`
	MaxInclusive bool   `json:"maxInclusive" yaml:"maxInclusive"`
}

// ParseRangeSpecification parses a bracketed range such as "[1.0-2.0)",
// "(1.0.0-beta - 2.0.0]", "[1.0-*]" or "[1.0,2.0]".
//
// '[' and ']' make a bound inclusive, '(' and ')' exclusive. Bounds are
// separated by a single ',' or by a '-'. Because SemVer pre-release tags may
// contain hyphens, every '-' that leaves a plausible bound on both sides is
// a candidate separator; a candidate written as " - " wins, otherwise the
// leftmost candidate is used.
func ParseRangeSpecification(s string) (RangeSpecification, error) {
	if len(s) < 2 {
		return RangeSpecification{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	var r RangeSpecification

	switch s[0] {
	case '[':
		r.MinInclusive = true
	case '(':
	default:
		return RangeSpecification{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	switch s[len(s)-1] {
	case ']':
		r.MaxInclusive = true
	case ')':
	default:
		return RangeSpecification{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	lo, hi, err := splitRangeBody(s[1 : len(s)-1])
	if err != nil {
		return RangeSpecification{}, fmt.Errorf("range %q: %w", s, err)
	}

	if lo == Wildcard && hi == Wildcard {
		return RangeSpecification{}, fmt.Errorf("%w: %q", ErrUnboundedRange, s)
	}

	r.Min, r.Max = lo, hi
	return r, nil
}

// splitCandidate is one way of splitting a range body at a hyphen.
type splitCandidate struct {
	lo, hi string
	spaced bool
}

func splitRangeBody(body string) (string, string, error) {
	if lo, hi, found := strings.Cut(body, ","); found {
		if strings.Contains(hi, ",") {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidSeparator, body)
		}
		lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
		if !isPlausibleBound(lo) {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidBound, lo)
		}
		if !isPlausibleBound(hi) {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidBound, hi)
		}
		return lo, hi, nil
	}

	if !strings.Contains(body, "-") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSeparator, body)
	}

	var candidates []splitCandidate
	for i := 0; i < len(body); i++ {
		if body[i] != '-' {
			continue
		}
		lo, hi := strings.TrimSpace(body[:i]), strings.TrimSpace(body[i+1:])
		if !isPlausibleBound(lo) || !isPlausibleBound(hi) {
			continue
		}
		candidates = append(candidates, splitCandidate{
			lo:     lo,
			hi:     hi,
			spaced: i > 0 && body[i-1] == ' ' && i+1 < len(body) && body[i+1] == ' ',
		})
	}

	if len(candidates) == 0 {
		return "", "", fmt.Errorf("%w: no split of %q yields two bounds", ErrInvalidBound, body)
	}

	for _, c := range candidates {
		if c.spaced {
			return c.lo, c.hi, nil
		}
	}
	return candidates[0].lo, candidates[0].hi, nil
}

func isPlausibleBound(b string) bool {
	return b == Wildcard || IsWellFormedLegacy(b) || IsSemanticVersion(b)
}

// IsValid reports whether candidate lies within the range. The comparator is
// chosen independently for each bound: SemVer when both the bound and the
// candidate parse as SemVer, legacy otherwise. A bound that cannot be
// compared with the candidate rejects it.
func (r RangeSpecification) IsValid(candidate string) bool {
	if r.Min != Wildcard {
		c, _, ok := CompareVersionStrings(r.Min, candidate)
		if !ok {
			return false
		}
		if c > 0 || (c == 0 && !r.MinInclusive) {
			return false
		}
	}

	if r.Max != Wildcard {
		c, _, ok := CompareVersionStrings(candidate, r.Max)
		if !ok {
			return false
		}
		if c > 0 || (c == 0 && !r.MaxInclusive) {
			return false
		}
	}

	return true
}

// String returns the range in bracket notation. Bounds containing a hyphen
// are separated by " - " so the result parses back to the same range.
func (r RangeSpecification) String() string {
	open, closing := "(", ")"
	if r.MinInclusive {
		open = "["
	}
	if r.MaxInclusive {
		closing = "]"
	}

	sep := "-"
	if strings.Contains(r.Min, "-") || strings.Contains(r.Max, "-") {
		sep = " - "
	}
	return open + r.Min + sep + r.Max + closing
}
