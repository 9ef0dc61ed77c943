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
	"testing"
)

// FuzzParseSemanticVersion checks that parsing never panics and that the
// canonical form of every accepted version parses back to equal precedence.
func FuzzParseSemanticVersion(f *testing.F) {
	f.Add("1")
	f.Add("1.2")
	f.Add("1.2.3")
	f.Add("0.0.0")
	f.Add("1.0.0-alpha")
	f.Add("1.0.0-alpha.1")
	f.Add("1.0.0-0.3.7")
	f.Add("1.0.0-x.7.z.92")
	f.Add("1.0.0+20130313144700")
	f.Add("1.0.0-beta+exp.sha.5114f85")
	f.Add("1.0.0-x-y-z.--")
	f.Add("")
	f.Add(".")
	f.Add("1.")
	f.Add("01.2.3")
	f.Add("1.2.3-01")
	f.Add("1.2.3-")
	f.Add("1.2.3+")
	f.Add("1.2.3-a..b")
	f.Add("1.2.3.4")
	f.Add("99999999999999999999.0.0")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ParseSemanticVersion(input)
		if err != nil {
			return
		}

		if v.Major() < 0 || v.Minor() < 0 || v.Patch() < 0 {
			t.Errorf("ParseSemanticVersion(%q) returned negative component: %v", input, v)
		}

		s := v.String()
		v2, err := ParseSemanticVersion(s)
		if err != nil {
			t.Fatalf("re-parsing %q (from %q) failed: %v", s, input, err)
		}
		if c := CompareSemantic(v, v2); c.Order != 0 {
			t.Errorf("round trip of %q changed precedence: %+v", input, c)
		}

		ref := MustParseSemanticVersion("1.0.0-rc.1+build")
		ab, ba := CompareSemantic(v, ref), CompareSemantic(ref, v)
		if ab.Order != -ba.Order || ab.BuildMetadataOnly != ba.BuildMetadataOnly {
			t.Errorf("comparison of %q with %v is not antisymmetric: %+v vs %+v", input, ref, ab, ba)
		}
	})
}

// FuzzParseSpecification checks that parsing never panics, that IsValid
// never panics, and that String output parses back to the same text.
func FuzzParseSpecification(f *testing.F) {
	f.Add("1.2.3", "1.2.3")
	f.Add("1.0", "1.0.0.0")
	f.Add("[1.0-2.0]", "1.5")
	f.Add("(1.0-2.0)", "2.0")
	f.Add("[1.0-*]", "999.0.0")
	f.Add("[*-2.0]", "2.0.1")
	f.Add("[*-*]", "1.0")
	f.Add("[1.0.0-beta - 2.0.0)", "1.0.0-rc.1")
	f.Add("[1.0.0-beta-2.0.0]", "1.5.0")
	f.Add("(1.0.0-x-,2.0]", "1.0.0")
	f.Add("[1.0,2.0-x]", "2.0.0-a")
	f.Add("[", "")
	f.Add("[-]", "-")
	f.Add("1.2.3-rc1", "1.2.3")

	f.Fuzz(func(t *testing.T, input, candidate string) {
		spec, err := ParseSpecification(input)
		if err != nil {
			return
		}

		_ = spec.IsValid(candidate)

		s := spec.String()
		again, err := ParseSpecification(s)
		if err != nil {
			t.Fatalf("re-parsing %q (from %q) failed: %v", s, input, err)
		}
		if again.String() != s {
			t.Errorf("round trip of %q: %q != %q", input, again.String(), s)
		}
		if again.IsValid(candidate) != spec.IsValid(candidate) {
			t.Errorf("round trip of %q changed IsValid(%q)", input, candidate)
		}
	})
}
