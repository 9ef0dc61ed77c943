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
	"testing"
)

func TestParseExactSpecification(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "1.2.3"},
		{input: "1.0"},
		{input: "1.2.3.4"},
		{input: "1", wantErr: true},
		{input: "1.2.3-beta", wantErr: true},
		{input: "1.2.3+build", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseExactSpecification(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidExactTarget) {
					t.Errorf("ParseExactSpecification(%q) error = %v, want ErrInvalidExactTarget", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExactSpecification(%q) unexpected error: %v", tt.input, err)
			}
			if spec.RequiredVersion != tt.input {
				t.Errorf("RequiredVersion = %q, want %q", spec.RequiredVersion, tt.input)
			}
		})
	}
}

func TestExactSpecification_IsValid(t *testing.T) {
	spec, err := ParseExactSpecification("1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		candidate string
		want      bool
	}{
		{"1.2.3", true},
		{"1.2.3.0", true},
		{"01.2.3", true},
		{"1.2.4", false},
		{"1.2", false},
		{"1.2.3-beta", false},
		{"1.2.3+build", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			if got := spec.IsValid(tt.candidate); got != tt.want {
				t.Errorf("Exact(1.2.3).IsValid(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestParseSpecification_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind SpecificationKind
		wantErr  error
	}{
		{name: "exact", input: "1.2.3", wantKind: KindExact},
		{name: "range", input: "[1.0-2.0]", wantKind: KindRange},
		{name: "wildcard range", input: "[1.0-*]", wantKind: KindRange},
		{name: "empty", input: "", wantErr: ErrEmptyVersion},
		{name: "prerelease exact routed to range", input: "1.2.3-rc1", wantErr: ErrInvalidRange},
		{name: "comma range routed to exact", input: "[1.0,2.0]", wantErr: ErrInvalidExactTarget},
		{name: "single segment exact", input: "1", wantErr: ErrInvalidExactTarget},
		{name: "unbounded range", input: "[*-*]", wantErr: ErrUnboundedRange},
		{name: "untrimmed exact", input: " 1.2", wantErr: ErrInvalidExactTarget},
		{name: "untrimmed range", input: "[1.0-2.0] ", wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecification(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSpecification(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpecification(%q) unexpected error: %v", tt.input, err)
			}
			if spec.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", spec.Kind, tt.wantKind)
			}
			switch spec.Kind {
			case KindExact:
				if spec.Exact == nil || spec.Range != nil {
					t.Error("exact specification must carry only the exact payload")
				}
			case KindRange:
				if spec.Range == nil || spec.Exact != nil {
					t.Error("range specification must carry only the range payload")
				}
			}
		})
	}
}

func TestSpecification_IsValid(t *testing.T) {
	tests := []struct {
		spec      string
		candidate string
		want      bool
	}{
		{"1.2.3", "1.2.3.0", true},
		{"1.2.3", "1.2.4", false},
		{"[1.0-*]", "999.0.0", true},
		{"[1.0-*]", "0.9", false},
		{"[*-2.0]", "2.0.1", false},
		{"[*-2.0]", "2.0", true},
		{"(*-2.0)", "2.0", false},
		{"[6.0.100-7.0]", "6.0.300", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec+"_"+tt.candidate, func(t *testing.T) {
			spec := MustParseSpecification(tt.spec)
			if got := spec.IsValid(tt.candidate); got != tt.want {
				t.Errorf("%s.IsValid(%q) = %v, want %v", tt.spec, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestSpecification_ZeroValueAcceptsNothing(t *testing.T) {
	var spec Specification
	if spec.IsValid("1.0") {
		t.Error("zero Specification must not accept any version")
	}
	if spec.String() != "" {
		t.Errorf("String() = %q, want empty", spec.String())
	}

	if (Specification{Kind: KindRange}).IsValid("1.0") {
		t.Error("range Specification without payload must not accept any version")
	}
}

func TestSpecification_String(t *testing.T) {
	tests := map[string]string{
		"1.2.3":                 "1.2.3",
		"[1.0-2.0)":             "[1.0-2.0)",
		"( 1.0 - * ]":           "(1.0-*]",
		"[1.0.0-beta-2.0.0]":    "[1.0.0-beta - 2.0.0]",
		"[1.0.0-beta - 2.0.0)":  "[1.0.0-beta - 2.0.0)",
		"(*-2.0.0-rc.1+build]":  "(* - 2.0.0-rc.1+build]",
		"[1.0.0-1 - 2.0.0-rc1]": "[1.0.0-1 - 2.0.0-rc1]",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			spec := MustParseSpecification(input)
			if got := spec.String(); got != want {
				t.Fatalf("String() = %q, want %q", got, want)
			}
			again, err := ParseSpecification(spec.String())
			if err != nil {
				t.Fatalf("re-parsing %q failed: %v", spec.String(), err)
			}
			if again.String() != want {
				t.Errorf("round trip = %q, want %q", again.String(), want)
			}
		})
	}
}

func TestMustParseSpecification_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid specification")
		}
	}()
	MustParseSpecification("[*-*]")
}
