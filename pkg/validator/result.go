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


package validator

import (
	"time"

	"github.com/NVIDIA/versionspec/pkg/header"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates all constraints passed.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates one or more constraints failed.
	ValidationStatusFail ValidationStatus = "fail"

	// ValidationStatusPartial indicates some constraints couldn't be evaluated.
	ValidationStatusPartial ValidationStatus = "partial"
)

// ConstraintStatus represents the outcome of evaluating a single constraint.
type ConstraintStatus string

const (
	// ConstraintStatusPassed indicates the constraint was satisfied.
	ConstraintStatusPassed ConstraintStatus = "passed"

	// ConstraintStatusFailed indicates the constraint was not satisfied.
	ConstraintStatusFailed ConstraintStatus = "failed"

	// ConstraintStatusSkipped indicates the constraint couldn't be evaluated.
	ConstraintStatusSkipped ConstraintStatus = "skipped"
)

// ValidationResult represents the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// ConstraintSource is the path or URL of the constraint set.
	ConstraintSource string `json:"constraintSource,omitempty" yaml:"constraintSource,omitempty"`

	// EnvironmentSource is the path or URL of the environment.
	EnvironmentSource string `json:"environmentSource,omitempty" yaml:"environmentSource,omitempty"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Results contains per-constraint validation details in input order.
	Results []ConstraintValidation `json:"results" yaml:"results"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failed" yaml:"failed"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Total   int `json:"total" yaml:"total"`

	// Status is the overall validation status.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// ConstraintValidation represents the result of evaluating a single constraint.
type ConstraintValidation struct {
	// Name is the environment key the constraint applies to.
	Name string `json:"name" yaml:"name"`

	// Expected lists the specifications from the constraint set.
	Expected []string `json:"expected" yaml:"expected"`

	// Actual is the candidate version from the environment.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Matched is the specification that accepted Actual, in canonical form.
	Matched string `json:"matched,omitempty" yaml:"matched,omitempty"`

	// Status is the outcome of this constraint evaluation.
	Status ConstraintStatus `json:"status" yaml:"status"`

	// Message provides additional context, especially for failures or skipped constraints.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]ConstraintValidation, 0),
	}
}

// Failed reports whether the overall status is not a pass.
func (r *ValidationResult) Failed() bool {
	return r.Summary.Status != ValidationStatusPass
}
