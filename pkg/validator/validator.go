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
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/versionspec/pkg/defaults"
	"github.com/NVIDIA/versionspec/pkg/errors"
	"github.com/NVIDIA/versionspec/pkg/header"
)

// Validator evaluates constraint sets against an environment.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// Concurrency bounds how many constraint sets ValidateAll evaluates at once.
	Concurrency int
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithConcurrency returns an Option that sets the ValidateAll concurrency.
// Values below 1 keep the default.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.Concurrency = n
		}
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		Concurrency: defaults.ValidateConcurrency,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates every constraint in set against env.
// Returns a ValidationResult containing per-constraint results and summary.
func (v *Validator) Validate(ctx context.Context, set *ConstraintSet, env *Environment) (*ValidationResult, error) {
	start := time.Now()

	if err := set.Check(); err != nil {
		return nil, err
	}
	if env == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "environment cannot be nil")
	}
	if err := env.Expect(header.KindEnvironment); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid environment", err)
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, defaults.APIVersion, v.Version)

	for _, constraint := range set.Constraints {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(errors.ErrCodeTimeout, "validation canceled", ctx.Err())
		default:
		}

		cv := v.evaluateConstraint(constraint, env)
		result.Results = append(result.Results, cv)
		constraintEvaluations.WithLabelValues(string(cv.Status)).Inc()

		switch cv.Status {
		case ConstraintStatusPassed:
			result.Summary.Passed++
		case ConstraintStatusFailed:
			result.Summary.Failed++
		case ConstraintStatusSkipped:
			result.Summary.Skipped++
		}
	}

	result.Summary.Total = len(set.Constraints)
	result.Summary.Duration = time.Since(start)
	validationDuration.Observe(result.Summary.Duration.Seconds())

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = ValidationStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = ValidationStatusPartial
	default:
		result.Summary.Status = ValidationStatusPass
	}

	slog.Debug("validation completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// ValidateAll validates several constraint sets against the same environment.
// Results are returned in the order of sets. The first error cancels the
// remaining evaluations.
func (v *Validator) ValidateAll(ctx context.Context, sets []*ConstraintSet, env *Environment) ([]*ValidationResult, error) {
	results := make([]*ValidationResult, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	limit := v.Concurrency
	if limit < 1 {
		limit = defaults.ValidateConcurrency
	}
	g.SetLimit(limit)

	for i, set := range sets {
		g.Go(func() error {
			res, err := v.Validate(gctx, set, env)
			if err != nil {
				return fmt.Errorf("constraint set %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// evaluateConstraint converts an evaluation into its reportable form.
func (v *Validator) evaluateConstraint(constraint Constraint, env *Environment) ConstraintValidation {
	cv := ConstraintValidation{
		Name:     constraint.Name,
		Expected: constraint.Versions,
	}

	eval := EvaluateConstraint(constraint, env)
	cv.Actual = eval.Actual
	cv.Matched = eval.Matched
	invalid := describeInvalid(eval.Invalid)

	switch {
	case eval.Error != nil:
		cv.Status = ConstraintStatusSkipped
		cv.Message = eval.Error.Error()
		slog.Warn("skipping constraint",
			"name", constraint.Name,
			"error", eval.Error)
	case eval.Passed:
		cv.Status = ConstraintStatusPassed
		cv.Message = invalid
		slog.Debug("constraint passed",
			"name", constraint.Name,
			"actual", eval.Actual,
			"matched", eval.Matched)
	default:
		cv.Status = ConstraintStatusFailed
		cv.Message = fmt.Sprintf("version %s does not satisfy any of %v", eval.Actual, constraint.Versions)
		if invalid != "" {
			cv.Message += "; " + invalid
		}
		slog.Debug("constraint failed",
			"name", constraint.Name,
			"expected", constraint.Versions,
			"actual", eval.Actual)
	}

	if len(eval.Invalid) > 0 {
		slog.Warn("constraint has invalid specifications",
			"name", constraint.Name,
			"invalid", eval.Invalid)
	}

	return cv
}
