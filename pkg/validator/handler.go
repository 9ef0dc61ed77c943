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
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/versionspec/pkg/defaults"
	"github.com/NVIDIA/versionspec/pkg/errors"
	"github.com/NVIDIA/versionspec/pkg/serializer"
	"github.com/NVIDIA/versionspec/pkg/server"
)

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Constraints ConstraintSet `json:"constraints" yaml:"constraints"`
	Environment Environment   `json:"environment" yaml:"environment"`
}

// HandleValidate serves POST /v1/validate. The body is JSON, or YAML when
// the Content-Type says so.
func (v *Validator) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.MethodNotAllowed(w, r, http.MethodPost)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	req, err := ParseValidateRequest(body, r.Header.Get("Content-Type"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid validate request", nil)
		return
	}

	if n := len(req.Constraints.Constraints); n > defaults.MaxBulkRequests {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Too many constraints", false, map[string]any{
				"count": n,
				"max":   defaults.MaxBulkRequests,
			})
		return
	}

	result, err := v.Validate(ctx, &req.Constraints, &req.Environment)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to validate constraints", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// ParseValidateRequest decodes a validate request body.
func ParseValidateRequest(body io.Reader, contentType string) (*ValidateRequest, error) {
	if body == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "request body too large", err,
				map[string]any{"max": tooLarge.Limit})
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}

	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "request body is empty")
	}

	var req ValidateRequest

	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		err = yaml.Unmarshal(data, &req)
	default:
		err = json.Unmarshal(data, &req)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse %s body", formatName(ct)), err)
	}

	return &req, nil
}

func formatName(contentType string) string {
	if strings.Contains(contentType, "yaml") {
		return "YAML"
	}
	return "JSON"
}
