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


package check

import (
	"context"
	"net/http"
	"net/url"

	"github.com/NVIDIA/versionspec/pkg/defaults"
	"github.com/NVIDIA/versionspec/pkg/errors"
	"github.com/NVIDIA/versionspec/pkg/serializer"
	"github.com/NVIDIA/versionspec/pkg/server"
)

// HandleCheck serves GET /v1/check?spec=SPEC&version=V[&version=V...].
func (b *Builder) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.MethodNotAllowed(w, r, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.CheckHandlerTimeout)
	defer cancel()

	q := r.URL.Query()
	spec, err := requireQuery(q, "spec")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
		return
	}

	candidates := q["version"]
	if len(candidates) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Missing query parameter", false, map[string]any{"parameter": "version"})
		return
	}
	if len(candidates) > defaults.MaxBulkRequests {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Too many candidate versions", false, map[string]any{
				"count": len(candidates),
				"max":   defaults.MaxBulkRequests,
			})
		return
	}
	for _, c := range candidates {
		if len(c) > defaults.MaxQueryValueLength {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Query parameter too long", false, map[string]any{
					"parameter": "version",
					"max":       defaults.MaxQueryValueLength,
				})
			return
		}
	}

	result, err := b.Check(ctx, spec, candidates)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to check versions", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleCompare serves GET /v1/compare?a=A&b=B.
func (b *Builder) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.MethodNotAllowed(w, r, http.MethodGet)
		return
	}

	q := r.URL.Query()
	a, err := requireQuery(q, "a")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
		return
	}
	bv, err := requireQuery(q, "b")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
		return
	}

	result, err := b.Compare(r.Context(), a, bv)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compare versions", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleParse serves GET /v1/parse?spec=SPEC.
func (b *Builder) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.MethodNotAllowed(w, r, http.MethodGet)
		return
	}

	spec, err := requireQuery(r.URL.Query(), "spec")
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
		return
	}

	result, err := b.Parse(r.Context(), spec)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to parse specification", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// requireQuery returns the single value of a required, length-bounded parameter.
func requireQuery(q url.Values, name string) (string, error) {
	v := q.Get(name)
	switch {
	case v == "":
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"Missing query parameter", map[string]any{"parameter": name})
	case len(v) > defaults.MaxQueryValueLength:
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"Query parameter too long", map[string]any{"parameter": name, "max": defaults.MaxQueryValueLength})
	}
	return v, nil
}
