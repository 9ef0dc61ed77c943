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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/versionspec/pkg/server"
)

func serve(t *testing.T, h http.HandlerFunc, method, path string, q url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandleCheck(t *testing.T) {
	b := NewBuilder(WithVersion("test"))

	t.Run("valid", func(t *testing.T) {
		rec := serve(t, b.HandleCheck, http.MethodGet, "/v1/check",
			url.Values{"spec": {"[6.0-*]"}, "version": {"6.0.300", "5.0"}})
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[CheckResult](t, rec)
		assert.Equal(t, "[6.0-*]", res.Specification)
		assert.False(t, res.Valid)
		assert.Equal(t, []CandidateResult{{"6.0.300", true}, {"5.0", false}}, res.Results)
	})

	tests := []struct {
		name   string
		method string
		q      url.Values
		want   int
	}{
		{name: "wrong method", method: http.MethodPost, q: url.Values{"spec": {"1.0"}, "version": {"1.0"}}, want: http.StatusMethodNotAllowed},
		{name: "missing spec", method: http.MethodGet, q: url.Values{"version": {"1.0"}}, want: http.StatusBadRequest},
		{name: "missing version", method: http.MethodGet, q: url.Values{"spec": {"1.0"}}, want: http.StatusBadRequest},
		{name: "invalid spec", method: http.MethodGet, q: url.Values{"spec": {"[1.0"}, "version": {"1.0"}}, want: http.StatusBadRequest},
		{name: "long spec", method: http.MethodGet, q: url.Values{"spec": {strings.Repeat("1", 300)}, "version": {"1.0"}}, want: http.StatusBadRequest},
		{name: "long version", method: http.MethodGet, q: url.Values{"spec": {"1.0"}, "version": {strings.Repeat("1", 300)}}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, b.HandleCheck, tt.method, "/v1/check", tt.q)
			assert.Equal(t, tt.want, rec.Code)
			res := decode[server.ErrorResponse](t, rec)
			assert.NotEmpty(t, res.Code)
		})
	}
}

func TestHandleCompare(t *testing.T) {
	b := NewBuilder()

	rec := serve(t, b.HandleCompare, http.MethodGet, "/v1/compare", url.Values{"a": {"1.0.0-beta"}, "b": {"1.0.0"}})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[ComparisonResult](t, rec)
	assert.Equal(t, -1, res.Order)
	assert.Equal(t, "<", res.Relation)

	rec = serve(t, b.HandleCompare, http.MethodGet, "/v1/compare", url.Values{"a": {"1.0.0-beta"}, "b": {"1.0.0.1"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decode[server.ErrorResponse](t, rec).Code)

	rec = serve(t, b.HandleCompare, http.MethodGet, "/v1/compare", url.Values{"a": {"1.0"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, b.HandleCompare, http.MethodDelete, "/v1/compare", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleParse(t *testing.T) {
	b := NewBuilder()

	rec := serve(t, b.HandleParse, http.MethodGet, "/v1/parse", url.Values{"spec": {"[1.0 - 2.0)"}})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[ParseResult](t, rec)
	assert.Equal(t, "[1.0-2.0)", res.Canonical)
	require.NotNil(t, res.Specification.Range)
	assert.True(t, res.Specification.Range.MinInclusive)

	rec = serve(t, b.HandleParse, http.MethodGet, "/v1/parse", url.Values{"spec": {"1"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[server.ErrorResponse](t, rec).Details, "error")
}
