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


package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vserrors "github.com/NVIDIA/versionspec/pkg/errors"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		code vserrors.ErrorCode
		want bool
	}{
		{vserrors.ErrCodeInvalidRequest, false},
		{vserrors.ErrCodeNotFound, false},
		{vserrors.ErrCodeMethodNotAllowed, false},
		{vserrors.ErrCodeTimeout, true},
		{vserrors.ErrCodeUnavailable, true},
		{vserrors.ErrCodeRateLimitExceeded, true},
		{vserrors.ErrCodeInternal, true},
		{vserrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, retryableFromCode(tt.code))
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, map[string]any{}))

	a := map[string]any{"a": 1, "shared": "old"}
	b := map[string]any{"b": 2, "shared": "new"}
	got := mergeDetails(a, b)

	assert.Equal(t, map[string]any{"a": 1, "b": 2, "shared": "new"}, got)
	assert.Equal(t, "old", a["shared"], "inputs must not be modified")
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	rec := httptest.NewRecorder()

	WriteError(rec, req, http.StatusBadRequest, vserrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeError(t, rec)
	assert.Equal(t, string(vserrors.ErrCodeInvalidRequest), resp.Code)
	assert.Equal(t, "bad request", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Retryable)
	assert.Equal(t, "v", resp.Details["k"])
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound,
		vserrors.ErrCodeNotFound, "missing", false, nil)

	resp := decodeError(t, rec)
	_, err := uuid.Parse(resp.RequestID)
	assert.NoError(t, err)
	assert.Nil(t, resp.Details)
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantCode      vserrors.ErrorCode
		wantMessage   string
		wantRetryable bool
		wantDetails   map[string]any
	}{
		{
			name: "structured error with cause",
			err: vserrors.WrapWithContext(vserrors.ErrCodeUnavailable, "service unavailable",
				errors.New("upstream down"), map[string]any{"component": "fetch"}),
			wantStatus:    http.StatusServiceUnavailable,
			wantCode:      vserrors.ErrCodeUnavailable,
			wantMessage:   "service unavailable",
			wantRetryable: true,
			wantDetails:   map[string]any{"component": "fetch", "extra": "yes", "error": "upstream down"},
		},
		{
			name:          "wrapped structured error",
			err:           errors.Join(errors.New("ctx"), vserrors.New(vserrors.ErrCodeInvalidRequest, "bad spec")),
			wantStatus:    http.StatusBadRequest,
			wantCode:      vserrors.ErrCodeInvalidRequest,
			wantMessage:   "bad spec",
			wantRetryable: false,
			wantDetails:   map[string]any{"extra": "yes"},
		},
		{
			name:          "plain error falls back to internal",
			err:           errors.New("boom"),
			wantStatus:    http.StatusInternalServerError,
			wantCode:      vserrors.ErrCodeInternal,
			wantMessage:   "fallback",
			wantRetryable: true,
			wantDetails:   map[string]any{"extra": "yes", "error": "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteErrorFromErr(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "fallback",
				map[string]any{"extra": "yes"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, string(tt.wantCode), resp.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantRetryable, resp.Retryable)
			assert.Equal(t, tt.wantDetails, resp.Details)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/x", nil), http.MethodGet, http.MethodPost)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
	resp := decodeError(t, rec)
	assert.Equal(t, string(vserrors.ErrCodeMethodNotAllowed), resp.Code)
	assert.Equal(t, http.MethodDelete, resp.Details["method"])
}
