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


package serializer

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type testPayload struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, testPayload{Message: "ok", Code: 1})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got testPayload
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got.Message != "ok" || got.Code != 1 {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "bad") {
		t.Error("partial response written on encoding failure")
	}
}

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()
	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client == nil {
		t.Fatal("expected default client")
	}
	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", r.Client.Transport)
	}
	if tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("TLS verification must be on by default")
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("test-agent"),
		WithTotalTimeout(3*time.Second),
		WithInsecureSkipVerify(true),
	)
	if r.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.Client.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v", r.Client.Timeout)
	}
	if tr := r.Client.Transport.(*http.Transport); !tr.TLSClientConfig.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify to be applied")
	}

	custom := &http.Client{}
	if got := NewHttpReader(WithClient(custom)).Client; got != custom {
		t.Error("expected custom client to be kept")
	}
}

func TestHttpReader_Read(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("constraints: []"))
		case "/large":
			_, _ = w.Write([]byte(strings.Repeat("x", HttpReaderMaxBytes+1)))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	r := NewHttpReader()

	data, err := r.Read(srv.URL + "/ok")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "constraints: []" {
		t.Errorf("unexpected body: %q", data)
	}
	if gotAgent != HttpReaderUserAgent {
		t.Errorf("User-Agent = %q", gotAgent)
	}

	if _, err := r.Read(srv.URL + "/fail"); err == nil {
		t.Error("expected error for 500")
	}
	if _, err := r.Read(srv.URL + "/large"); err == nil {
		t.Error("expected error for oversized body")
	}
	if _, err := r.Read(""); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestHttpReader_ReadWithContext_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHttpReader().ReadWithContext(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}
