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
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"constraints.json", FormatJSON},
		{"constraints.JSON", FormatJSON},
		{"constraints.yaml", FormatYAML},
		{"constraints.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"constraints", FormatJSON},
		{StdioPath, FormatYAML},
		{"https://example.com/env.yaml?ref=main", FormatYAML},
		{"http://example.com/env.json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{name: "json", format: FormatJSON},
		{name: "yaml", format: FormatYAML},
		{name: "table", format: FormatTable, wantErr: true},
		{name: "unknown", format: Format("xml"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader("{}"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && r == nil {
				t.Fatal("expected reader, got nil")
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr bool
	}{
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"kind":"Environment","versions":{"host":"6.0.100"}}`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input:  "kind: Environment\nversions:\n  host: 6.0.100\n",
		},
		{
			name:   "json through yaml",
			format: FormatYAML,
			input:  `{"kind": "Environment", "versions": {"host": "6.0.100"}}`,
		},
		{name: "invalid json", format: FormatJSON, input: "{", wantErr: true},
		{name: "invalid yaml", format: FormatYAML, input: "kind: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}

			var doc testDocument
			err = r.Deserialize(&doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if doc.Kind != "Environment" || doc.Versions["host"] != "6.0.100" {
				t.Errorf("unexpected document: %+v", doc)
			}
		})
	}
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testDocument{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader returned %v", err)
	}

	empty := &Reader{format: FormatJSON}
	if err := empty.Deserialize(&testDocument{}); err == nil {
		t.Error("expected error for nil input")
	}
}

type countingCloser struct {
	io.Reader
	closed int
}

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestReader_CloseIsIdempotent(t *testing.T) {
	cc := &countingCloser{Reader: strings.NewReader("{}")}
	r, err := NewReader(FormatJSON, cc)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if cc.closed != 1 {
		t.Errorf("underlying reader closed %d times, want 1", cc.closed)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(yamlPath, []byte("kind: Environment\nversions:\n  sdk: 1.2.3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	jsonPath := filepath.Join(dir, "env.json")
	if err := os.WriteFile(jsonPath, []byte(`{"kind":"Environment","versions":{"sdk":"1.2.3"}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{yamlPath, jsonPath} {
		t.Run(filepath.Base(p), func(t *testing.T) {
			doc, err := FromFile[testDocument](p)
			if err != nil {
				t.Fatalf("FromFile failed: %v", err)
			}
			if doc.Versions["sdk"] != "1.2.3" {
				t.Errorf("unexpected document: %+v", doc)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := FromFile[testDocument](filepath.Join(dir, "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("table extension", func(t *testing.T) {
		if _, err := FromFile[testDocument](filepath.Join(dir, "out.txt")); err == nil {
			t.Error("expected error for write-only format")
		}
	})
}

func TestFromFileWithContext_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/env.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("kind: Environment\nversions:\n  host: 8.0.100\n"))
	}))
	defer srv.Close()

	doc, err := FromFileWithContext[testDocument](context.Background(), srv.URL+"/env.yaml")
	if err != nil {
		t.Fatalf("FromFileWithContext failed: %v", err)
	}
	if doc.Versions["host"] != "8.0.100" {
		t.Errorf("unexpected document: %+v", doc)
	}

	if _, err := FromFileWithContext[testDocument](context.Background(), srv.URL+"/missing.yaml"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestNewFileReader_Stdin(t *testing.T) {
	r, err := NewFileReader(FormatYAML, StdioPath)
	if err != nil {
		t.Fatalf("NewFileReader failed: %v", err)
	}
	if r.input != os.Stdin {
		t.Error("expected stdin input")
	}
	if r.closer != nil {
		t.Error("stdin must not be closed by the reader")
	}
}

func TestNewFileReader_ConfigMapURI(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "missing name", path: "cm://vspec", wantErr: "invalid ConfigMap URI format"},
		{name: "empty namespace", path: "cm:///env", wantErr: "namespace cannot be empty"},
		{name: "nested name", path: "cm://vspec/env/extra", wantErr: "single non-empty segment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileReader(FormatYAML, tt.path)
			if err == nil {
				t.Fatalf("NewFileReader(%q) expected error", tt.path)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewFileReader(%q) error = %v, want ConfigMap URI error containing %q", tt.path, err, tt.wantErr)
			}
			if strings.Contains(err.Error(), "failed to open file") {
				t.Errorf("NewFileReader(%q) treated the URI as a local file", tt.path)
			}
		})
	}
}
