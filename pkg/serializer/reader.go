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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/versionspec/pkg/k8s/client"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// "-" (stdin) maps to FormatYAML, which also accepts JSON documents. ConfigMap
// URIs also map to FormatYAML; the stored format key takes precedence on read.
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive and ignores URL query strings.
func FormatFromPath(filePath string) Format {
	if filePath == StdioPath || IsConfigMapURI(filePath) {
		return FormatYAML
	}

	lowerPath := strings.ToLower(filePath)
	if isRemote(lowerPath) {
		lowerPath, _, _ = strings.Cut(lowerPath, "?")
	}

	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Reader handles deserialization of structured data from JSON or YAML.
// Close must be called to release file handles when using NewFileReader or
// NewFileReaderAuto. Close is idempotent.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
// If input implements io.Closer, Close closes it.
// Table format is write-only and rejected.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

func checkReadable(format Format) error {
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return fmt.Errorf("table format does not support deserialization")
	}
	return nil
}

// NewFileReader creates a new Reader that reads from a local file, an
// http(s) URL, a ConfigMap (cm://namespace/name), or stdin when filePath is
// "-". Remote documents are fetched into memory; stdin is never closed.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	return NewFileReaderWithContext(context.Background(), format, filePath)
}

// NewFileReaderWithContext is NewFileReader with the remote fetch bound to ctx.
func NewFileReaderWithContext(ctx context.Context, format Format, filePath string) (*Reader, error) {
	return openReader(ctx, format, filePath, "")
}

func openReader(ctx context.Context, format Format, filePath, kubeconfig string) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	switch {
	case filePath == StdioPath:
		return &Reader{format: format, input: os.Stdin}, nil

	case IsConfigMapURI(filePath):
		namespace, name, err := parseConfigMapURI(strings.TrimSpace(filePath))
		if err != nil {
			return nil, err
		}
		k8s, _, err := client.GetKubeClient(kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		data, stored, err := readConfigMap(ctx, k8s, namespace, name)
		if err != nil {
			return nil, err
		}
		slog.Debug("read ConfigMap", "namespace", namespace, "name", name, "format", stored, "size", len(data))
		return &Reader{format: stored, input: bytes.NewReader(data)}, nil

	case isRemote(strings.ToLower(filePath)):
		data, err := NewHttpReader().ReadWithContext(ctx, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch remote file: %w", err)
		}
		return &Reader{format: format, input: bytes.NewReader(data)}, nil

	default:
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return &Reader{format: format, input: file, closer: file}, nil
	}
}

// NewFileReaderAuto creates a new Reader with the format detected by FormatFromPath.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	return NewFileReader(FormatFromPath(filePath), filePath)
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	case FormatTable:
		return fmt.Errorf("table format is not supported for deserialization")

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader. Safe to call on a nil
// Reader and safe to call more than once.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// FromFile reads and deserializes a local file, http(s) URL, ConfigMap
// (cm://namespace/name) or stdin ("-") into a new T. The format is detected from the path.
//
// Example:
//
//	set, err := FromFile[validator.ConstraintSet]("constraints.yaml")
func FromFile[T any](path string) (*T, error) {
	return FromFileWithContext[T](context.Background(), path)
}

// FromFileWithContext is FromFile with remote fetches bound to ctx.
func FromFileWithContext[T any](ctx context.Context, path string) (*T, error) {
	return FromFileWithKubeconfig[T](ctx, path, "")
}

// FromFileWithKubeconfig is FromFileWithContext with an explicit kubeconfig
// for ConfigMap URIs. An empty kubeconfig uses automatic discovery.
func FromFileWithKubeconfig[T any](ctx context.Context, path, kubeconfig string) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := openReader(ctx, fileFormat, path, kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("successfully loaded object from file",
		slog.String("path", path),
	)

	return &r, nil
}
