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
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/NVIDIA/versionspec/pkg/defaults"
	"github.com/NVIDIA/versionspec/pkg/header"
	"github.com/NVIDIA/versionspec/pkg/k8s/client"
)

// ConfigMapURIScheme prefixes paths that address a ConfigMap: cm://namespace/name.
const ConfigMapURIScheme = "cm://"

const (
	configMapDocumentKey  = "document"
	configMapFormatKey    = "format"
	configMapKindKey      = "kind"
	configMapTimestampKey = "timestamp"
	configMapFieldManager = "vspec"
)

// IsConfigMapURI reports whether path uses the cm:// scheme.
func IsConfigMapURI(path string) bool {
	return strings.HasPrefix(strings.TrimSpace(path), ConfigMapURIScheme)
}

// ConfigMapWriter writes a serialized document to a Kubernetes ConfigMap,
// creating or updating it with Server-Side Apply.
type ConfigMapWriter struct {
	namespace  string
	name       string
	format     Format
	kubeconfig string
	client     client.Interface
}

// NewConfigMapWriter creates a ConfigMapWriter for namespace/name. An empty
// kubeconfig uses the shared default client.
func NewConfigMapWriter(namespace, name string, format Format, kubeconfig string) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &ConfigMapWriter{
		namespace:  namespace,
		name:       name,
		format:     format,
		kubeconfig: kubeconfig,
	}
}

// Serialize renders v and applies it as the ConfigMap data:
//   - document.{yaml|json|txt}: the rendered document
//   - format: the format used
//   - kind: the document kind when v carries a header
//   - timestamp: the document timestamp, or now
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapTimeout)
	defer cancel()

	k8s := w.client
	if k8s == nil {
		c, config, err := client.GetKubeClient(w.kubeconfig)
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		slog.Debug("configmap client", "auth_method", client.AuthMethod(config))
		k8s = c
	}

	var buf bytes.Buffer
	if err := NewWriter(w.format, &buf).Serialize(ctx, v); err != nil {
		return err
	}

	kind, docVersion, timestamp := documentLabels(v)

	data := map[string]string{
		configMapDocumentKey + "." + extension(w.format): buf.String(),
		configMapFormatKey:    string(w.format),
		configMapTimestampKey: timestamp,
	}
	if kind != "" {
		data[configMapKindKey] = kind
	}

	labels := map[string]string{
		"app.kubernetes.io/name":    "vspec",
		"app.kubernetes.io/version": docVersion,
	}
	if kind != "" {
		labels["app.kubernetes.io/component"] = kind
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(labels).
		WithData(data)

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	if _, err := k8s.CoreV1().ConfigMaps(w.namespace).Apply(ctx, cm, metav1.ApplyOptions{
		FieldManager: configMapFieldManager,
		Force:        true,
	}); err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}

	return nil
}

// Close is a no-op; ConfigMapWriter holds no resources.
func (w *ConfigMapWriter) Close() error {
	return nil
}

func documentLabels(v any) (kind, docVersion, timestamp string) {
	docVersion = "unknown"
	timestamp = time.Now().UTC().Format(time.RFC3339)

	h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	})
	if !ok {
		return "", docVersion, timestamp
	}

	kind = h.GetKind().String()
	md := h.GetMetadata()
	if s := md["version"]; s != "" {
		docVersion = s
	}
	if s := md["timestamp"]; s != "" {
		timestamp = s
	}
	return kind, docVersion, timestamp
}

func extension(f Format) string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

// readConfigMap returns the stored document and its format.
func readConfigMap(ctx context.Context, k8s client.Interface, namespace, name string) ([]byte, Format, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapTimeout)
	defer cancel()

	cm, err := k8s.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	format := FormatYAML
	if s, ok := cm.Data[configMapFormatKey]; ok && !Format(s).IsUnknown() {
		format = Format(s)
	}

	if content, ok := cm.Data[configMapDocumentKey+"."+extension(format)]; ok {
		return []byte(content), format, nil
	}

	for _, f := range []Format{FormatYAML, FormatJSON} {
		if content, ok := cm.Data[configMapDocumentKey+"."+extension(f)]; ok {
			return []byte(content), f, nil
		}
	}

	return nil, "", fmt.Errorf("ConfigMap %s/%s has no %s data", namespace, name, configMapDocumentKey)
}

// parseConfigMapURI splits cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name must be a single non-empty segment")
	}

	return namespace, name, nil
}
