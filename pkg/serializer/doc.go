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


// Package serializer encodes results and decodes input documents.
//
// # Formats
//
//   - JSON: indented, for machines and the HTTP API
//   - YAML: for constraint sets and environments kept in version control
//   - Table: sorted FIELD/VALUE rows for terminals, write-only
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// An empty path or "-" writes to stdout.
//
// # Reading
//
//	set, err := serializer.FromFileWithContext[validator.ConstraintSet](ctx, "constraints.yaml")
//
// Paths may be local files, http(s) URLs, or "-" for stdin. The format is
// detected from the extension (.json, .yaml, .yml); stdin is decoded as YAML,
// which accepts JSON documents too.
//
// # ConfigMaps
//
// A cm://namespace/name path reads or writes a Kubernetes ConfigMap. The
// document is stored under document.{yaml|json|txt} next to format, kind and
// timestamp keys. NewOutputWriter picks ConfigMapWriter for such paths, and
// FromFileWithKubeconfig selects the cluster credentials for reads.
//
// # HTTP
//
//	serializer.RespondJSON(w, http.StatusOK, resp)
//
// RespondJSON encodes into a buffer first so an encoding failure never leaves
// a partial response behind.
package serializer
