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


// Package api wires the versionspec HTTP API and runs it.
//
// Serve configures structured logging, registers the check, compare, parse
// and validate handlers and delegates the server lifecycle to pkg/server.
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/check?spec=SPEC&version=V  - evaluate one or more candidate versions
//   - GET  /v1/compare?a=A&b=B            - order two versions
//   - GET  /v1/parse?spec=SPEC            - structured form of a specification
//   - POST /v1/validate                   - evaluate a constraint set against an environment
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/validate)
//
// JSON by default, YAML when Content-Type is application/yaml:
//
//	constraints:
//	  kind: ConstraintSet
//	  constraints:
//	    - name: sdk
//	      versions: ["[6.0.100-7.0)"]
//	environment:
//	  kind: Environment
//	  versions:
//	    sdk: 6.0.300
//
// Example:
//
//	curl -G "http://localhost:8080/v1/check" \
//	  --data-urlencode "spec=[6.0-*]" --data-urlencode "version=6.0.300"
//
// # Build Variables
//
// version, commit and date are set at build time with
// -ldflags "-X github.com/NVIDIA/versionspec/pkg/api.version=...".
package api
