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


// Package server provides the HTTP server shared by the versionspec API.
//
// # Architecture
//
// Server wraps net/http with:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, UUID)
//   - API version negotiation via Accept: application/vnd.nvidia.vspec.v1+json
//   - Panic recovery
//   - Prometheus RED metrics served on /metrics
//   - Health and readiness probes
//   - Graceful shutdown on SIGINT and SIGTERM
//
// Domain handlers are registered with WithHandler; every path except "/" is
// wrapped with the middleware chain. /health, /ready and /metrics are reserved.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("vspecd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/check": b.HandleCheck,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and
// RATE_LIMIT_BURST from the environment on top of the values in package
// defaults.
//
// # Error Handling
//
// Handlers report failures with WriteError or WriteErrorFromErr, which emit:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "Invalid specification",
//	  "details": {"error": "invalid range: ..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes follow the error code: INVALID_REQUEST 400, NOT_FOUND 404,
// METHOD_NOT_ALLOWED 405, RATE_LIMIT_EXCEEDED 429, INTERNAL 500,
// SERVICE_UNAVAILABLE 503, TIMEOUT 504.
package server
