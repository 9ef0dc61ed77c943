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


// Package defaults provides centralized configuration constants.
//
// This package defines timeout values, request limits and the document API
// version used across the CLI and the API server. Centralizing these values
// keeps them consistent and makes tuning easier.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ValidateEvaluationTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - HTTP handlers: 5s for single checks, 30s for constraint-set validation
//   - Evaluation timeouts stay below their handler timeouts
//   - Server shutdown: 30s for graceful shutdown
package defaults
