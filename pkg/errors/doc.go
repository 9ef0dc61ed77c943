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


// Package errors provides structured errors with stable codes.
//
// A StructuredError carries an ErrorCode for programmatic handling, a
// message, an optional cause and optional key/value context. Causes are
// unwrapped, so errors.Is and errors.As see through it:
//
//	spec, err := version.ParseSpecification(s)
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid specification", err)
//	}
//
// CodeOf recovers the code from any error chain and HTTPStatus maps a code
// to the status the API server responds with.
package errors
