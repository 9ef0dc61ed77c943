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


// Package client builds the Kubernetes client used to read and write
// versionspec documents stored in ConfigMaps (cm://namespace/name).
//
// The default client is created once on first use and shared:
//
//	clientset, config, err := client.GetKubeClient("")
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// Passing a kubeconfig path builds a dedicated client instead. Discovery
// order for the default client is KUBECONFIG, ~/.kube/config, then the
// in-cluster service account.
package client
