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


package check

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/versionspec/pkg/version"
)

var specificationChecks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vspec_specification_checks_total",
		Help: "Total number of candidate versions checked against a specification",
	},
	[]string{"kind", "valid"},
)

func recordCheck(kind version.SpecificationKind, valid bool) {
	specificationChecks.WithLabelValues(kind.String(), strconv.FormatBool(valid)).Inc()
}
