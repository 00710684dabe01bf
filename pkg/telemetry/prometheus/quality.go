// Copyright 2023 LiveKit, Inc.
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

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var (
	qualityTier       atomic.Int32
	qualityDirectives atomic.Uint64

	promQualityTier      prometheus.Gauge
	promQualityDirective *prometheus.CounterVec
)

func initQualityStats(labels prometheus.Labels) {
	promQualityTier = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   meetNamespace,
		Subsystem:   "quality",
		Name:        "tier",
		ConstLabels: labels,
		Help:        "Current downlink quality tier, 0 low, 1 medium, 2 high.",
	})
	promQualityDirective = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   meetNamespace,
		Subsystem:   "quality",
		Name:        "directives",
		ConstLabels: labels,
	}, []string{"tier"})

	prometheus.MustRegister(promQualityTier)
	prometheus.MustRegister(promQualityDirective)
}

func SetQualityTier(tier int) {
	qualityTier.Store(int32(tier))
	if enabled() {
		promQualityTier.Set(float64(tier))
	}
}

func IncrementQualityDirective(tier string) {
	qualityDirectives.Inc()
	if enabled() {
		promQualityDirective.WithLabelValues(tier).Inc()
	}
}
