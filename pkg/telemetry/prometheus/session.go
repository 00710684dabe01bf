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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var (
	joins              atomic.Uint64
	joinFailures       atomic.Uint64
	rejoins            atomic.Uint64
	recoveries         atomic.Uint64
	recoveryFailures   atomic.Uint64
	participantCurrent atomic.Int32

	promJoinCounter        *prometheus.CounterVec
	promJoinTime           *prometheus.HistogramVec
	promRecoveryCounter    *prometheus.CounterVec
	promParticipantCurrent prometheus.Gauge
)

func initSessionStats(labels prometheus.Labels) {
	promJoinCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   meetNamespace,
		Subsystem:   "session",
		Name:        "join_counter",
		ConstLabels: labels,
	}, []string{"type", "result"})
	promJoinTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   meetNamespace,
		Subsystem:   "session",
		Name:        "join_time_ms",
		ConstLabels: labels,
		Buckets:     prometheus.ExponentialBucketsRange(100, 30000, 12),
	}, []string{"type"})
	promRecoveryCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   meetNamespace,
		Subsystem:   "session",
		Name:        "recovery_counter",
		ConstLabels: labels,
	}, []string{"result"})
	promParticipantCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   meetNamespace,
		Subsystem:   "participant",
		Name:        "total",
		ConstLabels: labels,
	})

	prometheus.MustRegister(promJoinCounter)
	prometheus.MustRegister(promJoinTime)
	prometheus.MustRegister(promRecoveryCounter)
	prometheus.MustRegister(promParticipantCurrent)
}

// RecordJoin counts a join attempt, result is one of success, rejected or failure
func RecordJoin(rejoin bool, result string, d time.Duration) {
	joinType := "join"
	if rejoin {
		joinType = "rejoin"
		rejoins.Inc()
	}
	if result == "success" {
		joins.Inc()
	} else {
		joinFailures.Inc()
	}
	if !enabled() {
		return
	}
	promJoinCounter.WithLabelValues(joinType, result).Inc()
	if result == "success" {
		promJoinTime.WithLabelValues(joinType).Observe(float64(d.Milliseconds()))
	}
}

func IncrementRecovery(result string) {
	switch result {
	case "success":
		recoveries.Inc()
	case "failed":
		recoveryFailures.Inc()
	}
	if enabled() {
		promRecoveryCounter.WithLabelValues(result).Inc()
	}
}

// SetParticipants records the participant count, local participant included
func SetParticipants(count int) {
	participantCurrent.Store(int32(count))
	if enabled() {
		promParticipantCurrent.Set(float64(count))
	}
}
