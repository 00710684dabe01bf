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
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var (
	signalRequests    atomic.Uint64
	signalFailures    atomic.Uint64
	signalReconnects  atomic.Uint64
	signalDisconnects atomic.Uint64

	promSignalRequestCounter *prometheus.CounterVec
	promSignalRequestTime    *prometheus.HistogramVec
	promSignalConnection     *prometheus.CounterVec
)

func initSignalStats(labels prometheus.Labels) {
	promSignalRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   meetNamespace,
		Subsystem:   "signal",
		Name:        "requests",
		ConstLabels: labels,
	}, []string{"event", "status"})
	promSignalRequestTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   meetNamespace,
		Subsystem:   "signal",
		Name:        "request_time_ms",
		ConstLabels: labels,
		Buckets:     []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"event"})
	promSignalConnection = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   meetNamespace,
		Subsystem:   "signal",
		Name:        "connection_events",
		ConstLabels: labels,
	}, []string{"type"})

	prometheus.MustRegister(promSignalRequestCounter)
	prometheus.MustRegister(promSignalRequestTime)
	prometheus.MustRegister(promSignalConnection)
}

// RecordSignalRequest counts an acknowledged request and how long the ack took
func RecordSignalRequest(event string, err error, d time.Duration) {
	signalRequests.Inc()
	status := "success"
	if err != nil {
		signalFailures.Inc()
		status = errorStatus(err)
	}
	if !enabled() {
		return
	}
	promSignalRequestCounter.WithLabelValues(event, status).Inc()
	if err == nil {
		promSignalRequestTime.WithLabelValues(event).Observe(float64(d.Milliseconds()))
	}
}

func IncrementSignalReconnect() {
	signalReconnects.Inc()
	if enabled() {
		promSignalConnection.WithLabelValues("reconnect").Inc()
	}
}

func IncrementSignalDisconnect() {
	signalDisconnects.Inc()
	if enabled() {
		promSignalConnection.WithLabelValues("disconnect").Inc()
	}
}

type timeout interface {
	Timeout() bool
}

func errorStatus(err error) string {
	var t timeout
	if errors.As(err, &t) && t.Timeout() {
		return "timeout"
	}
	return "failure"
}
