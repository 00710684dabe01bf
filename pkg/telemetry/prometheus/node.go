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

const (
	meetNamespace string = "meet"
)

var (
	initialized atomic.Bool
)

// Init creates and registers every collector. Counters are kept in memory whether or not
// Init is called, Stats reports them.
func Init(clientID string) {
	if initialized.Load() {
		return
	}

	labels := prometheus.Labels{"client_id": clientID}
	initSignalStats(labels)
	initSessionStats(labels)
	initQualityStats(labels)

	initialized.Store(true)
}

func enabled() bool {
	return initialized.Load()
}

type Stats struct {
	SignalRequests    uint64
	SignalFailures    uint64
	SignalReconnects  uint64
	SignalDisconnects uint64
	Joins             uint64
	JoinFailures      uint64
	Rejoins           uint64
	Recoveries        uint64
	RecoveryFailures  uint64
	Participants      int32
	QualityTier       int32
	QualityDirectives uint64
}

func GetStats() Stats {
	return Stats{
		SignalRequests:    signalRequests.Load(),
		SignalFailures:    signalFailures.Load(),
		SignalReconnects:  signalReconnects.Load(),
		SignalDisconnects: signalDisconnects.Load(),
		Joins:             joins.Load(),
		JoinFailures:      joinFailures.Load(),
		Rejoins:           rejoins.Load(),
		Recoveries:        recoveries.Load(),
		RecoveryFailures:  recoveryFailures.Load(),
		Participants:      participantCurrent.Load(),
		QualityTier:       qualityTier.Load(),
		QualityDirectives: qualityDirectives.Load(),
	}
}
