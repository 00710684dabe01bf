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

package rtc

import (
	"encoding/json"
	"sync"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/telemetry/prometheus"
)

type QualityMonitorParams struct {
	LowThresholdKbps  int
	HighThresholdKbps int
	Channel           signalling.Channel
	Logger            logger.Logger
	// video consumers a directive applies to
	ConsumerIDs     func() []string
	RequestKeyFrame func(consumerID string) error
	OnTierChanged   func(tier types.QualityTier)
}

// QualityMonitor maps downlink bandwidth samples to a quality tier and asks the SFU
// for the matching simulcast layer on every video consumer.
type QualityMonitor struct {
	params QualityMonitorParams

	lock sync.RWMutex
	tier types.QualityTier
	// spatial layer requested per consumer, not yet confirmed by the server
	unacked map[string]int
	issued  bool
}

func NewQualityMonitor(params QualityMonitorParams) *QualityMonitor {
	return &QualityMonitor{
		params:  params,
		tier:    types.QualityLow,
		unacked: make(map[string]int),
	}
}

// TierForBandwidth maps kbps to a tier, thresholds are inclusive on the medium band
func TierForBandwidth(kbps int, lowThreshold int, highThreshold int) types.QualityTier {
	switch {
	case kbps < lowThreshold:
		return types.QualityLow
	case kbps <= highThreshold:
		return types.QualityMedium
	default:
		return types.QualityHigh
	}
}

func (q *QualityMonitor) Tier() types.QualityTier {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return q.tier
}

// OnBandwidthSample emits a quality directive when the tier changes, or repeats it
// while the previous directive for the same tier is unacknowledged. Returns true if directives were sent.
func (q *QualityMonitor) OnBandwidthSample(kbps int) bool {
	tier := TierForBandwidth(kbps, q.params.LowThresholdKbps, q.params.HighThresholdKbps)

	q.lock.Lock()
	if tier == q.tier && len(q.unacked) == 0 {
		q.lock.Unlock()
		return false
	}
	changed := tier != q.tier
	q.tier = tier
	q.unacked = make(map[string]int)
	q.issued = true
	q.lock.Unlock()

	if changed {
		q.params.Logger.Infow("network quality tier changed", "tier", tier, "kbps", kbps)
		prometheus.SetQualityTier(int(tier))
		if q.params.OnTierChanged != nil {
			q.params.OnTierChanged(tier)
		}
	}

	var ids []string
	if q.params.ConsumerIDs != nil {
		ids = q.params.ConsumerIDs()
	}
	for _, id := range ids {
		q.emit(id, tier)
	}
	return len(ids) > 0
}

// ApplyToConsumer brings a newly created video consumer in line with the current tier,
// once any directive has been issued
func (q *QualityMonitor) ApplyToConsumer(consumerID string) {
	q.lock.RLock()
	issued, tier := q.issued, q.tier
	q.lock.RUnlock()

	if issued {
		q.emit(consumerID, tier)
	}
}

func (q *QualityMonitor) emit(consumerID string, tier types.QualityTier) {
	q.lock.Lock()
	q.unacked[consumerID] = tier.SpatialLayer()
	q.lock.Unlock()

	err := q.params.Channel.Emit(types.EventSetConsumerQuality, types.SetConsumerQualityRequest{
		ConsumerID:    consumerID,
		SpatialLayer:  tier.SpatialLayer(),
		TemporalLayer: 0,
	})
	if err != nil {
		q.params.Logger.Warnw("could not request consumer quality", err, "consumerID", consumerID, "tier", tier)
		return
	}
	prometheus.IncrementQualityDirective(tier.String())
}

// HandleResult processes quality-change-success and quality-change-error events
func (q *QualityMonitor) HandleResult(success bool, data json.RawMessage) {
	var ev types.QualityChangeEvent
	if len(data) > 0 {
		if err := json.Unmarshal(data, &ev); err != nil {
			q.params.Logger.Debugw("could not decode quality change result", "error", err)
		}
	}

	if !success {
		q.params.Logger.Warnw("quality change rejected", nil, "consumerID", ev.ConsumerID, "reason", ev.Error)
		return
	}

	// a late ack for an older layer leaves the current directive pending
	q.lock.Lock()
	for id, layer := range q.unacked {
		if ev.ConsumerID != "" && id != ev.ConsumerID {
			continue
		}
		if ev.SpatialLayer == nil || *ev.SpatialLayer == layer {
			delete(q.unacked, id)
		}
	}
	q.lock.Unlock()

	if ev.ConsumerID != "" && q.params.RequestKeyFrame != nil {
		if err := q.params.RequestKeyFrame(ev.ConsumerID); err != nil {
			q.params.Logger.Debugw("could not request key frame", "consumerID", ev.ConsumerID, "error", err)
		}
	}
}

// Forget drops bookkeeping for a released consumer
func (q *QualityMonitor) Forget(consumerID string) {
	q.lock.Lock()
	delete(q.unacked, consumerID)
	q.lock.Unlock()
}
