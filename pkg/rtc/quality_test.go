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
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

func TestTierForBandwidth(t *testing.T) {
	cases := []struct {
		kbps int
		tier types.QualityTier
	}{
		{0, types.QualityLow},
		{499, types.QualityLow},
		{500, types.QualityMedium},
		{2500, types.QualityMedium},
		{2501, types.QualityHigh},
		{100000, types.QualityHigh},
	}
	for _, c := range cases {
		require.Equal(t, c.tier, TierForBandwidth(c.kbps, 500, 2500), "kbps %d", c.kbps)
	}
}

func newTestQualityMonitor(t *testing.T, consumerIDs ...string) (*QualityMonitor, *testChannel, *[]string) {
	channel := newTestChannel()
	require.NoError(t, channel.Connect(context.Background()))

	var keyFrames []string
	q := NewQualityMonitor(QualityMonitorParams{
		LowThresholdKbps:  500,
		HighThresholdKbps: 2500,
		Channel:           channel,
		Logger:            logger.GetLogger(),
		ConsumerIDs: func() []string {
			return consumerIDs
		},
		RequestKeyFrame: func(consumerID string) error {
			keyFrames = append(keyFrames, consumerID)
			return nil
		},
	})
	return q, channel, &keyFrames
}

func sentLayers(t *testing.T, channel *testChannel) []int {
	var layers []int
	for _, req := range decodeSent[types.SetConsumerQualityRequest](t, channel.sentEvents(types.EventSetConsumerQuality)) {
		layers = append(layers, req.SpatialLayer)
	}
	return layers
}

func TestQualityMonitor(t *testing.T) {
	t.Run("emits on change only", func(t *testing.T) {
		q, channel, _ := newTestQualityMonitor(t, "c1")

		require.False(t, q.OnBandwidthSample(100))
		require.True(t, q.OnBandwidthSample(600))
		require.True(t, q.OnBandwidthSample(3000))
		require.True(t, q.OnBandwidthSample(400))
		require.Equal(t, types.QualityLow, q.Tier())
		require.Equal(t, []int{1, 2, 0}, sentLayers(t, channel))
	})

	t.Run("repeats while unacknowledged", func(t *testing.T) {
		q, channel, keyFrames := newTestQualityMonitor(t, "c1")

		q.OnBandwidthSample(600)
		q.OnBandwidthSample(700)
		require.Equal(t, []int{1, 1}, sentLayers(t, channel))

		q.HandleResult(false, json.RawMessage(`{"consumerId":"c1","error":"layer unavailable"}`))
		q.OnBandwidthSample(800)
		require.Equal(t, []int{1, 1, 1}, sentLayers(t, channel))

		q.HandleResult(true, json.RawMessage(`{"consumerId":"c1"}`))
		require.Equal(t, []string{"c1"}, *keyFrames)
		q.OnBandwidthSample(900)
		require.Equal(t, []int{1, 1, 1}, sentLayers(t, channel))
	})

	t.Run("late ack for an older layer keeps the newer directive pending", func(t *testing.T) {
		q, channel, _ := newTestQualityMonitor(t, "c1")

		q.OnBandwidthSample(600)
		q.OnBandwidthSample(3000)
		q.HandleResult(true, json.RawMessage(`{"consumerId":"c1","spatialLayer":1}`))
		q.OnBandwidthSample(3000)
		require.Equal(t, []int{1, 2, 2}, sentLayers(t, channel))

		q.HandleResult(true, json.RawMessage(`{"consumerId":"c1","spatialLayer":2}`))
		q.OnBandwidthSample(3000)
		require.Equal(t, []int{1, 2, 2}, sentLayers(t, channel))
	})

	t.Run("directive targets every video consumer", func(t *testing.T) {
		q, channel, _ := newTestQualityMonitor(t, "c1", "c2")

		q.OnBandwidthSample(5000)
		reqs := decodeSent[types.SetConsumerQualityRequest](t, channel.sentEvents(types.EventSetConsumerQuality))
		require.Equal(t, []types.SetConsumerQualityRequest{
			{ConsumerID: "c1", SpatialLayer: 2},
			{ConsumerID: "c2", SpatialLayer: 2},
		}, reqs)
	})

	t.Run("new consumers follow issued tier", func(t *testing.T) {
		q, channel, _ := newTestQualityMonitor(t)

		q.ApplyToConsumer("c1")
		require.Zero(t, channel.sentCount(types.EventSetConsumerQuality))

		q.OnBandwidthSample(1000)
		q.ApplyToConsumer("c1")
		require.Equal(t, []int{1}, sentLayers(t, channel))
	})

	t.Run("send failure is not fatal", func(t *testing.T) {
		q, channel, _ := newTestQualityMonitor(t, "c1")
		channel.Close()

		q.OnBandwidthSample(3000)
		require.Equal(t, types.QualityHigh, q.Tier())
	})
}
