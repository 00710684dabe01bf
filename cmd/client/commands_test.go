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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"
	"github.com/stretchr/testify/require"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/mediaengine"
	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/telemetry/prometheus"
)

func TestParseCommand(t *testing.T) {
	name, args := parseCommand("  /MIC   off ")
	require.Equal(t, "/mic", name)
	require.Equal(t, []string{"off"}, args)

	name, args = parseCommand("")
	require.Empty(t, name)
	require.Empty(t, args)

	enabled, err := parseToggle([]string{"on"})
	require.NoError(t, err)
	require.True(t, enabled)

	enabled, err = parseToggle([]string{"OFF"})
	require.NoError(t, err)
	require.False(t, enabled)

	_, err = parseToggle([]string{"maybe"})
	require.ErrorIs(t, err, errUsage)
	_, err = parseToggle(nil)
	require.ErrorIs(t, err, errUsage)
}

func TestShareCommand(t *testing.T) {
	var out bytes.Buffer
	c := &Client{out: &out}

	require.False(t, c.handleCommand("/share off"))
	require.Contains(t, out.String(), errNotSharing.Error())

	out.Reset()
	require.False(t, c.handleCommand("/share maybe"))
	require.Contains(t, out.String(), errUsage.Error())

	out.Reset()
	require.False(t, c.handleCommand("/share on"))
	require.Contains(t, out.String(), "screen sharing is not available")
	require.Nil(t, c.share)
}

func TestRenderParticipants(t *testing.T) {
	var out bytes.Buffer
	renderParticipants(&out, []types.Participant{
		{PeerID: "self", DisplayName: "You", IsLocal: true},
		{PeerID: "alice", DisplayName: "Alice", AudioConsumerID: "a1", Muted: true, VideoConsumerID: "v1"},
		{PeerID: "bob", DisplayName: "Unknown"},
	})

	rendered := out.String()
	require.Contains(t, rendered, "You (you)")
	require.Contains(t, rendered, "Alice")
	require.Contains(t, rendered, "muted")
	require.Contains(t, rendered, "bob")
}

func TestRenderStats(t *testing.T) {
	var out bytes.Buffer
	renderStats(&out, prometheus.Stats{Joins: 2, JoinFailures: 1, QualityTier: int32(types.QualityHigh)}, 2_500_000, 1800)

	rendered := out.String()
	require.Contains(t, rendered, "2.5 MB")
	require.Contains(t, rendered, "1,800 kbps")
	require.Contains(t, rendered, "HIGH")
	require.Contains(t, rendered, "2 (1 failed)")
}

func TestRenderRequests(t *testing.T) {
	var out bytes.Buffer
	renderRequests(&out, nil)
	require.Contains(t, out.String(), "no pending join requests")

	out.Reset()
	renderRequests(&out, []types.PendingJoinRequest{{PeerID: "carol", CorrelationID: "c1"}})
	require.Contains(t, out.String(), "carol")
}

type sampleRecorder struct {
	lock     sync.Mutex
	samples  []media.Sample
	disposed bool
}

func (r *sampleRecorder) ID() string {
	return "video-1"
}

func (r *sampleRecorder) WriteSample(sample media.Sample) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.disposed {
		return mediaengine.ErrTrackDisposed
	}
	r.samples = append(r.samples, sample)
	return nil
}

func (r *sampleRecorder) count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.samples)
}

func (r *sampleRecorder) dispose() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.disposed = true
}

func TestTrackWriter(t *testing.T) {
	t.Run("plays h264 annex-b", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "camera.h264")
		require.NoError(t, os.WriteFile(path, []byte{
			0x00, 0x00, 0x00, 0x01, 0x67, 0x42, 0x00, 0x1f,
			0x00, 0x00, 0x00, 0x01, 0x68, 0xce, 0x3c, 0x80,
			0x00, 0x00, 0x00, 0x01, 0x65, 0x88, 0x84, 0x00,
		}, 0o644))

		rec := &sampleRecorder{}
		w := NewTrackWriter(context.Background(), rec, path, webrtc.MimeTypeH264, logger.GetLogger())
		require.NoError(t, w.Start())
		require.Eventually(t, func() bool {
			return rec.count() >= 2
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("stops when the track is disposed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "camera.h264")
		var data []byte
		for i := 0; i < 100; i++ {
			data = append(data, 0x00, 0x00, 0x00, 0x01, 0x65, byte(i), 0x84, 0x00)
		}
		require.NoError(t, os.WriteFile(path, data, 0o644))

		rec := &sampleRecorder{}
		w := NewTrackWriter(context.Background(), rec, path, webrtc.MimeTypeH264, logger.GetLogger())
		require.NoError(t, w.Start())
		require.Eventually(t, func() bool {
			return rec.count() >= 1
		}, time.Second, 10*time.Millisecond)

		rec.dispose()
		stopped := rec.count()
		time.Sleep(100 * time.Millisecond)
		require.Equal(t, stopped, rec.count())
	})

	t.Run("stops with its context", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "camera.h264")
		var data []byte
		for i := 0; i < 100; i++ {
			data = append(data, 0x00, 0x00, 0x00, 0x01, 0x65, byte(i), 0x84, 0x00)
		}
		require.NoError(t, os.WriteFile(path, data, 0o644))

		ctx, cancel := context.WithCancel(context.Background())
		rec := &sampleRecorder{}
		w := NewTrackWriter(ctx, rec, path, webrtc.MimeTypeH264, logger.GetLogger())
		require.NoError(t, w.Start())
		cancel()
		time.Sleep(100 * time.Millisecond)
		stopped := rec.count()
		time.Sleep(100 * time.Millisecond)
		require.Equal(t, stopped, rec.count())
	})

	t.Run("rejects unknown formats and missing files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mic.raw")
		require.NoError(t, os.WriteFile(path, []byte{0x01}, 0o644))

		w := NewTrackWriter(context.Background(), &sampleRecorder{}, path, "audio/PCMU", logger.GetLogger())
		require.ErrorIs(t, w.Start(), errUnsupportedFormat)

		w = NewTrackWriter(context.Background(), &sampleRecorder{}, filepath.Join(t.TempDir(), "missing.ivf"), webrtc.MimeTypeVP8, logger.GetLogger())
		require.Error(t, w.Start())
	})
}
