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

package mediaengine

import (
	"sync"

	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/rtc/types"
)

// LocalTrack is a sample sink fed by a capture source. It is bound to one pion track per
// simulcast layer when produced; samples are written to every layer while enabled.
type LocalTrack struct {
	id       string
	streamID string
	kind     types.MediaKind
	codec    webrtc.RTPCodecCapability

	enabled  atomic.Bool
	disposed atomic.Bool

	lock   sync.RWMutex
	layers []*webrtc.TrackLocalStaticSample
}

func newLocalTrack(id string, streamID string, kind types.MediaKind, codec webrtc.RTPCodecCapability) *LocalTrack {
	return &LocalTrack{
		id:       id,
		streamID: streamID,
		kind:     kind,
		codec:    codec,
	}
}

func (t *LocalTrack) ID() string {
	return t.id
}

func (t *LocalTrack) Kind() types.MediaKind {
	return t.kind
}

func (t *LocalTrack) MimeType() string {
	return t.codec.MimeType
}

func (t *LocalTrack) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

func (t *LocalTrack) Enabled() bool {
	return t.enabled.Load()
}

func (t *LocalTrack) Dispose() {
	t.enabled.Store(false)
	t.disposed.Store(true)
}

func (t *LocalTrack) IsDisposed() bool {
	return t.disposed.Load()
}

// bind creates the pion tracks for the given rids, a single unnamed layer when rids is empty
func (t *LocalTrack) bind(rids []string) ([]*webrtc.TrackLocalStaticSample, error) {
	var layers []*webrtc.TrackLocalStaticSample
	if len(rids) == 0 {
		layer, err := webrtc.NewTrackLocalStaticSample(t.codec, t.id, t.streamID)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	for _, rid := range rids {
		layer, err := webrtc.NewTrackLocalStaticSample(t.codec, t.id, t.streamID, webrtc.WithRTPStreamID(rid))
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}

	t.lock.Lock()
	t.layers = layers
	t.lock.Unlock()
	return layers, nil
}

// WriteSample forwards a captured sample to the bound layers. Disabled tracks drop samples.
func (t *LocalTrack) WriteSample(sample media.Sample) error {
	if t.disposed.Load() {
		return ErrTrackDisposed
	}
	if !t.enabled.Load() {
		return nil
	}

	t.lock.RLock()
	defer t.lock.RUnlock()
	for _, layer := range t.layers {
		if err := layer.WriteSample(sample); err != nil {
			return err
		}
	}
	return nil
}

type remoteTrack struct {
	id      string
	kind    types.MediaKind
	enabled atomic.Bool
}

func (t *remoteTrack) ID() string {
	return t.id
}

func (t *remoteTrack) Kind() types.MediaKind {
	return t.kind
}

func (t *remoteTrack) SetEnabled(enabled bool) {
	t.enabled.Store(enabled)
}

func (t *remoteTrack) Enabled() bool {
	return t.enabled.Load()
}
