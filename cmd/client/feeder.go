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
	"context"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/mediaengine"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

// MediaFeeder plays the configured files into every track the engine creates.
// Tracks without a file stay silent.
type MediaFeeder struct {
	files  map[types.MediaKind]string
	logger logger.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewMediaFeeder(opts ClientOptions) *MediaFeeder {
	ctx, cancel := context.WithCancel(context.Background())
	files := make(map[types.MediaKind]string)
	if opts.AudioFile != "" {
		files[types.MediaKindAudio] = opts.AudioFile
	}
	if opts.VideoFile != "" {
		files[types.MediaKindVideo] = opts.VideoFile
	}
	return &MediaFeeder{
		files:  files,
		logger: logger.GetLogger().WithName("feeder"),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (f *MediaFeeder) OnTrackCreated(track *mediaengine.LocalTrack) {
	path, ok := f.files[track.Kind()]
	if !ok {
		return
	}
	w := NewTrackWriter(f.ctx, track, path, track.MimeType(), f.logger)
	if err := w.Start(); err != nil {
		f.logger.Warnw("could not start track writer", err, "track", track.ID(), "file", path)
	}
}

func (f *MediaFeeder) Stop() {
	f.cancel()
}
