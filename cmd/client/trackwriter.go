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
	"io"
	"os"
	"strings"
	"time"

	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media"
	"github.com/pion/webrtc/v3/pkg/media/h264reader"
	"github.com/pion/webrtc/v3/pkg/media/ivfreader"
	"github.com/pion/webrtc/v3/pkg/media/oggreader"
	"github.com/pkg/errors"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/mediaengine"
)

const h264FrameDuration = time.Second / 30

var errUnsupportedFormat = errors.New("unsupported media format")

type SampleWriter interface {
	ID() string
	WriteSample(sample media.Sample) error
}

// TrackWriter plays a media file into a track in real time until the file ends,
// the track is disposed or ctx is done
type TrackWriter struct {
	ctx      context.Context
	track    SampleWriter
	filePath string
	mimeType string
	logger   logger.Logger

	file      *os.File
	ogg       *oggreader.OggReader
	ivfheader *ivfreader.IVFFileHeader
	ivf       *ivfreader.IVFReader
	h264      *h264reader.H264Reader
}

func NewTrackWriter(ctx context.Context, track SampleWriter, filePath string, mimeType string, l logger.Logger) *TrackWriter {
	return &TrackWriter{
		ctx:      ctx,
		track:    track,
		filePath: filePath,
		mimeType: mimeType,
		logger:   l,
	}
}

func (w *TrackWriter) Start() error {
	file, err := os.Open(w.filePath)
	if err != nil {
		return err
	}
	w.file = file

	w.logger.Infow("starting track writer",
		"track", w.track.ID(),
		"file", w.filePath,
		"format", w.mimeType)
	switch {
	case strings.EqualFold(w.mimeType, webrtc.MimeTypeOpus):
		w.ogg, _, err = oggreader.NewWith(file)
		if err == nil {
			go w.writeOgg()
		}
	case strings.EqualFold(w.mimeType, webrtc.MimeTypeVP8):
		w.ivf, w.ivfheader, err = ivfreader.NewWith(file)
		if err == nil {
			go w.writeVP8()
		}
	case strings.EqualFold(w.mimeType, webrtc.MimeTypeH264):
		w.h264, err = h264reader.NewReader(file)
		if err == nil {
			go w.writeH264()
		}
	default:
		err = errors.Wrap(errUnsupportedFormat, w.mimeType)
	}
	if err != nil {
		_ = file.Close()
	}
	return err
}

func (w *TrackWriter) writeOgg() {
	defer w.onWriteComplete()

	// the granule difference is the number of samples in the page
	var lastGranule uint64
	for {
		pageData, pageHeader, err := w.ogg.ParseNextPage()
		if err == io.EOF {
			w.logger.Infow("all audio samples parsed and sent", "track", w.track.ID())
			return
		}
		if err != nil {
			w.logger.Errorw("could not parse ogg page", err, "track", w.track.ID())
			return
		}

		sampleCount := float64(pageHeader.GranulePosition - lastGranule)
		lastGranule = pageHeader.GranulePosition
		duration := time.Duration((sampleCount/48000)*1000) * time.Millisecond

		if !w.write(media.Sample{Data: pageData, Duration: duration}) || !w.sleep(duration) {
			return
		}
	}
}

func (w *TrackWriter) writeVP8() {
	defer w.onWriteComplete()

	// pace frames at playback speed, bursting the whole file causes heavy loss
	frameDuration := time.Millisecond * time.Duration((float32(w.ivfheader.TimebaseNumerator)/float32(w.ivfheader.TimebaseDenominator))*1000)
	for {
		frame, _, err := w.ivf.ParseNextFrame()
		if err == io.EOF {
			w.logger.Infow("all video frames parsed and sent", "track", w.track.ID())
			return
		}
		if err != nil {
			w.logger.Errorw("could not parse VP8 frame", err, "track", w.track.ID())
			return
		}

		if !w.sleep(frameDuration) || !w.write(media.Sample{Data: frame, Duration: frameDuration}) {
			return
		}
	}
}

func (w *TrackWriter) writeH264() {
	defer w.onWriteComplete()

	for {
		nal, err := w.h264.NextNAL()
		if err == io.EOF {
			w.logger.Infow("all video frames parsed and sent", "track", w.track.ID())
			return
		}
		if err != nil {
			w.logger.Errorw("could not parse H264 NAL", err, "track", w.track.ID())
			return
		}

		if !w.sleep(h264FrameDuration) || !w.write(media.Sample{Data: nal.Data, Duration: h264FrameDuration}) {
			return
		}
	}
}

// write returns false once the writer should stop
func (w *TrackWriter) write(sample media.Sample) bool {
	err := w.track.WriteSample(sample)
	switch {
	case err == nil:
		return true
	case errors.Is(err, mediaengine.ErrTrackDisposed):
		w.logger.Debugw("track disposed, stopping writer", "track", w.track.ID())
	default:
		w.logger.Errorw("could not write sample", err, "track", w.track.ID())
	}
	return false
}

func (w *TrackWriter) sleep(d time.Duration) bool {
	if d <= 0 {
		return w.ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (w *TrackWriter) onWriteComplete() {
	_ = w.file.Close()
}
