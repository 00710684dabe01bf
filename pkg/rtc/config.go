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
	"time"

	"github.com/myworldtech/meet/pkg/config"
)

type SessionConfig struct {
	UseDataChannel        bool
	AudioPolicy           RemoteAudioPolicy
	SpeakerEnabled        bool
	Simulcast             bool
	MaxVideoBitrate       uint64
	ScreenShareSuffix     string
	// SendOnly publishes screen video and audio as selfPeerId + ScreenShareSuffix,
	// without receiving media or tracking the room
	SendOnly              bool
	LowThresholdKbps      int
	HighThresholdKbps     int
	RecoveryDeadline      time.Duration
	RecoveryRetryInterval time.Duration
	UpdateDebounce        time.Duration
	ProfileLookupTimeout  time.Duration
	ProfileWorkers        int
}

func NewSessionConfig(conf *config.Config) SessionConfig {
	policy := RemoteAudioFollowSpeaker
	if conf.Session.RemoteAudioPolicy == config.RemoteAudioStartMuted {
		policy = RemoteAudioStartMuted
	}

	return SessionConfig{
		UseDataChannel:        conf.Session.UseDataChannel,
		AudioPolicy:           policy,
		SpeakerEnabled:        conf.Session.SpeakerEnabled,
		Simulcast:             conf.Media.Simulcast,
		MaxVideoBitrate:       conf.Media.Video.MaxBitrate,
		ScreenShareSuffix:     conf.Session.ScreenShareSuffix,
		LowThresholdKbps:      conf.Quality.LowThresholdKbps,
		HighThresholdKbps:     conf.Quality.HighThresholdKbps,
		RecoveryDeadline:      conf.Session.RecoveryDeadline,
		RecoveryRetryInterval: conf.Session.RecoveryRetryInterval,
		UpdateDebounce:        conf.Session.UpdateDebounce,
		ProfileLookupTimeout:  conf.Profile.LookupTimeout,
		ProfileWorkers:        conf.Profile.Workers,
	}
}

func DefaultSessionConfig() SessionConfig {
	conf := config.DefaultConfig
	return NewSessionConfig(&conf)
}

// ScreenShareConfig derives the configuration of the send-only companion session
func (c SessionConfig) ScreenShareConfig() SessionConfig {
	c.SendOnly = true
	return c
}
