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

package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/myworldtech/meet/pkg/config/configtest"
)

func TestConfig_DefaultsKept(t *testing.T) {
	const content = `signal:
  url: ws://localhost:3000
quality:
  low_threshold_kbps: 300`
	conf, err := NewConfig(content, true, nil, nil)
	require.NoError(t, err)
	require.NoError(t, conf.Validate())

	require.Equal(t, "ws://localhost:3000", conf.Signal.URL)
	require.Equal(t, 300, conf.Quality.LowThresholdKbps)
	require.Equal(t, 2500, conf.Quality.HighThresholdKbps)
	require.Equal(t, 30*time.Second, conf.Session.RecoveryDeadline)
	require.Equal(t, 5*time.Second, conf.Signal.ConnectTimeout)
	require.Equal(t, RemoteAudioFollowSpeaker, conf.Session.RemoteAudioPolicy)
	require.True(t, conf.Session.UseDataChannel)
	require.Equal(t, "share", conf.Session.ScreenShareSuffix)
	require.Equal(t, "users:", conf.Profile.Redis.KeyPrefix)
}

func TestConfig_DurationsFromStrings(t *testing.T) {
	const content = `signal:
  url: ws://sfu
  request_timeout: 2s
session:
  recovery_deadline: 1m`
	conf, err := NewConfig(content, true, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, conf.Signal.RequestTimeout)
	require.Equal(t, time.Minute, conf.Session.RecoveryDeadline)
}

func TestConfig_UnknownKeys(t *testing.T) {
	const content = `unknown: 10
signal:
  url: ws://sfu`
	_, err := NewConfig(content, true, nil, nil)
	require.Error(t, err)

	_, err = NewConfig(content, false, nil, nil)
	require.NoError(t, err)
}

func TestConfig_Validate(t *testing.T) {
	conf, err := NewConfig("", true, nil, nil)
	require.NoError(t, err)
	require.ErrorIs(t, conf.Validate(), ErrSignalURLNotSet)

	conf.Signal.URL = "ws://sfu"
	conf.Quality.LowThresholdKbps = 3000
	require.ErrorIs(t, conf.Validate(), ErrInvalidThresholds)

	conf.Quality.LowThresholdKbps = 500
	conf.Session.RemoteAudioPolicy = "loud"
	require.ErrorIs(t, conf.Validate(), ErrInvalidAudioPolicy)

	conf.Session.RemoteAudioPolicy = RemoteAudioStartMuted
	require.NoError(t, conf.Validate())
}

func TestGeneratedFlags(t *testing.T) {
	generatedFlags, err := GenerateCLIFlags(nil, false)
	require.NoError(t, err)

	app := cli.NewApp()
	app.Flags = append(app.Flags, generatedFlags...)

	set := flag.NewFlagSet("test", 0)
	for _, f := range app.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{
		"--signal.url", "ws://flag",
		"--media.simulcast=false",
		"--prometheus_port", "9999",
		"--quality.high_threshold_kbps", "4000",
		"--session.recovery_deadline", "45s",
	}))

	c := cli.NewContext(app, set, nil)
	conf, err := NewConfig("", true, c, nil)
	require.NoError(t, err)

	require.Equal(t, "ws://flag", conf.Signal.URL)
	require.False(t, conf.Media.Simulcast)
	require.Equal(t, uint32(9999), conf.PrometheusPort)
	require.Equal(t, 4000, conf.Quality.HighThresholdKbps)
	require.Equal(t, 45*time.Second, conf.Session.RecoveryDeadline)
}

func TestYAMLTags(t *testing.T) {
	require.NoError(t, configtest.CheckYAMLTags(Config{}))
}
