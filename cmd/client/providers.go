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
	"github.com/redis/go-redis/v9"

	"github.com/myworldtech/meet/pkg/config"
	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/mediaengine"
	"github.com/myworldtech/meet/pkg/netmon"
	"github.com/myworldtech/meet/pkg/profile"
	"github.com/myworldtech/meet/pkg/rtc"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
)

type ClientOptions struct {
	RoomID          string
	PeerID          string
	IsHost          bool
	AudioFile       string
	VideoFile       string
	ScreenFile      string
	ScreenAudioFile string
	ManualBandwidth bool
}

// ScreenShareFactory builds a send-only session with its own signal connection and media engine
type ScreenShareFactory func() (*rtc.Session, func())

func newSignalChannel(conf *config.Config) *signalling.WSChannel {
	return signalling.NewWSChannel(signalling.WSChannelParams{
		URL:                conf.Signal.URL,
		ConnectTimeout:     conf.Signal.ConnectTimeout,
		RequestTimeout:     conf.Signal.RequestTimeout,
		WriteTimeout:       conf.Signal.WriteTimeout,
		ReconnectBaseDelay: conf.Signal.ReconnectBaseDelay,
		ReconnectMaxDelay:  conf.Signal.ReconnectMaxDelay,
		Logger:             logger.GetLogger().WithName("signal"),
	})
}

func newProfileResolver(conf *config.Config) (profile.Resolver, func(), error) {
	rc := conf.Profile.Redis
	if !rc.IsConfigured() {
		logger.Infow("no redis configured, remote peers will show as unknown")
		return profile.StaticResolver{}, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Address,
		Username: rc.Username,
		Password: rc.Password,
		DB:       rc.DB,
	})
	cleanup := func() {
		_ = client.Close()
	}

	resolver, err := profile.NewCachedResolver(profile.NewRedisStore(client, rc.KeyPrefix), conf.Profile.CacheSize)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Infow("resolving profiles from redis", "addr", rc.Address)
	return resolver, cleanup, nil
}

func newMediaEngine(conf *config.Config, feeder *MediaFeeder) (*mediaengine.Engine, func()) {
	engine := mediaengine.NewEngine(mediaengine.EngineParams{
		Config:         conf.Media,
		OnTrackCreated: feeder.OnTrackCreated,
		Logger:         logger.GetLogger().WithName("media"),
	})
	return engine, func() {
		engine.Close()
		feeder.Stop()
	}
}

func newStatsEstimator(conf *config.Config, engine *mediaengine.Engine) (*netmon.StatsEstimator, func()) {
	estimator := netmon.NewStatsEstimator(netmon.StatsEstimatorParams{
		Counter:  engine,
		Interval: conf.Quality.SampleInterval,
		Logger:   logger.GetLogger().WithName("netmon"),
	})
	return estimator, estimator.Stop
}

func newManualSource() (*netmon.ManualSource, func()) {
	source := netmon.NewManualSource()
	return source, source.Stop
}

func newBandwidthSource(opts ClientOptions, estimator *netmon.StatsEstimator, manual *netmon.ManualSource) rtc.BandwidthSource {
	if opts.ManualBandwidth {
		return manual
	}
	return estimator
}

func newSession(
	conf *config.Config,
	channel *signalling.WSChannel,
	engine *mediaengine.Engine,
	profiles profile.Resolver,
	network rtc.BandwidthSource,
) (*rtc.Session, func()) {
	session := rtc.NewSession(rtc.SessionParams{
		Config:   rtc.NewSessionConfig(conf),
		Channel:  channel,
		Engine:   engine,
		Profiles: profiles,
		Network:  network,
		Logger:   logger.GetLogger().WithName("session"),
	})
	return session, session.Close
}

func newScreenShareFactory(conf *config.Config, opts ClientOptions) ScreenShareFactory {
	return func() (*rtc.Session, func()) {
		feeder := NewMediaFeeder(ClientOptions{
			AudioFile: opts.ScreenAudioFile,
			VideoFile: opts.ScreenFile,
		})
		engine, engineCleanup := newMediaEngine(conf, feeder)
		session := rtc.NewSession(rtc.SessionParams{
			Config:  rtc.NewSessionConfig(conf).ScreenShareConfig(),
			Channel: newSignalChannel(conf),
			Engine:  engine,
			Logger:  logger.GetLogger().WithName("screenshare"),
		})
		return session, func() {
			session.Close()
			engineCleanup()
		}
	}
}
