//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/myworldtech/meet/pkg/config"
)

func InitializeClient(conf *config.Config, opts ClientOptions) (*Client, func(), error) {
	wire.Build(
		newSignalChannel,
		newProfileResolver,
		NewMediaFeeder,
		newMediaEngine,
		newStatsEstimator,
		newManualSource,
		newBandwidthSource,
		newSession,
		newScreenShareFactory,
		NewClient,
	)
	return nil, nil, nil
}
