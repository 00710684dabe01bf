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

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitFromConfig(t *testing.T) {
	prev := GetLogger()
	t.Cleanup(func() { SetLogger(prev) })

	require.NoError(t, InitFromConfig(Config{Level: "debug", JSON: true}, "meet"))
	require.NotEqual(t, prev, GetLogger())

	require.Error(t, InitFromConfig(Config{Level: "loud"}, ""))
}

func TestWarnwAppendsError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core)).WithValues("room", "r1")

	l.Warnw("could not send", errors.New("timeout"))
	l.Infow("joined", "peer", "p1")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "could not send", entries[0].Message)
	require.Equal(t, "timeout", entries[0].ContextMap()["error"])
	require.Equal(t, "r1", entries[1].ContextMap()["room"])
	require.Equal(t, "p1", entries[1].ContextMap()["peer"])
}

func TestPionAdapterLevel(t *testing.T) {
	prev := GetLogger()
	t.Cleanup(func() {
		SetLogger(prev)
		setPionLevel("")
	})

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(NewZapLogger(zap.New(core)))
	setPionLevel("warn")

	pl := PionLoggerFactory().NewLogger("ice")
	pl.Debugf("checking %d pairs", 3)
	pl.Infof("connected")
	pl.Warnf("candidate %s failed", "host")
	pl.Error("dtls closed")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "candidate host failed", entries[0].Message)
	require.Equal(t, "ice", entries[0].LoggerName)
}
