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

package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/netmon"
	"github.com/myworldtech/meet/pkg/profile"
	"github.com/myworldtech/meet/pkg/rtc"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/testutils"
)

const (
	testRoom    = "standup"
	waitTimeout = 5 * time.Second
	waitTick    = 10 * time.Millisecond
)

var testProfiles = profile.StaticResolver{
	"alice": {Name: "Alice", PhotoURL: "https://img/alice.png"},
	"bob":   {Name: "Bob"},
}

type testPeer struct {
	peerID  string
	session *rtc.Session
	engine  *testutils.MediaEngine
	network *netmon.ManualSource
}

func newTestPeer(t *testing.T, sfu *StubSFU, peerID string) *testPeer {
	return newPeerWithConfig(t, sfu, peerID, testSessionConfig())
}

// newSharePeer builds the send-only screen share session of peerID
func newSharePeer(t *testing.T, sfu *StubSFU, peerID string) *testPeer {
	return newPeerWithConfig(t, sfu, peerID, testSessionConfig().ScreenShareConfig())
}

func testSessionConfig() rtc.SessionConfig {
	conf := rtc.DefaultSessionConfig()
	conf.UpdateDebounce = 0
	conf.RecoveryDeadline = waitTimeout
	conf.RecoveryRetryInterval = 20 * time.Millisecond
	return conf
}

func newPeerWithConfig(t *testing.T, sfu *StubSFU, peerID string, conf rtc.SessionConfig) *testPeer {
	channel := signalling.NewWSChannel(signalling.WSChannelParams{
		URL:                sfu.WSURL(),
		ConnectTimeout:     time.Second,
		RequestTimeout:     2 * time.Second,
		ReconnectBaseDelay: 20 * time.Millisecond,
		ReconnectMaxDelay:  50 * time.Millisecond,
		Logger:             logger.GetLogger().WithValues("peer", peerID),
	})

	p := &testPeer{
		peerID:  peerID,
		engine:  testutils.NewMediaEngine(),
		network: netmon.NewManualSource(),
	}
	p.session = rtc.NewSession(rtc.SessionParams{
		Config:   conf,
		Channel:  channel,
		Engine:   p.engine.FakeMediaEngine,
		Profiles: testProfiles,
		Network:  p.network,
		Logger:   logger.GetLogger().WithValues("peer", peerID),
	})
	t.Cleanup(func() {
		p.session.Close()
		p.network.Stop()
	})
	return p
}

func (p *testPeer) join(isHost bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	return p.session.Join(ctx, testRoom, p.peerID, isHost)
}

func (p *testPeer) participant(peerID string) (types.Participant, bool) {
	for _, participant := range p.session.Participants() {
		if participant.PeerID == peerID {
			return participant, true
		}
	}
	return types.Participant{}, false
}

// receivesFrom reports whether both audio and video of peerID are consumed
func (p *testPeer) receivesFrom(peerID string) bool {
	participant, ok := p.participant(peerID)
	return ok && participant.AudioConsumerID != "" && participant.VideoConsumerID != ""
}

func admit(t *testing.T, host *testPeer, approved bool) {
	require.Eventually(t, func() bool {
		return len(host.session.PendingRequests()) > 0
	}, waitTimeout, waitTick)

	req, ok := host.session.DequeueRequest()
	require.True(t, ok)
	require.NoError(t, host.session.ApproveRequest(approved, req.CorrelationID))
}

func TestHostAdmitsGuest(t *testing.T) {
	sfu := NewStubSFU()
	defer sfu.Close()

	alice := newTestPeer(t, sfu, "alice")
	require.NoError(t, alice.join(true))
	require.Equal(t, types.SessionStateActive, alice.session.State())
	require.Len(t, sfu.Producers(testRoom, "alice"), 2)

	bob := newTestPeer(t, sfu, "bob")
	joined := make(chan error, 1)
	go func() {
		joined <- bob.join(false)
	}()

	admit(t, alice, true)
	require.NoError(t, <-joined)
	require.Equal(t, types.SessionStateActive, bob.session.State())

	require.Eventually(t, func() bool {
		return bob.receivesFrom("alice") && alice.receivesFrom("bob")
	}, waitTimeout, waitTick)
	require.Eventually(t, func() bool {
		p, _ := bob.participant("alice")
		return p.DisplayName == "Alice" && !p.NamePending
	}, waitTimeout, waitTick)
	require.Eventually(t, func() bool {
		p, _ := alice.participant("alice")
		return p.IsLocal && p.DisplayName == "You" && p.PhotoURL == "https://img/alice.png"
	}, waitTimeout, waitTick)

	t.Run("chat reaches the other side", func(t *testing.T) {
		require.NoError(t, bob.session.SendMessage("hello"))
		require.Eventually(t, func() bool {
			for _, msg := range alice.session.Messages() {
				if msg.SenderID == "bob" && msg.Text == "hello" {
					return msg.SenderName == "Bob" && !msg.IsLocal
				}
			}
			return false
		}, waitTimeout, waitTick)
	})

	t.Run("mute is mirrored", func(t *testing.T) {
		require.NoError(t, bob.session.SetMicEnabled(false))
		require.Eventually(t, func() bool {
			p, ok := alice.participant("bob")
			return ok && p.Muted
		}, waitTimeout, waitTick)

		require.NoError(t, bob.session.SetMicEnabled(true))
		require.Eventually(t, func() bool {
			p, ok := alice.participant("bob")
			return ok && !p.Muted
		}, waitTimeout, waitTick)
	})

	t.Run("leaving removes the participant", func(t *testing.T) {
		bob.session.Close()
		require.Eventually(t, func() bool {
			_, ok := alice.participant("bob")
			return !ok
		}, waitTimeout, waitTick)
		require.NotContains(t, sfu.Peers(testRoom), "bob")
		require.NoError(t, bob.session.CloseReason())
	})
}

func TestScreenShare(t *testing.T) {
	sfu := NewStubSFU()
	defer sfu.Close()

	alice := newTestPeer(t, sfu, "alice")
	require.NoError(t, alice.join(true))

	// admitted by alice, the only host so far
	share := newSharePeer(t, sfu, "alice")
	joined := make(chan error, 1)
	go func() {
		joined <- share.join(false)
	}()
	admit(t, alice, true)
	require.NoError(t, <-joined)
	require.Equal(t, "aliceshare", share.session.SelfPeerID())

	require.Len(t, sfu.Producers(testRoom, "aliceshare"), 2)
	require.Len(t, share.engine.SendTransports(), 1)
	require.Empty(t, share.engine.RecvTransports())
	require.Empty(t, share.engine.Consumers())

	bob := newTestPeer(t, sfu, "bob")
	require.NoError(t, bob.join(true))
	require.Eventually(t, func() bool {
		return bob.receivesFrom("aliceshare")
	}, waitTimeout, waitTick)
	_, ok := alice.participant("aliceshare")
	require.False(t, ok)

	share.session.Close()
	require.Eventually(t, func() bool {
		_, ok := bob.participant("aliceshare")
		return !ok
	}, waitTimeout, waitTick)
	require.Equal(t, types.SessionStateActive, alice.session.State())
}

func TestHostRejectsGuest(t *testing.T) {
	sfu := NewStubSFU()
	defer sfu.Close()

	alice := newTestPeer(t, sfu, "alice")
	require.NoError(t, alice.join(true))

	bob := newTestPeer(t, sfu, "bob")
	joined := make(chan error, 1)
	go func() {
		joined <- bob.join(false)
	}()

	admit(t, alice, false)
	require.ErrorIs(t, <-joined, rtc.ErrNotApproved)
	require.Equal(t, types.SessionStateIdle, bob.session.State())
	require.Empty(t, bob.engine.SendTransports())
	require.NotContains(t, sfu.Peers(testRoom), "bob")
}

func TestRecoversAfterNetworkLoss(t *testing.T) {
	sfu := NewStubSFU()
	defer sfu.Close()

	alice := newTestPeer(t, sfu, "alice")
	require.NoError(t, alice.join(true))
	bob := newTestPeer(t, sfu, "bob")
	require.NoError(t, bob.join(true))
	require.Eventually(t, func() bool {
		return bob.receivesFrom("alice") && alice.receivesFrom("bob")
	}, waitTimeout, waitTick)

	sfu.DropConnections()

	for _, p := range []*testPeer{alice, bob} {
		p := p
		require.Eventually(t, func() bool {
			return len(p.engine.SendTransports()) >= 2 &&
				p.session.State() == types.SessionStateActive &&
				!p.session.IsRecovering()
		}, waitTimeout, waitTick, p.peerID)
	}
	require.Eventually(t, func() bool {
		return bob.receivesFrom("alice") && alice.receivesFrom("bob")
	}, waitTimeout, waitTick)

	// every transport from before the loss was released
	for _, p := range []*testPeer{alice, bob} {
		require.True(t, p.engine.SendTransports()[0].IsClosed())
		require.True(t, p.engine.RecvTransports()[0].IsClosed())
	}
	require.Len(t, sfu.Producers(testRoom, "alice"), 2)
}

func TestQualityFollowsBandwidth(t *testing.T) {
	sfu := NewStubSFU()
	defer sfu.Close()

	alice := newTestPeer(t, sfu, "alice")
	require.NoError(t, alice.join(true))
	bob := newTestPeer(t, sfu, "bob")
	require.NoError(t, bob.join(true))
	require.Eventually(t, func() bool {
		return bob.receivesFrom("alice")
	}, waitTimeout, waitTick)
	p, _ := bob.participant("alice")

	bob.network.Push(3000)
	require.Eventually(t, func() bool {
		return bob.session.NetworkTier() == types.QualityHigh
	}, waitTimeout, waitTick)
	require.Eventually(t, func() bool {
		for _, req := range sfu.QualityRequests(testRoom) {
			if req.ConsumerID == p.VideoConsumerID && req.SpatialLayer == 2 {
				return true
			}
		}
		return false
	}, waitTimeout, waitTick)

	bob.network.Push(100)
	require.Eventually(t, func() bool {
		requests := sfu.QualityRequests(testRoom)
		last := requests[len(requests)-1]
		return bob.session.NetworkTier() == types.QualityLow && last.ConsumerID == p.VideoConsumerID && last.SpatialLayer == 0
	}, waitTimeout, waitTick)
	require.Eventually(t, func() bool {
		for _, id := range bob.engine.KeyFrameRequests() {
			if id == p.VideoConsumerID {
				return true
			}
		}
		return false
	}, waitTimeout, waitTick)
}
