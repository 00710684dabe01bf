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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/rtc/types/typesfakes"
	"github.com/myworldtech/meet/pkg/testutils"
)

const (
	testRoom = "room-1"
	testSelf = "self"
)

func joinTestSession(t *testing.T, sfu *fakeSFU, conf SessionConfig, isHost bool) *Session {
	s := newTestSession(t, sfu, conf)
	require.NoError(t, s.Join(context.Background(), testRoom, testSelf, isHost))
	require.Equal(t, types.SessionStateActive, s.State())
	return s
}

func participantByID(t *testing.T, s *Session, peerID string) types.Participant {
	for _, p := range s.Participants() {
		if p.PeerID == peerID {
			return p
		}
	}
	require.FailNow(t, "participant not found", peerID)
	return types.Participant{}
}

func producerOfKind(producers []*testutils.Producer, kind types.MediaKind) []*testutils.Producer {
	var out []*testutils.Producer
	for _, p := range producers {
		if p.Kind() == kind {
			out = append(out, p)
		}
	}
	return out
}

func consumerOfPeer(t *testing.T, sfu *fakeSFU, s *Session, peerID string, kind types.MediaKind) *testutils.Consumer {
	p := participantByID(t, s, peerID)
	id := p.AudioConsumerID
	if kind == types.MediaKindVideo {
		id = p.VideoConsumerID
	}
	for _, c := range sfu.engine.Consumers() {
		if c.ID() == id {
			return c
		}
	}
	require.FailNow(t, "consumer not found", "%s %s", peerID, kind)
	return nil
}

func TestJoin(t *testing.T) {
	t.Run("approved join builds transports and media", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.addPeer("alice", true)
		sfu.addPeer("gone", false)
		sfu.addPeer(testSelf, true)
		sfu.addProducer("alice", "alice-video", types.MediaKindVideo)
		sfu.addProducer("alice", "alice-audio", types.MediaKindAudio)

		s := joinTestSession(t, sfu, testSessionConfig(), false)

		joins := decodeSent[types.JoinRoomRequest](t, sfu.channel.sentEvents(types.EventJoinRoom))
		require.Equal(t, []types.JoinRoomRequest{{RoomID: testRoom, PeerID: testSelf, IsHost: false}}, joins)
		require.True(t, sfu.engine.IsLoaded())

		participants := s.Participants()
		require.Len(t, participants, 2)
		require.Equal(t, testSelf, participants[0].PeerID)
		require.True(t, participants[0].IsLocal)
		require.Equal(t, "You", participants[0].DisplayName)
		require.Equal(t, "alice", participants[1].PeerID)
		require.Equal(t, "alice", participants[1].DisplayName)
		require.False(t, participants[1].NamePending)
		require.NotEmpty(t, participants[1].AudioConsumerID)
		require.NotEmpty(t, participants[1].VideoConsumerID)

		require.Len(t, sfu.engine.SendTransports(), 1)
		require.Len(t, sfu.engine.RecvTransports(), 1)
		require.Equal(t, 1, sfu.channel.sentCount(types.EventConnectSendTransport))
		require.Equal(t, 1, sfu.channel.sentCount(types.EventConnectRecvTransport))

		create := decodeSent[types.CreateTransportRequest](t, sfu.channel.sentEvents(types.EventCreateSendTransport))
		require.Len(t, create, 1)
		require.NotEmpty(t, create[0].SCTPCapabilities)

		producers := sfu.engine.Producers()
		require.Len(t, producers, 2)
		video := producerOfKind(producers, types.MediaKindVideo)
		require.Len(t, video, 1)
		encodings := video[0].Encodings()
		require.Len(t, encodings, 3)
		require.Equal(t, []string{"r0", "r1", "r2"}, []string{encodings[0].RID, encodings[1].RID, encodings[2].RID})
		require.Equal(t, []float64{4, 2, 1}, []float64{
			encodings[0].ScaleResolutionDownBy,
			encodings[1].ScaleResolutionDownBy,
			encodings[2].ScaleResolutionDownBy,
		})
		require.Len(t, sfu.engine.Consumers(), 2)
	})

	t.Run("rejected join creates no transports", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.setApprove(false)
		s := newTestSession(t, sfu, testSessionConfig())

		err := s.Join(context.Background(), testRoom, testSelf, false)
		require.ErrorIs(t, err, ErrNotApproved)
		require.Equal(t, types.SessionStateIdle, s.State())
		require.Empty(t, sfu.engine.SendTransports())
		require.Empty(t, sfu.engine.RecvTransports())
		require.Zero(t, sfu.channel.sentCount(types.EventCreateSendTransport))
		require.Zero(t, sfu.channel.sentCount(types.EventCreateRecvTransport))
		require.False(t, sfu.channel.isClosed())

		// asking again is allowed
		sfu.setApprove(true)
		require.NoError(t, s.Join(context.Background(), testRoom, testSelf, false))
		require.Equal(t, types.SessionStateActive, s.State())
		require.Len(t, sfu.engine.SendTransports(), 1)
	})

	t.Run("failure releases partial resources and closes", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.engine.CreateRecvTransportReturns(nil, errors.New("no ports"))
		s := newTestSession(t, sfu, testSessionConfig())

		err := s.Join(context.Background(), testRoom, testSelf, false)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotApproved)

		sends := sfu.engine.SendTransports()
		require.Len(t, sends, 1)
		require.Equal(t, 1, sends[0].CloseCount())
		require.Empty(t, sfu.engine.Producers())
		require.Equal(t, types.SessionStateClosed, s.State())
		require.True(t, sfu.channel.isClosed())
		require.ErrorIs(t, s.Join(context.Background(), testRoom, testSelf, false), ErrSessionClosed)
	})

	t.Run("device without camera publishes audio only", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.engine.SetCanProduce(types.MediaKindVideo, false)
		joinTestSession(t, sfu, testSessionConfig(), false)

		producers := sfu.engine.Producers()
		require.Len(t, producers, 1)
		require.Equal(t, types.MediaKindAudio, producers[0].Kind())
	})

	t.Run("join twice is rejected", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), false)
		require.ErrorIs(t, s.Join(context.Background(), testRoom, testSelf, false), ErrInvalidState)
		require.Equal(t, types.SessionStateActive, s.State())
	})
}

func TestScreenShareSession(t *testing.T) {
	t.Run("publishes without receiving", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.addPeer("alice", true)
		sfu.addProducer("alice", "alice-video", types.MediaKindVideo)

		s := joinTestSession(t, sfu, testSessionConfig().ScreenShareConfig(), true)

		joins := decodeSent[types.JoinRoomRequest](t, sfu.channel.sentEvents(types.EventJoinRoom))
		require.Equal(t, []types.JoinRoomRequest{{RoomID: testRoom, PeerID: testSelf + "share", IsHost: false}}, joins)
		require.Equal(t, testSelf+"share", s.SelfPeerID())

		require.Len(t, sfu.engine.SendTransports(), 1)
		require.Empty(t, sfu.engine.RecvTransports())
		require.Zero(t, sfu.channel.sentCount(types.EventCreateRecvTransport))
		require.Zero(t, sfu.channel.sentCount(types.EventConsume))
		require.Zero(t, sfu.channel.OnCallCount())

		require.Len(t, producerOfKind(sfu.engine.Producers(), types.MediaKindVideo), 1)
		require.Len(t, producerOfKind(sfu.engine.Producers(), types.MediaKindAudio), 1)
		require.Empty(t, sfu.engine.Consumers())

		participants := s.Participants()
		require.Len(t, participants, 1)
		require.True(t, participants[0].IsLocal)
	})

	t.Run("new producers are not consumed", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig().ScreenShareConfig(), false)

		sfu.announceProducer("bob", "bob-video", types.MediaKindVideo)
		syncSession(t, s)
		require.Empty(t, sfu.engine.Consumers())
		require.Len(t, s.Participants(), 1)
	})

	t.Run("main session hides its own share", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.addPeer(testSelf+"share", true)
		sfu.addProducer(testSelf+"share", "share-video", types.MediaKindVideo)

		s := joinTestSession(t, sfu, testSessionConfig(), false)
		require.Equal(t, []string{testSelf}, peerIDs(s.Participants()))
		require.Empty(t, sfu.engine.Consumers())
	})

	t.Run("suffix is required", func(t *testing.T) {
		sfu := newFakeSFU()
		conf := testSessionConfig().ScreenShareConfig()
		conf.ScreenShareSuffix = ""
		s := newTestSession(t, sfu, conf)

		require.ErrorIs(t, s.Join(context.Background(), testRoom, testSelf, false), ErrInvalidState)
		require.Zero(t, sfu.channel.sentCount(types.EventJoinRoom))
	})

	t.Run("closing the share leaves the room", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig().ScreenShareConfig(), false)

		s.Close()
		require.True(t, sfu.engine.SendTransports()[0].IsClosed())
		for _, p := range sfu.engine.Producers() {
			require.True(t, p.IsClosed())
		}
	})
}

func TestRemoteProducers(t *testing.T) {
	t.Run("new producer is consumed once", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), false)

		sfu.announceProducer("bob", "bob-video", types.MediaKindVideo)
		sfu.announceProducer("bob", "bob-video", types.MediaKindVideo)
		syncSession(t, s)

		require.Equal(t, 1, sfu.channel.sentCount(types.EventConsume))
		bob := participantByID(t, s, "bob")
		require.NotEmpty(t, bob.VideoConsumerID)
		require.True(t, consumerOfPeer(t, sfu, s, "bob", types.MediaKindVideo).FakeTrack().Enabled())
	})

	t.Run("own producers are ignored", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), false)

		sfu.announceProducer(testSelf+"share", "share-video", types.MediaKindVideo)
		sfu.announceProducer(testSelf, "own-audio", types.MediaKindAudio)
		syncSession(t, s)

		require.Zero(t, sfu.channel.sentCount(types.EventConsume))
		require.Len(t, s.Participants(), 1)
	})

	t.Run("pause mirroring", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.addPeer("P", true)
		sfu.addProducer("P", "p-audio", types.MediaKindAudio)
		s := joinTestSession(t, sfu, testSessionConfig(), false)
		audioConsumerID := participantByID(t, s, "P").AudioConsumerID
		require.NotEmpty(t, audioConsumerID)

		sfu.channel.push(types.EventProducerPaused, types.ProducerStateEvent{PeerID: "P", Kind: types.MediaKindAudio})
		syncSession(t, s)

		paused := decodeSent[types.ConsumerRequest](t, sfu.channel.sentEvents(types.EventPauseConsumer))
		require.Equal(t, []types.ConsumerRequest{{ConsumerID: audioConsumerID}}, paused)
		require.True(t, participantByID(t, s, "P").Muted)
		consumer := consumerOfPeer(t, sfu, s, "P", types.MediaKindAudio)
		require.True(t, consumer.IsPaused())
		require.False(t, consumer.FakeTrack().Enabled())

		sfu.channel.push(types.EventProducerResumed, types.ProducerStateEvent{PeerID: "P", Kind: types.MediaKindAudio})
		syncSession(t, s)

		resumed := decodeSent[types.ConsumerRequest](t, sfu.channel.sentEvents(types.EventResumeConsumer))
		require.Equal(t, []types.ConsumerRequest{{ConsumerID: audioConsumerID}}, resumed)
		require.Len(t, sfu.channel.sentEvents(types.EventPauseConsumer), 1)
		require.False(t, participantByID(t, s, "P").Muted)
		require.True(t, consumer.FakeTrack().Enabled())
	})

	t.Run("pause for unknown peer is ignored", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), false)

		sfu.channel.push(types.EventProducerPaused, types.ProducerStateEvent{PeerID: "nobody", Kind: types.MediaKindVideo})
		syncSession(t, s)
		require.Zero(t, sfu.channel.sentCount(types.EventPauseConsumer))
	})

	t.Run("peer disconnect releases consumers", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.addPeer("alice", true)
		sfu.addProducer("alice", "alice-video", types.MediaKindVideo)
		sfu.addProducer("alice", "alice-audio", types.MediaKindAudio)
		s := joinTestSession(t, sfu, testSessionConfig(), false)
		consumers := sfu.engine.Consumers()
		require.Len(t, consumers, 2)

		sfu.channel.push(types.EventPeerDisconnected, types.PeerDisconnectedEvent{PeerID: "alice"})
		syncSession(t, s)

		require.Len(t, s.Participants(), 1)
		for _, c := range consumers {
			require.Equal(t, 1, c.CloseCallCount())
			require.False(t, c.FakeTrack().Enabled())
		}

		// duplicate notification
		sfu.channel.push(types.EventPeerDisconnected, types.PeerDisconnectedEvent{PeerID: "alice"})
		syncSession(t, s)
		for _, c := range consumers {
			require.Equal(t, 1, c.CloseCallCount())
		}
	})
}

func TestRemoteAudioPolicy(t *testing.T) {
	setup := func(t *testing.T, policy RemoteAudioPolicy) (*fakeSFU, *Session) {
		sfu := newFakeSFU()
		sfu.addPeer("alice", true)
		sfu.addProducer("alice", "alice-audio", types.MediaKindAudio)
		conf := testSessionConfig()
		conf.AudioPolicy = policy
		return sfu, joinTestSession(t, sfu, conf, false)
	}

	t.Run("follow speaker", func(t *testing.T) {
		sfu, s := setup(t, RemoteAudioFollowSpeaker)
		track := consumerOfPeer(t, sfu, s, "alice", types.MediaKindAudio).FakeTrack()
		require.True(t, track.Enabled())

		require.NoError(t, s.SetSpeakerEnabled(false))
		require.False(t, s.SpeakerEnabled())
		require.False(t, track.Enabled())

		require.NoError(t, s.SetSpeakerEnabled(true))
		require.True(t, track.Enabled())
	})

	t.Run("start muted", func(t *testing.T) {
		sfu, s := setup(t, RemoteAudioStartMuted)
		track := consumerOfPeer(t, sfu, s, "alice", types.MediaKindAudio).FakeTrack()
		require.False(t, track.Enabled())

		sfu.channel.push(types.EventProducerResumed, types.ProducerStateEvent{PeerID: "alice", Kind: types.MediaKindAudio})
		syncSession(t, s)
		require.True(t, track.Enabled())
	})

	t.Run("speaker off before consume", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), false)
		require.NoError(t, s.SetSpeakerEnabled(false))

		sfu.announceProducer("bob", "bob-audio", types.MediaKindAudio)
		syncSession(t, s)
		require.False(t, consumerOfPeer(t, sfu, s, "bob", types.MediaKindAudio).FakeTrack().Enabled())
	})
}

func TestLocalMedia(t *testing.T) {
	sfu := newFakeSFU()
	s := joinTestSession(t, sfu, testSessionConfig(), false)
	audio := producerOfKind(sfu.engine.Producers(), types.MediaKindAudio)[0]
	video := producerOfKind(sfu.engine.Producers(), types.MediaKindVideo)[0]

	require.NoError(t, s.SetMicEnabled(false))
	pauses := decodeSent[types.ProducerRequest](t, sfu.channel.sentEvents(types.EventPauseProducer))
	require.Equal(t, []types.ProducerRequest{{ProducerID: audio.ID()}}, pauses)
	require.True(t, audio.IsPaused())
	require.False(t, audio.Track().Enabled())
	require.True(t, participantByID(t, s, testSelf).Muted)

	require.NoError(t, s.SetCameraEnabled(false))
	require.True(t, video.IsPaused())
	require.True(t, participantByID(t, s, testSelf).VideoPaused)

	require.NoError(t, s.SetMicEnabled(true))
	resumes := decodeSent[types.ProducerRequest](t, sfu.channel.sentEvents(types.EventResumeProducer))
	require.Equal(t, []types.ProducerRequest{{ProducerID: audio.ID()}}, resumes)
	require.False(t, audio.IsPaused())
	require.False(t, participantByID(t, s, testSelf).Muted)

	require.NoError(t, s.SwitchCamera())
	require.Equal(t, 1, sfu.engine.SwitchCameraCallCount())
}

func TestChat(t *testing.T) {
	sfu := newFakeSFU()
	sfu.addPeer("alice", true)
	s := joinTestSession(t, sfu, testSessionConfig(), false)

	require.NoError(t, s.SendMessage("hello"))
	sent := decodeSent[types.ChatMessageRequest](t, sfu.channel.sentEvents(types.EventMessage))
	require.Equal(t, []types.ChatMessageRequest{{Text: "hello"}}, sent)

	sfu.channel.push(types.EventReceiveMessage, types.ReceiveMessageEvent{PeerID: "alice", Text: "hi"})
	sfu.channel.push(types.EventReceiveMessage, types.ReceiveMessageEvent{PeerID: "stranger", Text: "hey"})
	syncSession(t, s)

	require.Equal(t, []types.ChatMessage{
		{SenderID: testSelf, SenderName: "You", Text: "hello", IsLocal: true},
		{SenderID: "alice", SenderName: "alice", Text: "hi"},
		{SenderID: "stranger", SenderName: "Unknown", Text: "hey"},
	}, s.Messages())
}

func TestAdmission(t *testing.T) {
	t.Run("requests are served in arrival order", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), true)

		for _, id := range []string{"A", "B", "C"} {
			sfu.channel.push(types.EventAskToJoin, types.AskToJoinEvent{RequesterPeerID: id, RequesterSocketID: "sock-" + id})
		}
		syncSession(t, s)
		require.Len(t, s.PendingRequests(), 3)

		for _, id := range []string{"A", "B", "C"} {
			req, ok := s.DequeueRequest()
			require.True(t, ok)
			require.Equal(t, types.PendingJoinRequest{PeerID: id, CorrelationID: "sock-" + id}, req)
		}
		_, ok := s.DequeueRequest()
		require.False(t, ok)

		require.NoError(t, s.ApproveRequest(true, "sock-B"))
		require.NoError(t, s.ApproveRequest(false, "sock-A"))
		require.ErrorIs(t, s.ApproveRequest(true, "sock-B"), ErrAlreadyAnswered)
		require.ErrorIs(t, s.ApproveRequest(true, "sock-Z"), ErrUnknownRequest)

		responses := decodeSent[types.AskToJoinResponse](t, sfu.channel.sentEvents(types.EventAskToJoinResponse))
		require.Equal(t, []types.AskToJoinResponse{
			{Approved: true, To: "sock-B"},
			{Approved: false, To: "sock-A"},
		}, responses)
	})

	t.Run("participants do not receive requests", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), false)

		sfu.channel.push(types.EventAskToJoin, types.AskToJoinEvent{RequesterPeerID: "A", RequesterSocketID: "sock-A"})
		syncSession(t, s)
		require.Empty(t, s.PendingRequests())
		require.ErrorIs(t, s.ApproveRequest(true, "sock-A"), ErrInvalidState)
	})
}

func TestQualityAdaptation(t *testing.T) {
	sfu := newFakeSFU()
	sfu.addPeer("alice", true)
	sfu.addProducer("alice", "alice-video", types.MediaKindVideo)
	s := joinTestSession(t, sfu, testSessionConfig(), false)
	videoConsumerID := participantByID(t, s, "alice").VideoConsumerID

	var tiers []types.QualityTier
	for _, kbps := range []int{100, 600, 3000, 400} {
		s.OnBandwidthSample(kbps)
		syncSession(t, s)
		tiers = append(tiers, s.NetworkTier())
	}
	require.Equal(t, []types.QualityTier{types.QualityLow, types.QualityMedium, types.QualityHigh, types.QualityLow}, tiers)

	directives := decodeSent[types.SetConsumerQualityRequest](t, sfu.channel.sentEvents(types.EventSetConsumerQuality))
	require.Equal(t, []types.SetConsumerQualityRequest{
		{ConsumerID: videoConsumerID, SpatialLayer: 1},
		{ConsumerID: videoConsumerID, SpatialLayer: 2},
		{ConsumerID: videoConsumerID, SpatialLayer: 0},
	}, directives)

	sfu.channel.push(types.EventQualityChangeSuccess, types.QualityChangeEvent{ConsumerID: videoConsumerID})
	syncSession(t, s)
	require.Equal(t, []string{videoConsumerID}, sfu.engine.KeyFrameRequests())

	// acknowledged, the same tier is not requested again
	s.OnBandwidthSample(200)
	syncSession(t, s)
	require.Equal(t, 3, sfu.channel.sentCount(types.EventSetConsumerQuality))

	// consumers created later follow the current tier
	sfu.announceProducer("bob", "bob-video", types.MediaKindVideo)
	syncSession(t, s)
	require.Equal(t, 4, sfu.channel.sentCount(types.EventSetConsumerQuality))
}

func TestReconnection(t *testing.T) {
	sfu := newFakeSFU()
	sfu.engine.SetCanProduce(types.MediaKindAudio, false)
	sfu.addPeer("alice", true)
	sfu.addPeer("carol", true)
	sfu.addProducer("alice", "alice-video", types.MediaKindVideo)
	s := joinTestSession(t, sfu, testSessionConfig(), false)

	oldSend := sfu.engine.SendTransports()[0]
	oldRecv := sfu.engine.RecvTransports()[0]
	oldVideo := producerOfKind(sfu.engine.Producers(), types.MediaKindVideo)
	require.Len(t, oldVideo, 1)
	oldConsumer := sfu.engine.Consumers()[0]
	require.Equal(t, []string{testSelf, "alice", "carol"}, peerIDs(s.Participants()))

	sfu.removePeer("carol")
	sfu.channel.drop(errors.New("network lost"))

	require.Eventually(t, func() bool {
		return oldSend.IsClosed() && oldRecv.IsClosed()
	}, time.Second, 10*time.Millisecond)
	require.True(t, s.IsRecovering())

	sfu.channel.restore()
	require.Eventually(t, func() bool {
		return len(sfu.engine.SendTransports()) == 2 && s.State() == types.SessionStateActive && !s.IsRecovering()
	}, 2*time.Second, 10*time.Millisecond)

	require.Equal(t, 1, oldSend.CloseCount())
	require.Equal(t, 1, oldRecv.CloseCount())
	require.Equal(t, 1, oldVideo[0].CloseCallCount())
	require.Equal(t, 1, oldVideo[0].Track().(*typesfakes.FakeLocalTrack).DisposeCallCount())
	require.Equal(t, 1, oldConsumer.CloseCallCount())

	sends := sfu.engine.SendTransports()
	require.Len(t, sends, 2)
	newVideo := producerOfKind(sends[1].Producers(), types.MediaKindVideo)
	require.Len(t, newVideo, 1)
	require.Len(t, producerOfKind(sfu.engine.Producers(), types.MediaKindVideo), 2)
	require.Len(t, sfu.engine.RecvTransports(), 2)

	require.Equal(t, []string{testSelf, "alice"}, peerIDs(s.Participants()))
	require.NotEmpty(t, participantByID(t, s, "alice").VideoConsumerID)
	require.Equal(t, 2, sfu.channel.sentCount(types.EventJoinRoom))
	require.Zero(t, sfu.channel.sentCount(types.EventDisconnectPeer))
}

func TestRecoveryGivesUp(t *testing.T) {
	t.Run("deadline", func(t *testing.T) {
		sfu := newFakeSFU()
		conf := testSessionConfig()
		conf.RecoveryDeadline = 100 * time.Millisecond
		s := joinTestSession(t, sfu, conf, false)

		sfu.channel.drop(errors.New("network lost"))
		select {
		case <-s.Done():
		case <-time.After(2 * time.Second):
			require.FailNow(t, "session not closed")
		}
		require.Equal(t, types.SessionStateClosed, s.State())
		require.ErrorIs(t, s.CloseReason(), ErrRecoveryDeadline)
		require.True(t, sfu.channel.isClosed())
	})

	t.Run("rejected rejoin", func(t *testing.T) {
		sfu := newFakeSFU()
		s := joinTestSession(t, sfu, testSessionConfig(), false)

		sfu.channel.drop(errors.New("network lost"))
		sfu.setApprove(false)
		sfu.channel.restore()
		select {
		case <-s.Done():
		case <-time.After(2 * time.Second):
			require.FailNow(t, "session not closed")
		}
		require.ErrorIs(t, s.CloseReason(), ErrNotApproved)
	})
}

func TestClose(t *testing.T) {
	sfu := newFakeSFU()
	sfu.addPeer("alice", true)
	sfu.addProducer("alice", "alice-audio", types.MediaKindAudio)
	s := joinTestSession(t, sfu, testSessionConfig(), false)

	changes := atomic.NewInt32(0)
	s.OnChange(func() { changes.Inc() })

	s.Close()
	s.Close()

	require.Equal(t, types.SessionStateClosed, s.State())
	require.NoError(t, s.CloseReason())
	require.Equal(t, 1, sfu.channel.sentCount(types.EventDisconnectPeer))
	require.True(t, sfu.channel.isClosed())
	for _, transport := range append(sfu.engine.SendTransports(), sfu.engine.RecvTransports()...) {
		require.Equal(t, 1, transport.CloseCount())
	}
	for _, p := range sfu.engine.Producers() {
		require.Equal(t, 1, p.CloseCallCount())
		require.Equal(t, 1, p.Track().(*typesfakes.FakeLocalTrack).DisposeCallCount())
	}
	for _, c := range sfu.engine.Consumers() {
		require.Equal(t, 1, c.CloseCallCount())
	}
	require.Greater(t, changes.Load(), int32(0))

	require.ErrorIs(t, s.SetMicEnabled(false), ErrSessionClosed)
	require.ErrorIs(t, s.SendMessage("late"), ErrSessionClosed)
}

func peerIDs(participants []types.Participant) []string {
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.PeerID)
	}
	return ids
}
