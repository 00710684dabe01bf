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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

func newTestTransportManager(t *testing.T, sfu *fakeSFU, useDataChannel bool) *TransportManager {
	require.NoError(t, sfu.channel.Connect(context.Background()))
	require.NoError(t, sfu.engine.Load(json.RawMessage(testRouterCaps)))

	tm := NewTransportManager(TransportManagerParams{
		Channel:        sfu.channel,
		Engine:         sfu.engine.FakeMediaEngine,
		UseDataChannel: useDataChannel,
		Logger:         logger.GetLogger(),
	})
	t.Cleanup(tm.Stop)
	return tm
}

func TestTransportManager(t *testing.T) {
	t.Run("creates one transport per direction", func(t *testing.T) {
		sfu := newFakeSFU()
		tm := newTestTransportManager(t, sfu, true)

		send, err := tm.CreateTransport(context.Background(), types.DirectionSend)
		require.NoError(t, err)
		require.Equal(t, types.DirectionSend, send.Direction())
		_, err = tm.CreateTransport(context.Background(), types.DirectionSend)
		require.ErrorIs(t, err, ErrTransportExists)

		recv, err := tm.CreateTransport(context.Background(), types.DirectionRecv)
		require.NoError(t, err)
		require.NotEqual(t, send.ID(), recv.ID())

		got, ok := tm.SendTransport()
		require.True(t, ok)
		require.Equal(t, send.ID(), got.ID())

		reqs := decodeSent[types.CreateTransportRequest](t, sfu.channel.sentEvents(types.EventCreateRecvTransport))
		require.Len(t, reqs, 1)
		require.JSONEq(t, string(sfu.engine.SCTPCapabilities()), string(reqs[0].SCTPCapabilities))
	})

	t.Run("without data channel no sctp capabilities are sent", func(t *testing.T) {
		sfu := newFakeSFU()
		tm := newTestTransportManager(t, sfu, false)

		_, err := tm.CreateTransport(context.Background(), types.DirectionSend)
		require.NoError(t, err)
		reqs := decodeSent[types.CreateTransportRequest](t, sfu.channel.sentEvents(types.EventCreateSendTransport))
		require.Empty(t, reqs[0].SCTPCapabilities)
	})

	t.Run("incomplete parameters are rejected", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.channel.respond(types.EventCreateSendTransport, func(json.RawMessage) (interface{}, error) {
			return types.TransportParameters{ID: "send"}, nil
		})
		tm := newTestTransportManager(t, sfu, true)

		_, err := tm.CreateTransport(context.Background(), types.DirectionSend)
		require.ErrorIs(t, err, signalling.ErrMalformedResponse)
		require.Empty(t, sfu.engine.SendTransports())
	})

	t.Run("null parameters are rejected", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.channel.respond(types.EventCreateSendTransport, func(json.RawMessage) (interface{}, error) {
			return json.RawMessage(`{"id":"send","iceParameters":null,"iceCandidates":[],"dtlsParameters":null}`), nil
		})
		tm := newTestTransportManager(t, sfu, true)

		_, err := tm.CreateTransport(context.Background(), types.DirectionSend)
		require.ErrorIs(t, err, signalling.ErrMalformedResponse)
		require.Empty(t, sfu.engine.SendTransports())
		require.Zero(t, sfu.engine.CreateSendTransportCallCount())
	})

	t.Run("server errors propagate", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.channel.respond(types.EventCreateRecvTransport, func(json.RawMessage) (interface{}, error) {
			return nil, signalling.ErrRequestTimeout
		})
		tm := newTestTransportManager(t, sfu, true)

		_, err := tm.CreateTransport(context.Background(), types.DirectionRecv)
		require.ErrorIs(t, err, signalling.ErrRequestTimeout)
	})

	t.Run("connect fires once per transport", func(t *testing.T) {
		sfu := newFakeSFU()
		tm := newTestTransportManager(t, sfu, true)
		_, err := tm.CreateTransport(context.Background(), types.DirectionRecv)
		require.NoError(t, err)
		recv, _ := tm.RecvTransport()

		sfu.addProducer("alice", "a1", types.MediaKindAudio)
		sfu.addProducer("alice", "a2", types.MediaKindVideo)
		_, err = recv.Consume(nil, types.ConsumerOptions{ID: "c1", ProducerID: "a1", Kind: types.MediaKindAudio})
		require.NoError(t, err)
		_, err = recv.Consume(nil, types.ConsumerOptions{ID: "c2", ProducerID: "a2", Kind: types.MediaKindVideo})
		require.NoError(t, err)

		require.Equal(t, 1, sfu.channel.sentCount(types.EventConnectRecvTransport))
		reqs := decodeSent[types.ConnectTransportRequest](t, sfu.channel.sentEvents(types.EventConnectRecvTransport))
		require.NotEmpty(t, reqs[0].DTLSParameters)
	})

	t.Run("produce needs a server id", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.channel.respond(types.EventProduce, func(json.RawMessage) (interface{}, error) {
			return types.ProduceResponse{}, nil
		})
		tm := newTestTransportManager(t, sfu, true)
		_, err := tm.CreateTransport(context.Background(), types.DirectionSend)
		require.NoError(t, err)
		send, _ := tm.SendTransport()

		track, err := sfu.engine.CreateTrack(types.MediaKindAudio)
		require.NoError(t, err)
		_, err = send.Produce(nil, track, nil)
		require.ErrorIs(t, err, signalling.ErrMalformedResponse)
	})

	t.Run("close is local and idempotent", func(t *testing.T) {
		sfu := newFakeSFU()
		tm := newTestTransportManager(t, sfu, true)
		_, err := tm.CreateTransport(context.Background(), types.DirectionSend)
		require.NoError(t, err)
		sent := len(sfu.channel.sentAll())

		tm.Close(types.DirectionSend)
		tm.Close(types.DirectionSend)
		tm.CloseAll()

		require.Equal(t, 1, sfu.engine.SendTransports()[0].CloseCount())
		require.Len(t, sfu.channel.sentAll(), sent)
		_, ok := tm.SendTransport()
		require.False(t, ok)

		// a closed transport can be replaced
		_, err = tm.CreateTransport(context.Background(), types.DirectionSend)
		require.NoError(t, err)
	})

	t.Run("engine failure propagates", func(t *testing.T) {
		sfu := newFakeSFU()
		sfu.engine.CreateSendTransportReturns(nil, errors.New("boom"))
		tm := newTestTransportManager(t, sfu, true)

		_, err := tm.CreateTransport(context.Background(), types.DirectionSend)
		require.Error(t, err)
		_, ok := tm.SendTransport()
		require.False(t, ok)
	})
}
