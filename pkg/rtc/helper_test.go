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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/frostbyte73/core"
	"github.com/stretchr/testify/require"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/signalling/signallingfakes"
	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/testutils"
)

const testRouterCaps = `{"codecs":[{"kind":"audio","mimeType":"audio/opus","clockRate":48000,"channels":2},{"kind":"video","mimeType":"video/VP8","clockRate":90000}]}`

// responder scripts the acknowledgement of a call. Returning an error fails the call with it.
type responder func(payload json.RawMessage) (interface{}, error)

type sentEvent struct {
	event   string
	payload json.RawMessage
	isCall  bool
}

// testChannel backs a FakeChannel with a dispatcher: pushed events and disconnects are
// injected by the test, outgoing events are recorded.
type testChannel struct {
	*signallingfakes.FakeChannel
	dispatcher *signalling.Dispatcher

	lock       sync.Mutex
	connected  bool
	connectCh  chan struct{}
	sent       []sentEvent
	responders map[string]responder
	emitHooks  map[string]func(payload json.RawMessage)

	closed core.Fuse
}

func newTestChannel() *testChannel {
	c := &testChannel{
		FakeChannel: &signallingfakes.FakeChannel{},
		dispatcher:  signalling.NewDispatcher(),
		connectCh:   make(chan struct{}),
		responders:  make(map[string]responder),
		emitHooks:   make(map[string]func(payload json.RawMessage)),
	}
	c.ConnectCalls(c.connect)
	c.EmitCalls(c.emit)
	c.CallCalls(c.call)
	c.ExpectCalls(c.dispatcher.Expect)
	c.OnceCalls(c.dispatcher.Once)
	c.OnCalls(c.dispatcher.On)
	c.OnDisconnectCalls(c.dispatcher.OnDisconnect)
	c.OnConnectErrorCalls(c.dispatcher.OnConnectError)
	c.OnReconnectCalls(c.dispatcher.OnReconnect)
	c.IsConnectedCalls(c.isConnected)
	c.WaitConnectedCalls(c.waitConnected)
	c.CloseCalls(c.close)
	return c
}

// respond sets the ack returned for calls of event
func (c *testChannel) respond(event string, r responder) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.responders[event] = r
}

// onSend runs hook synchronously whenever event is emitted, for example to push a reply
func (c *testChannel) onSend(event string, hook func(payload json.RawMessage)) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.emitHooks[event] = hook
}

func (c *testChannel) connect(_ context.Context) error {
	if c.closed.IsBroken() {
		return signalling.ErrChannelClosed
	}
	c.setConnected(true)
	return nil
}

func (c *testChannel) emit(event string, payload interface{}) error {
	raw, err := c.record(event, payload, false)
	if err != nil {
		return err
	}

	c.lock.Lock()
	hook := c.emitHooks[event]
	c.lock.Unlock()
	if hook != nil {
		hook(raw)
	}
	return nil
}

func (c *testChannel) call(_ context.Context, event string, payload interface{}, response interface{}) error {
	raw, err := c.record(event, payload, true)
	if err != nil {
		return err
	}

	c.lock.Lock()
	r := c.responders[event]
	c.lock.Unlock()
	if r == nil {
		return nil
	}

	res, err := r(raw)
	if err != nil {
		return err
	}
	if response == nil || res == nil {
		return nil
	}
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, response)
}

func (c *testChannel) record(event string, payload interface{}, isCall bool) (json.RawMessage, error) {
	if c.closed.IsBroken() {
		return nil, signalling.ErrChannelClosed
	}
	if !c.isConnected() {
		return nil, signalling.ErrNotConnected
	}

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		raw = data
	}

	c.lock.Lock()
	c.sent = append(c.sent, sentEvent{event: event, payload: raw, isCall: isCall})
	c.lock.Unlock()
	return raw, nil
}

// push delivers a server event as if it was read off the wire
func (c *testChannel) push(event string, payload interface{}) {
	var raw json.RawMessage
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	c.dispatcher.Dispatch(event, raw)
}

// drop simulates a lost connection
func (c *testChannel) drop(err error) {
	c.setConnected(false)
	c.dispatcher.NotifyDisconnect(err)
}

// restore simulates a successful automatic reconnection
func (c *testChannel) restore() {
	c.setConnected(true)
	c.dispatcher.NotifyReconnect()
}

func (c *testChannel) isConnected() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.connected
}

func (c *testChannel) waitConnected(ctx context.Context) error {
	for {
		c.lock.Lock()
		connected, ch := c.connected, c.connectCh
		c.lock.Unlock()
		if connected {
			return nil
		}

		select {
		case <-ch:
		case <-c.closed.Watch():
			return signalling.ErrChannelClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *testChannel) close() {
	c.closed.Break()
	c.setConnected(false)
	c.dispatcher.Close()
}

func (c *testChannel) isClosed() bool {
	return c.closed.IsBroken()
}

func (c *testChannel) sentAll() []sentEvent {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]sentEvent(nil), c.sent...)
}

// sentEvents returns the payloads sent for event, in order
func (c *testChannel) sentEvents(event string) []json.RawMessage {
	c.lock.Lock()
	defer c.lock.Unlock()

	var payloads []json.RawMessage
	for _, s := range c.sent {
		if s.event == event {
			payloads = append(payloads, s.payload)
		}
	}
	return payloads
}

func (c *testChannel) sentCount(event string) int {
	return len(c.sentEvents(event))
}

func (c *testChannel) setConnected(connected bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.connected == connected {
		return
	}
	c.connected = connected
	if connected {
		close(c.connectCh)
	} else {
		c.connectCh = make(chan struct{})
	}
}

// fakeSFU scripts the server side of the signalling protocol on a testChannel
type fakeSFU struct {
	channel *testChannel
	engine  *testutils.MediaEngine

	lock            sync.Mutex
	approve         bool
	peers           map[string]bool
	producers       []types.ProducerInfo
	remoteProducers map[string]types.ProducerInfo
	nextID          int
}

func newFakeSFU() *fakeSFU {
	sfu := &fakeSFU{
		channel:         newTestChannel(),
		engine:          testutils.NewMediaEngine(),
		approve:         true,
		peers:           make(map[string]bool),
		remoteProducers: make(map[string]types.ProducerInfo),
	}

	sfu.channel.onSend(types.EventJoinRoom, func(json.RawMessage) {
		sfu.lock.Lock()
		approved := sfu.approve
		snapshot := types.RoomSnapshot{
			RouterRTPCapabilities: json.RawMessage(testRouterCaps),
			Producers:             append([]types.ProducerInfo(nil), sfu.producers...),
			Peers:                 make(map[string]bool, len(sfu.peers)),
		}
		for peerID, present := range sfu.peers {
			snapshot.Peers[peerID] = present
		}
		sfu.lock.Unlock()

		sfu.channel.push(types.EventJoinApproved, types.JoinApproved{Approved: approved})
		if approved {
			sfu.channel.push(types.EventRoomJoined, snapshot)
		}
	})
	transportParams := func(prefix string) responder {
		return func(json.RawMessage) (interface{}, error) {
			return types.TransportParameters{
				ID:             sfu.newID(prefix),
				ICEParameters:  json.RawMessage(`{"usernameFragment":"frag","password":"pass"}`),
				ICECandidates:  json.RawMessage(`[]`),
				DTLSParameters: json.RawMessage(`{"role":"auto","fingerprints":[]}`),
			}, nil
		}
	}
	sfu.channel.respond(types.EventCreateSendTransport, transportParams("send"))
	sfu.channel.respond(types.EventCreateRecvTransport, transportParams("recv"))
	sfu.channel.respond(types.EventProduce, func(payload json.RawMessage) (interface{}, error) {
		var req types.ProduceRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		return types.ProduceResponse{ID: sfu.newID("producer-" + string(req.Kind))}, nil
	})
	sfu.channel.respond(types.EventConsume, func(payload json.RawMessage) (interface{}, error) {
		var req types.ConsumeRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, err
		}
		sfu.lock.Lock()
		info, ok := sfu.remoteProducers[req.ProducerID]
		sfu.lock.Unlock()
		if !ok {
			return nil, fmt.Errorf("unknown producer %s", req.ProducerID)
		}
		return types.ConsumeResponse{
			PeerID:        info.PeerID,
			ID:            sfu.newID("consumer-" + req.ProducerID),
			ProducerID:    req.ProducerID,
			Kind:          info.Kind,
			RTPParameters: json.RawMessage(`{"codecs":[]}`),
		}, nil
	})
	return sfu
}

func (f *fakeSFU) newID(prefix string) string {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeSFU) setApprove(approve bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.approve = approve
}

func (f *fakeSFU) addPeer(peerID string, present bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.peers[peerID] = present
}

func (f *fakeSFU) removePeer(peerID string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	delete(f.peers, peerID)
	var producers []types.ProducerInfo
	for _, p := range f.producers {
		if p.PeerID != peerID {
			producers = append(producers, p)
		}
	}
	f.producers = producers
}

// addProducer registers a remote producer, listed in the next snapshot
func (f *fakeSFU) addProducer(peerID string, producerID string, kind types.MediaKind) {
	f.lock.Lock()
	defer f.lock.Unlock()
	info := types.ProducerInfo{ProducerID: producerID, PeerID: peerID, Kind: kind}
	f.producers = append(f.producers, info)
	f.remoteProducers[producerID] = info
}

// announceProducer registers a remote producer and pushes new-producer for it
func (f *fakeSFU) announceProducer(peerID string, producerID string, kind types.MediaKind) {
	f.lock.Lock()
	f.remoteProducers[producerID] = types.ProducerInfo{ProducerID: producerID, PeerID: peerID, Kind: kind}
	f.lock.Unlock()
	f.channel.push(types.EventNewProducer, types.NewProducerEvent{PeerID: peerID, ProducerID: producerID})
}

func testSessionConfig() SessionConfig {
	conf := DefaultSessionConfig()
	conf.UpdateDebounce = 0
	conf.RecoveryDeadline = 2 * time.Second
	conf.RecoveryRetryInterval = 20 * time.Millisecond
	return conf
}

func newTestSession(t *testing.T, sfu *fakeSFU, conf SessionConfig) *Session {
	s := NewSession(SessionParams{
		Config:  conf,
		Channel: sfu.channel,
		Engine:  sfu.engine.FakeMediaEngine,
		Logger:  logger.GetLogger(),
	})
	t.Cleanup(s.Close)
	return s
}

func decodeSent[T any](t *testing.T, payloads []json.RawMessage) []T {
	out := make([]T, 0, len(payloads))
	for _, p := range payloads {
		var v T
		require.NoError(t, json.Unmarshal(p, &v))
		out = append(out, v)
	}
	return out
}

// sync waits for every op queued so far on the session to run
func syncSession(t *testing.T, s *Session) {
	require.NoError(t, s.run(func() error { return nil }))
}
