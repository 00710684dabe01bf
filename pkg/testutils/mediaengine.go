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

package testutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/rtc/types/typesfakes"
)

var (
	ErrNotLoaded       = errors.New("media engine not loaded")
	ErrTransportClosed = errors.New("transport closed")
)

const testDTLSParameters = `{"role":"client","fingerprints":[{"algorithm":"sha-256","value":"AA:BB"}]}`

// MediaEngine drives a FakeMediaEngine like a device would: transports connect on first use,
// produce through their listener and cascade their close to producers and consumers.
// Hand MediaEngine.FakeMediaEngine to the code under test.
type MediaEngine struct {
	*typesfakes.FakeMediaEngine

	lock           sync.Mutex
	cannotProduce  map[types.MediaKind]bool
	loaded         bool
	capabilities   json.RawMessage
	sendTransports []*Transport
	recvTransports []*Transport
	tracks         []*typesfakes.FakeLocalTrack
	nextID         int
}

func NewMediaEngine() *MediaEngine {
	e := &MediaEngine{
		FakeMediaEngine: &typesfakes.FakeMediaEngine{},
		cannotProduce:   make(map[types.MediaKind]bool),
	}
	e.LoadCalls(e.load)
	e.IsLoadedCalls(e.isLoaded)
	e.CanProduceCalls(e.canProduce)
	e.RTPCapabilitiesCalls(e.rtpCapabilities)
	e.SCTPCapabilitiesReturns(json.RawMessage(`{"numStreams":{"OS":1024,"MIS":1024}}`))
	e.CreateSendTransportCalls(e.createSendTransport)
	e.CreateRecvTransportCalls(e.createRecvTransport)
	e.CreateTrackCalls(e.createTrack)
	e.CloseCalls(e.close)
	return e
}

// SetCanProduce restricts what the device may produce once loaded
func (e *MediaEngine) SetCanProduce(kind types.MediaKind, can bool) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.cannotProduce[kind] = !can
}

func (e *MediaEngine) load(caps json.RawMessage) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.loaded = true
	e.capabilities = caps
	return nil
}

func (e *MediaEngine) isLoaded() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.loaded
}

func (e *MediaEngine) canProduce(kind types.MediaKind) bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.loaded && !e.cannotProduce[kind]
}

func (e *MediaEngine) rtpCapabilities() json.RawMessage {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.capabilities
}

func (e *MediaEngine) createSendTransport(listener types.SendTransportListener, options types.TransportOptions) (types.SendTransport, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.loaded {
		return nil, ErrNotLoaded
	}

	t := newTransport(e, types.DirectionSend, options, listener)
	t.sendListener = listener
	t.Send = &typesfakes.FakeSendTransport{}
	t.Send.IDReturns(options.ID)
	t.Send.DirectionReturns(types.DirectionSend)
	t.Send.IsClosedCalls(t.IsClosed)
	t.Send.CloseCalls(t.close)
	t.Send.ProduceCalls(t.produce)
	e.sendTransports = append(e.sendTransports, t)
	return t.Send, nil
}

func (e *MediaEngine) createRecvTransport(listener types.TransportListener, options types.TransportOptions) (types.RecvTransport, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.loaded {
		return nil, ErrNotLoaded
	}

	t := newTransport(e, types.DirectionRecv, options, listener)
	t.Recv = &typesfakes.FakeRecvTransport{}
	t.Recv.IDReturns(options.ID)
	t.Recv.DirectionReturns(types.DirectionRecv)
	t.Recv.IsClosedCalls(t.IsClosed)
	t.Recv.CloseCalls(t.close)
	t.Recv.ConsumeCalls(t.consume)
	e.recvTransports = append(e.recvTransports, t)
	return t.Recv, nil
}

func (e *MediaEngine) createTrack(kind types.MediaKind) (types.LocalTrack, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.nextID++
	track := NewTrack(fmt.Sprintf("%s-track-%d", kind, e.nextID), kind)
	e.tracks = append(e.tracks, track)
	return track, nil
}

func (e *MediaEngine) close() {
	for _, t := range append(e.SendTransports(), e.RecvTransports()...) {
		t.Fake().Close()
	}
}

func (e *MediaEngine) SendTransports() []*Transport {
	e.lock.Lock()
	defer e.lock.Unlock()
	return append([]*Transport{}, e.sendTransports...)
}

func (e *MediaEngine) RecvTransports() []*Transport {
	e.lock.Lock()
	defer e.lock.Unlock()
	return append([]*Transport{}, e.recvTransports...)
}

func (e *MediaEngine) Tracks() []*typesfakes.FakeLocalTrack {
	e.lock.Lock()
	defer e.lock.Unlock()
	return append([]*typesfakes.FakeLocalTrack{}, e.tracks...)
}

// Producers returns every producer created on any send transport, in creation order
func (e *MediaEngine) Producers() []*Producer {
	var producers []*Producer
	for _, t := range e.SendTransports() {
		producers = append(producers, t.Producers()...)
	}
	return producers
}

// Consumers returns every consumer created on any recv transport, in creation order
func (e *MediaEngine) Consumers() []*Consumer {
	var consumers []*Consumer
	for _, t := range e.RecvTransports() {
		consumers = append(consumers, t.Consumers()...)
	}
	return consumers
}

func (e *MediaEngine) KeyFrameRequests() []string {
	requests := make([]string, 0, e.RequestKeyFrameCallCount())
	for i := 0; i < e.RequestKeyFrameCallCount(); i++ {
		requests = append(requests, e.RequestKeyFrameArgsForCall(i))
	}
	return requests
}

// Transport backs one FakeSendTransport or FakeRecvTransport
type Transport struct {
	Send *typesfakes.FakeSendTransport
	Recv *typesfakes.FakeRecvTransport

	engine       *MediaEngine
	direction    types.Direction
	options      types.TransportOptions
	listener     types.TransportListener
	sendListener types.SendTransportListener

	lock       sync.Mutex
	connected  bool
	connectErr error
	connects   int
	closed     bool
	closeCount int
	producers  []*Producer
	consumers  []*Consumer
}

func newTransport(engine *MediaEngine, direction types.Direction, options types.TransportOptions, listener types.TransportListener) *Transport {
	return &Transport{
		engine:    engine,
		direction: direction,
		options:   options,
		listener:  listener,
	}
}

// Fake returns the object handed to the code under test
func (t *Transport) Fake() types.Transport {
	if t.direction == types.DirectionSend {
		return t.Send
	}
	return t.Recv
}

func (t *Transport) Options() types.TransportOptions {
	return t.options
}

// ensureConnected fires the connect callback on first use only
func (t *Transport) ensureConnected() error {
	t.lock.Lock()
	if t.closed {
		t.lock.Unlock()
		return ErrTransportClosed
	}
	if t.connected {
		err := t.connectErr
		t.lock.Unlock()
		return err
	}
	t.connected = true
	t.connects++
	t.lock.Unlock()

	err := t.listener.OnConnect(t.Fake(), json.RawMessage(testDTLSParameters))
	t.lock.Lock()
	t.connectErr = err
	t.lock.Unlock()
	if err == nil {
		t.listener.OnConnectionStateChange(t.Fake(), "connected")
	}
	return err
}

func (t *Transport) produce(listener types.ProducerListener, track types.LocalTrack, encodings []types.Encoding) (types.Producer, error) {
	if err := t.ensureConnected(); err != nil {
		return nil, err
	}

	rtpParameters, err := json.Marshal(map[string]interface{}{
		"codecs":    []interface{}{},
		"encodings": encodings,
	})
	if err != nil {
		return nil, err
	}
	id, err := t.sendListener.OnProduce(t.Fake(), track.Kind(), rtpParameters)
	if err != nil {
		return nil, err
	}

	p := newProducer(id, track, listener, encodings)
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.closed {
		return nil, ErrTransportClosed
	}
	t.producers = append(t.producers, p)
	return p.FakeProducer, nil
}

func (t *Transport) consume(listener types.ConsumerListener, options types.ConsumerOptions) (types.Consumer, error) {
	if err := t.ensureConnected(); err != nil {
		return nil, err
	}

	c := newConsumer(options, listener)
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.closed {
		return nil, ErrTransportClosed
	}
	t.consumers = append(t.consumers, c)
	return c.FakeConsumer, nil
}

func (t *Transport) close() {
	t.lock.Lock()
	if t.closed {
		t.lock.Unlock()
		return
	}
	t.closed = true
	t.closeCount++
	producers := append([]*Producer{}, t.producers...)
	consumers := append([]*Consumer{}, t.consumers...)
	t.lock.Unlock()

	for _, p := range producers {
		if p.transportClosed() && p.listener != nil {
			p.listener.OnTransportClose(p.FakeProducer)
		}
	}
	for _, c := range consumers {
		if c.transportClosed() && c.listener != nil {
			c.listener.OnTransportClose(c.FakeConsumer)
		}
	}
	t.listener.OnConnectionStateChange(t.Fake(), "closed")
}

func (t *Transport) IsClosed() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.closed
}

// CloseCount counts effective closes, repeated Close calls are not counted
func (t *Transport) CloseCount() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.closeCount
}

func (t *Transport) ConnectCount() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.connects
}

func (t *Transport) Producers() []*Producer {
	t.lock.Lock()
	defer t.lock.Unlock()
	return append([]*Producer{}, t.producers...)
}

func (t *Transport) Consumers() []*Consumer {
	t.lock.Lock()
	defer t.lock.Unlock()
	return append([]*Consumer{}, t.consumers...)
}

// Producer keeps pause and close state behind a FakeProducer.
// CloseCallCount counts explicit Close calls only, not closes caused by the transport.
type Producer struct {
	*typesfakes.FakeProducer

	listener  types.ProducerListener
	encodings []types.Encoding

	paused atomic.Bool
	closed atomic.Bool
}

func newProducer(id string, track types.LocalTrack, listener types.ProducerListener, encodings []types.Encoding) *Producer {
	p := &Producer{
		FakeProducer: &typesfakes.FakeProducer{},
		listener:     listener,
		encodings:    encodings,
	}
	p.IDReturns(id)
	p.KindReturns(track.Kind())
	p.TrackReturns(track)
	p.PauseCalls(func() { p.paused.Store(true) })
	p.ResumeCalls(func() { p.paused.Store(false) })
	p.IsPausedCalls(p.paused.Load)
	p.CloseCalls(func() { p.closed.Store(true) })
	p.IsClosedCalls(p.closed.Load)
	return p
}

func (p *Producer) Encodings() []types.Encoding {
	return p.encodings
}

func (p *Producer) transportClosed() bool {
	return p.closed.CompareAndSwap(false, true)
}

// Consumer keeps pause and close state behind a FakeConsumer, its track starts enabled
type Consumer struct {
	*typesfakes.FakeConsumer

	listener types.ConsumerListener
	track    *typesfakes.FakeLocalTrack

	paused atomic.Bool
	closed atomic.Bool
}

func newConsumer(options types.ConsumerOptions, listener types.ConsumerListener) *Consumer {
	c := &Consumer{
		FakeConsumer: &typesfakes.FakeConsumer{},
		listener:     listener,
		track:        NewTrack(options.ID+"-track", options.Kind),
	}
	c.track.SetEnabled(true)
	c.IDReturns(options.ID)
	c.ProducerIDReturns(options.ProducerID)
	c.KindReturns(options.Kind)
	c.TrackReturns(c.track)
	c.PauseCalls(func() { c.paused.Store(true) })
	c.ResumeCalls(func() { c.paused.Store(false) })
	c.IsPausedCalls(c.paused.Load)
	c.CloseCalls(func() { c.closed.Store(true) })
	c.IsClosedCalls(c.closed.Load)
	return c
}

func (c *Consumer) FakeTrack() *typesfakes.FakeLocalTrack {
	return c.track
}

func (c *Consumer) transportClosed() bool {
	return c.closed.CompareAndSwap(false, true)
}

// NewTrack returns a FakeLocalTrack that remembers whether it is enabled
func NewTrack(id string, kind types.MediaKind) *typesfakes.FakeLocalTrack {
	var enabled atomic.Bool
	track := &typesfakes.FakeLocalTrack{}
	track.IDReturns(id)
	track.KindReturns(kind)
	track.SetEnabledCalls(enabled.Store)
	track.EnabledCalls(enabled.Load)
	return track
}
