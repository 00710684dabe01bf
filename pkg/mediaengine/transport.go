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

package mediaengine

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/frostbyte73/core"
	"github.com/pion/rtcp"
	"github.com/pion/webrtc/v3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

type transportParams struct {
	api            *webrtc.API
	engine         *Engine
	direction      types.Direction
	options        types.TransportOptions
	listener       types.TransportListener
	iceServers     []webrtc.ICEServer
	connectTimeout time.Duration
	logger         logger.Logger
}

// transport is one ICE+DTLS(+SCTP) stack towards the server. It connects lazily, on the first
// produce or consume, after the server has been given the local DTLS parameters.
type transport struct {
	params       transportParams
	sendListener types.SendTransportListener

	remoteICE        webrtc.ICEParameters
	remoteCandidates []webrtc.ICECandidate
	remoteDTLS       webrtc.DTLSParameters
	sctpParams       *SCTPParameters

	gatherer *webrtc.ICEGatherer
	ice      *webrtc.ICETransport
	dtls     *webrtc.DTLSTransport
	sctp     *webrtc.SCTPTransport

	connectLock sync.Mutex
	connected   bool
	connectErr  error

	lock      sync.Mutex
	producers map[string]*producer
	consumers map[string]*consumer
	nextMID   int

	closed core.Fuse
}

func newTransport(params transportParams) (*transport, error) {
	remoteICE, err := parseICEParameters(params.options.ICEParameters)
	if err != nil {
		return nil, err
	}
	remoteCandidates, err := parseICECandidates(params.options.ICECandidates)
	if err != nil {
		return nil, err
	}
	remoteDTLS, err := parseRemoteDTLS(params.options.DTLSParameters)
	if err != nil {
		return nil, err
	}
	sctpParams, err := parseSCTPParameters(params.options.SCTPParameters)
	if err != nil {
		return nil, err
	}

	gatherer, err := params.api.NewICEGatherer(webrtc.ICEGatherOptions{ICEServers: params.iceServers})
	if err != nil {
		return nil, err
	}
	iceTransport := params.api.NewICETransport(gatherer)
	dtls, err := params.api.NewDTLSTransport(iceTransport, nil)
	if err != nil {
		_ = gatherer.Close()
		return nil, err
	}

	t := &transport{
		params:           params,
		remoteICE:        remoteICE,
		remoteCandidates: remoteCandidates,
		remoteDTLS:       remoteDTLS,
		sctpParams:       sctpParams,
		gatherer:         gatherer,
		ice:              iceTransport,
		dtls:             dtls,
		producers:        make(map[string]*producer),
		consumers:        make(map[string]*consumer),
	}
	if sctpParams != nil {
		t.sctp = params.api.NewSCTPTransport(dtls)
	}

	iceTransport.OnConnectionStateChange(func(state webrtc.ICETransportState) {
		t.params.logger.Debugw("ice state changed", "state", state.String())
		if t.closed.IsBroken() {
			return
		}
		t.params.listener.OnConnectionStateChange(t, state.String())
		if state == webrtc.ICETransportStateFailed {
			go t.Close()
		}
	})
	return t, nil
}

func (t *transport) ID() string {
	return t.params.options.ID
}

func (t *transport) Direction() types.Direction {
	return t.params.direction
}

func (t *transport) IsClosed() bool {
	return t.closed.IsBroken()
}

// ensureConnected hands the local DTLS parameters to the server once, then runs the ICE and
// DTLS handshakes. A failed attempt is remembered, the transport has to be replaced.
func (t *transport) ensureConnected() error {
	t.connectLock.Lock()
	defer t.connectLock.Unlock()

	if t.closed.IsBroken() {
		return ErrTransportClosed
	}
	if t.connected {
		return t.connectErr
	}
	t.connected = true

	t.connectErr = t.connect()
	if t.connectErr != nil {
		t.params.logger.Warnw("transport connect failed", t.connectErr)
	}
	return t.connectErr
}

func (t *transport) connect() error {
	local, err := t.dtls.GetLocalParameters()
	if err != nil {
		return err
	}
	dtlsParameters, err := localDTLS(local)
	if err != nil {
		return err
	}
	if err := t.params.listener.OnConnect(t, dtlsParameters); err != nil {
		return err
	}

	gathered := make(chan struct{})
	var once sync.Once
	t.gatherer.OnLocalCandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			once.Do(func() { close(gathered) })
		}
	})
	if err := t.gatherer.Gather(); err != nil {
		return err
	}
	select {
	case <-gathered:
	case <-time.After(gatherTimeout):
		t.params.logger.Debugw("continuing with partial ice candidates")
	case <-t.closed.Watch():
		return ErrTransportClosed
	}

	done := make(chan error, 1)
	go func() {
		if err := t.ice.SetRemoteCandidates(t.remoteCandidates); err != nil {
			done <- err
			return
		}
		// the server is ice-lite, the device controls
		role := webrtc.ICERoleControlling
		if err := t.ice.Start(t.gatherer, t.remoteICE, &role); err != nil {
			done <- err
			return
		}
		done <- t.dtls.Start(t.remoteDTLS)
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-time.After(t.params.connectTimeout):
		go t.Close()
		return ErrConnectTimeout
	case <-t.closed.Watch():
		return ErrTransportClosed
	}

	if t.sctp != nil {
		maxMessageSize := t.sctpParams.MaxMessageSize
		go func() {
			if err := t.sctp.Start(webrtc.SCTPCapabilities{MaxMessageSize: maxMessageSize}); err != nil {
				t.params.logger.Warnw("could not start sctp", err)
			}
		}()
	}
	t.params.logger.Debugw("transport connected")
	return nil
}

func (t *transport) Produce(listener types.ProducerListener, track types.LocalTrack, encodings []types.Encoding) (types.Producer, error) {
	if t.params.direction != types.DirectionSend || t.sendListener == nil {
		return nil, errors.New("produce on a receive transport")
	}
	local, ok := track.(*LocalTrack)
	if !ok {
		return nil, ErrForeignTrack
	}
	if local.IsDisposed() {
		return nil, ErrTrackDisposed
	}
	codec, ok := t.params.engine.codecFor(local.kind)
	if !ok {
		return nil, errors.Wrap(ErrNoCodec, string(local.kind))
	}
	if err := t.ensureConnected(); err != nil {
		return nil, err
	}

	rids := make([]string, 0, len(encodings))
	for _, e := range encodings {
		rids = append(rids, e.RID)
	}
	layers, err := local.bind(rids)
	if err != nil {
		return nil, err
	}

	sender, err := t.params.api.NewRTPSender(layers[0], t.dtls)
	if err != nil {
		return nil, err
	}
	for _, layer := range layers[1:] {
		if err := sender.AddEncoding(layer); err != nil {
			_ = sender.Stop()
			return nil, err
		}
	}

	sendParameters := sender.GetParameters()
	ssrcs := make([]uint32, 0, len(sendParameters.Encodings))
	for _, e := range sendParameters.Encodings {
		ssrcs = append(ssrcs, uint32(e.SSRC))
	}

	t.lock.Lock()
	mid := strconv.Itoa(t.nextMID)
	t.nextMID++
	t.lock.Unlock()

	rtpParameters, err := json.Marshal(produceParameters(mid, codec, ssrcs, encodings, t.params.engine.cname))
	if err != nil {
		_ = sender.Stop()
		return nil, err
	}
	id, err := t.sendListener.OnProduce(t, local.kind, rtpParameters)
	if err != nil {
		_ = sender.Stop()
		return nil, err
	}

	if err := sender.Send(sendParameters); err != nil {
		_ = sender.Stop()
		return nil, err
	}

	p := &producer{
		id:        id,
		track:     local,
		sender:    sender,
		listener:  listener,
		transport: t,
	}
	t.lock.Lock()
	if t.closed.IsBroken() {
		t.lock.Unlock()
		_ = sender.Stop()
		return nil, ErrTransportClosed
	}
	t.producers[id] = p
	t.lock.Unlock()

	go p.readRTCP()
	return p, nil
}

func (t *transport) Consume(listener types.ConsumerListener, options types.ConsumerOptions) (types.Consumer, error) {
	if t.params.direction != types.DirectionRecv {
		return nil, errors.New("consume on a send transport")
	}
	codec, ssrc, err := consumeParameters(options.RTPParameters)
	if err != nil {
		return nil, err
	}
	if err := t.ensureConnected(); err != nil {
		return nil, err
	}

	receiver, err := t.params.api.NewRTPReceiver(codecType(options.Kind), t.dtls)
	if err != nil {
		return nil, err
	}
	err = receiver.Receive(webrtc.RTPReceiveParameters{Encodings: []webrtc.RTPDecodingParameters{{
		RTPCodingParameters: webrtc.RTPCodingParameters{
			SSRC:        ssrc,
			PayloadType: codec.PayloadType,
		},
	}}})
	if err != nil {
		return nil, err
	}
	receiver.SetRTPParameters(webrtc.RTPParameters{
		Codecs: []webrtc.RTPCodecParameters{codec},
	})

	c := &consumer{
		options:   options,
		ssrc:      ssrc,
		receiver:  receiver,
		listener:  listener,
		transport: t,
		track:     &remoteTrack{id: options.ID + "-track", kind: options.Kind},
	}
	c.track.SetEnabled(true)

	t.lock.Lock()
	if t.closed.IsBroken() {
		t.lock.Unlock()
		_ = receiver.Stop()
		return nil, ErrTransportClosed
	}
	t.consumers[options.ID] = c
	t.lock.Unlock()

	go c.readRTP()
	go c.readRTCP()
	return c, nil
}

func (t *transport) consumerByID(id string) *consumer {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.consumers[id]
}

func (t *transport) removeProducer(id string) {
	t.lock.Lock()
	delete(t.producers, id)
	t.lock.Unlock()
}

func (t *transport) removeConsumer(id string) {
	t.lock.Lock()
	delete(t.consumers, id)
	t.lock.Unlock()
}

func (t *transport) writeRTCP(pkts []rtcp.Packet) error {
	if t.closed.IsBroken() {
		return ErrTransportClosed
	}
	_, err := t.dtls.WriteRTCP(pkts)
	return err
}

// Close stops the transport locally, producers and consumers on it are closed and their
// listeners told. The server is not notified.
func (t *transport) Close() {
	t.lock.Lock()
	if t.closed.IsBroken() {
		t.lock.Unlock()
		return
	}
	t.closed.Break()
	producers := make([]*producer, 0, len(t.producers))
	for _, p := range t.producers {
		producers = append(producers, p)
	}
	consumers := make([]*consumer, 0, len(t.consumers))
	for _, c := range t.consumers {
		consumers = append(consumers, c)
	}
	t.producers = make(map[string]*producer)
	t.consumers = make(map[string]*consumer)
	t.lock.Unlock()

	for _, p := range producers {
		if p.stop() && p.listener != nil {
			p.listener.OnTransportClose(p)
		}
	}
	for _, c := range consumers {
		if c.stop() && c.listener != nil {
			c.listener.OnTransportClose(c)
		}
	}

	var errs error
	if t.sctp != nil {
		errs = multierr.Append(errs, t.sctp.Stop())
	}
	errs = multierr.Combine(errs, t.dtls.Stop(), t.ice.Stop(), t.gatherer.Close())
	if errs != nil {
		t.params.logger.Debugw("transport stopped with errors", "error", errs)
	}

	t.params.engine.removeTransport(t)
	t.params.listener.OnConnectionStateChange(t, "closed")
}
