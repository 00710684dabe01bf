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

// Package mediaengine implements the device side of the SFU protocol on top of pion's ORTC API:
// ICE, DTLS and SCTP transports are driven directly, without SDP, from parameters the server
// hands out over signalling.
package mediaengine

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pion/ice/v2"
	"github.com/pion/interceptor"
	"github.com/pion/rtcp"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v3"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/config"
	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

const (
	defaultConnectTimeout = 15 * time.Second
	gatherTimeout         = 5 * time.Second
)

// RTPSink receives every packet read from a remote track while its consumer is enabled
type RTPSink func(consumerID string, kind types.MediaKind, pkt *rtp.Packet)

type EngineParams struct {
	Config         config.MediaConfig
	ConnectTimeout time.Duration
	OnRTP          RTPSink
	// called for every track handed to the session, a capture source writes samples into it
	OnTrackCreated func(track *LocalTrack)
	Logger         logger.Logger
}

type Engine struct {
	params EngineParams
	cname  string

	lock         sync.RWMutex
	api          *webrtc.API
	codecs       []RTPCodecCapability
	capabilities json.RawMessage
	transports   map[string]*transport
	cameraIndex  int
	nextTrack    int
	closed       bool

	bytesReceived atomic.Uint64
}

var _ types.MediaEngine = (*Engine)(nil)

func NewEngine(params EngineParams) *Engine {
	if params.ConnectTimeout == 0 {
		params.ConnectTimeout = defaultConnectTimeout
	}
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	return &Engine{
		params:     params,
		cname:      uuid.NewString(),
		transports: make(map[string]*transport),
	}
}

// Load negotiates codecs against the router capabilities. Loading again replaces them,
// transports created before stay bound to the previous negotiation.
func (e *Engine) Load(routerRTPCapabilities json.RawMessage) error {
	var router RTPCapabilities
	if err := json.Unmarshal(routerRTPCapabilities, &router); err != nil {
		return errors.Wrap(ErrInvalidParameters, err.Error())
	}
	codecs := matchCodecs(router)

	me := &webrtc.MediaEngine{}
	for _, c := range codecs {
		if err := me.RegisterCodec(toCodecParameters(c), codecType(c.Kind)); err != nil {
			return errors.Wrapf(err, "register codec %s", c.MimeType)
		}
	}

	ir := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(me, ir); err != nil {
		return err
	}

	se := webrtc.SettingEngine{
		LoggerFactory: logger.PionLoggerFactory(),
	}
	se.SetICETimeouts(5*time.Second, e.params.ConnectTimeout, 2*time.Second)
	if e.params.Config.DisableMDNS {
		se.SetICEMulticastDNSMode(ice.MulticastDNSModeDisabled)
	}

	capabilities, err := json.Marshal(RTPCapabilities{
		Codecs:           codecs,
		HeaderExtensions: []RTPHeaderExtensionCapability{},
	})
	if err != nil {
		return err
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	if e.closed {
		return ErrEngineClosed
	}
	e.api = webrtc.NewAPI(
		webrtc.WithMediaEngine(me),
		webrtc.WithSettingEngine(se),
		webrtc.WithInterceptorRegistry(ir),
	)
	e.codecs = codecs
	e.capabilities = capabilities
	e.params.Logger.Debugw("media engine loaded", "codecs", len(codecs))
	return nil
}

func (e *Engine) IsLoaded() bool {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.api != nil
}

func (e *Engine) CanProduce(kind types.MediaKind) bool {
	switch kind {
	case types.MediaKindAudio:
		if e.params.Config.DisableAudio {
			return false
		}
	case types.MediaKindVideo:
		if e.params.Config.DisableVideo {
			return false
		}
	default:
		return false
	}

	e.lock.RLock()
	defer e.lock.RUnlock()
	_, ok := e.codecForLocked(kind)
	return ok
}

func (e *Engine) RTPCapabilities() json.RawMessage {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.capabilities
}

func (e *Engine) SCTPCapabilities() json.RawMessage {
	raw, _ := json.Marshal(defaultSCTPCapabilities)
	return raw
}

func (e *Engine) CreateSendTransport(listener types.SendTransportListener, options types.TransportOptions) (types.SendTransport, error) {
	t, err := e.createTransport(types.DirectionSend, listener, options)
	if err != nil {
		return nil, err
	}
	t.sendListener = listener
	return t, nil
}

func (e *Engine) CreateRecvTransport(listener types.TransportListener, options types.TransportOptions) (types.RecvTransport, error) {
	return e.createTransport(types.DirectionRecv, listener, options)
}

func (e *Engine) createTransport(direction types.Direction, listener types.TransportListener, options types.TransportOptions) (*transport, error) {
	e.lock.RLock()
	api := e.api
	closed := e.closed
	e.lock.RUnlock()
	if closed {
		return nil, ErrEngineClosed
	}
	if api == nil {
		return nil, ErrNotLoaded
	}

	t, err := newTransport(transportParams{
		api:            api,
		engine:         e,
		direction:      direction,
		options:        options,
		listener:       listener,
		iceServers:     e.iceServers(),
		connectTimeout: e.params.ConnectTimeout,
		logger:         e.params.Logger.WithValues("transportID", options.ID, "direction", direction),
	})
	if err != nil {
		return nil, err
	}

	e.lock.Lock()
	e.transports[options.ID] = t
	e.lock.Unlock()
	return t, nil
}

func (e *Engine) removeTransport(t *transport) {
	e.lock.Lock()
	if e.transports[t.ID()] == t {
		delete(e.transports, t.ID())
	}
	e.lock.Unlock()
}

func (e *Engine) CreateTrack(kind types.MediaKind) (types.LocalTrack, error) {
	if !e.CanProduce(kind) {
		e.lock.RLock()
		loaded := e.api != nil
		e.lock.RUnlock()
		if !loaded {
			return nil, ErrNotLoaded
		}
		return nil, errors.Wrap(ErrNoCodec, string(kind))
	}

	e.lock.Lock()
	codec, _ := e.codecForLocked(kind)
	e.nextTrack++
	id := fmt.Sprintf("%s-%d", kind, e.nextTrack)
	e.lock.Unlock()

	track := newLocalTrack(id, e.cname, kind, toCodecCapability(codec))
	if e.params.OnTrackCreated != nil {
		e.params.OnTrackCreated(track)
	}
	return track, nil
}

// SwitchCamera moves capture to the next configured camera
func (e *Engine) SwitchCamera() error {
	cameras := e.params.Config.Cameras
	if len(cameras) < 2 {
		return ErrNoAlternateCamera
	}

	e.lock.Lock()
	e.cameraIndex = (e.cameraIndex + 1) % len(cameras)
	camera := cameras[e.cameraIndex]
	e.lock.Unlock()

	e.params.Logger.Infow("switched camera", "camera", camera)
	return nil
}

func (e *Engine) Camera() string {
	cameras := e.params.Config.Cameras
	if len(cameras) == 0 {
		return ""
	}
	e.lock.RLock()
	defer e.lock.RUnlock()
	return cameras[e.cameraIndex]
}

// RequestKeyFrame sends a PLI for the consumer's stream
func (e *Engine) RequestKeyFrame(consumerID string) error {
	e.lock.RLock()
	var c *consumer
	for _, t := range e.transports {
		if c = t.consumerByID(consumerID); c != nil {
			break
		}
	}
	e.lock.RUnlock()
	if c == nil {
		return ErrConsumerNotFound
	}
	return c.transport.writeRTCP([]rtcp.Packet{
		&rtcp.PictureLossIndication{MediaSSRC: uint32(c.ssrc)},
	})
}

func (e *Engine) BytesReceived() uint64 {
	return e.bytesReceived.Load()
}

func (e *Engine) Close() {
	e.lock.Lock()
	if e.closed {
		e.lock.Unlock()
		return
	}
	e.closed = true
	transports := make([]*transport, 0, len(e.transports))
	for _, t := range e.transports {
		transports = append(transports, t)
	}
	e.transports = make(map[string]*transport)
	e.lock.Unlock()

	for _, t := range transports {
		t.Close()
	}
}

func (e *Engine) codecFor(kind types.MediaKind) (RTPCodecCapability, bool) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.codecForLocked(kind)
}

func (e *Engine) codecForLocked(kind types.MediaKind) (RTPCodecCapability, bool) {
	for _, c := range e.codecs {
		if c.Kind == kind && isSupported(c.MimeType) {
			return c, true
		}
	}
	return RTPCodecCapability{}, false
}

func (e *Engine) iceServers() []webrtc.ICEServer {
	if len(e.params.Config.ICEServers) == 0 {
		return nil
	}
	return []webrtc.ICEServer{{URLs: e.params.Config.ICEServers}}
}

func (e *Engine) onRTP(c *consumer, pkt *rtp.Packet) {
	e.bytesReceived.Add(uint64(pkt.MarshalSize()))
	if e.params.OnRTP != nil && c.track.Enabled() {
		e.params.OnRTP(c.ID(), c.Kind(), pkt)
	}
}
