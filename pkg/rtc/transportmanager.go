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
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

type TransportManagerParams struct {
	Channel        signalling.Channel
	Engine         types.MediaEngine
	UseDataChannel bool
	Logger         logger.Logger
}

// TransportManager owns at most one send and one recv transport.
// It is driven from the session's ops queue, while its listeners run on engine goroutines.
type TransportManager struct {
	params TransportManagerParams

	lock sync.RWMutex
	send types.SendTransport
	recv types.RecvTransport

	// cancelled when the owning session closes, bounds listener requests
	ctx    context.Context
	cancel context.CancelFunc
}

func NewTransportManager(params TransportManagerParams) *TransportManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &TransportManager{
		params: params,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (t *TransportManager) CreateTransport(ctx context.Context, direction types.Direction) (types.Transport, error) {
	t.lock.RLock()
	existing := t.transportLocked(direction)
	t.lock.RUnlock()
	if existing != nil && !existing.IsClosed() {
		return nil, ErrTransportExists
	}

	event := types.EventCreateSendTransport
	if direction == types.DirectionRecv {
		event = types.EventCreateRecvTransport
	}

	req := types.CreateTransportRequest{}
	if t.params.UseDataChannel {
		req.SCTPCapabilities = t.params.Engine.SCTPCapabilities()
	}
	var res types.TransportParameters
	if err := t.params.Channel.Call(ctx, event, req, &res); err != nil {
		return nil, err
	}
	if res.ID == "" || isEmptyRaw(res.ICEParameters) || isEmptyRaw(res.ICECandidates) || isEmptyRaw(res.DTLSParameters) {
		return nil, errors.Wrap(signalling.ErrMalformedResponse, "transport parameters incomplete")
	}

	opts := types.TransportOptions{
		ID:             res.ID,
		ICEParameters:  res.ICEParameters,
		ICECandidates:  res.ICECandidates,
		DTLSParameters: res.DTLSParameters,
	}
	if t.params.UseDataChannel {
		opts.SCTPParameters = res.SCTPParameters
	}

	listener := &transportListener{manager: t, direction: direction}
	var transport types.Transport
	var err error
	if direction == types.DirectionSend {
		transport, err = t.params.Engine.CreateSendTransport(listener, opts)
	} else {
		transport, err = t.params.Engine.CreateRecvTransport(listener, opts)
	}
	if err != nil {
		return nil, err
	}

	t.lock.Lock()
	if direction == types.DirectionSend {
		t.send = transport.(types.SendTransport)
	} else {
		t.recv = transport.(types.RecvTransport)
	}
	t.lock.Unlock()

	t.params.Logger.Debugw("transport created", "direction", direction, "transportID", res.ID)
	return transport, nil
}

func (t *TransportManager) SendTransport() (types.SendTransport, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	if t.send == nil || t.send.IsClosed() {
		return nil, false
	}
	return t.send, true
}

func (t *TransportManager) RecvTransport() (types.RecvTransport, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	if t.recv == nil || t.recv.IsClosed() {
		return nil, false
	}
	return t.recv, true
}

// Close tears down the transport for direction locally, the server is not notified.
// Closing an absent or already closed transport is a no-op.
func (t *TransportManager) Close(direction types.Direction) {
	t.lock.Lock()
	transport := t.transportLocked(direction)
	if direction == types.DirectionSend {
		t.send = nil
	} else {
		t.recv = nil
	}
	t.lock.Unlock()

	if transport != nil && !transport.IsClosed() {
		t.params.Logger.Debugw("closing transport", "direction", direction, "transportID", transport.ID())
		transport.Close()
	}
}

func (t *TransportManager) CloseAll() {
	t.Close(types.DirectionSend)
	t.Close(types.DirectionRecv)
}

// Stop closes both transports and aborts any listener request in flight
func (t *TransportManager) Stop() {
	t.cancel()
	t.CloseAll()
}

func (t *TransportManager) transportLocked(direction types.Direction) types.Transport {
	if direction == types.DirectionSend {
		if t.send == nil {
			return nil
		}
		return t.send
	}
	if t.recv == nil {
		return nil
	}
	return t.recv
}

// transportListener bridges engine callbacks to signalling requests
type transportListener struct {
	manager   *TransportManager
	direction types.Direction
	connected atomic.Bool
}

func (l *transportListener) OnConnect(transport types.Transport, dtlsParameters json.RawMessage) error {
	if !l.connected.CompareAndSwap(false, true) {
		return nil
	}

	event := types.EventConnectSendTransport
	if l.direction == types.DirectionRecv {
		event = types.EventConnectRecvTransport
	}
	err := l.manager.params.Channel.Call(l.manager.ctx, event, types.ConnectTransportRequest{DTLSParameters: dtlsParameters}, nil)
	if err != nil {
		l.manager.params.Logger.Warnw("could not connect transport", err, "direction", l.direction, "transportID", transport.ID())
	}
	return err
}

func (l *transportListener) OnConnectionStateChange(transport types.Transport, state string) {
	l.manager.params.Logger.Debugw("transport connection state changed",
		"direction", l.direction,
		"transportID", transport.ID(),
		"state", state,
	)
}

func (l *transportListener) OnProduce(transport types.Transport, kind types.MediaKind, rtpParameters json.RawMessage) (string, error) {
	var res types.ProduceResponse
	err := l.manager.params.Channel.Call(l.manager.ctx, types.EventProduce, types.ProduceRequest{
		TransportID:   transport.ID(),
		Kind:          kind,
		RTPParameters: rtpParameters,
	}, &res)
	if err != nil {
		return "", err
	}
	if res.ID == "" {
		return "", errors.Wrap(signalling.ErrMalformedResponse, "empty producer id")
	}
	return res.ID, nil
}
