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

package signalling

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/frostbyte73/core"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/telemetry/prometheus"
)

const (
	pingFrequency = 10 * time.Second
	pingTimeout   = 2 * time.Second

	connectionIDHeader = "X-Connection-Id"
)

type WSChannelParams struct {
	URL    string
	Header http.Header

	ConnectTimeout     time.Duration
	RequestTimeout     time.Duration
	WriteTimeout       time.Duration
	ReconnectBaseDelay time.Duration
	ReconnectMaxDelay  time.Duration

	// optional, defaults to a dialer with ConnectTimeout as handshake timeout
	Dialer *websocket.Dialer
	Logger logger.Logger
}

type ackResult struct {
	data json.RawMessage
	err  error
}

// WSChannel is a Channel over a websocket connection, redialled with exponential backoff until closed
type WSChannel struct {
	params     WSChannelParams
	dispatcher *Dispatcher
	ctx        context.Context
	cancel     context.CancelFunc

	connLock    sync.Mutex
	conn        *websocket.Conn
	connectedCh chan struct{}

	writeLock sync.Mutex

	pendingLock sync.Mutex
	pending     map[uint64]chan ackResult
	nextReqID   atomic.Uint64

	started      atomic.Bool
	connected    atomic.Bool
	reconnectNow chan struct{}
	closeOnce    sync.Once
	closed       core.Fuse
}

func NewWSChannel(params WSChannelParams) *WSChannel {
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	if params.RequestTimeout <= 0 {
		params.RequestTimeout = 10 * time.Second
	}
	if params.ConnectTimeout <= 0 {
		params.ConnectTimeout = 5 * time.Second
	}
	if params.WriteTimeout <= 0 {
		params.WriteTimeout = 5 * time.Second
	}
	if params.ReconnectBaseDelay <= 0 {
		params.ReconnectBaseDelay = 2 * time.Second
	}
	if params.ReconnectMaxDelay < params.ReconnectBaseDelay {
		params.ReconnectMaxDelay = params.ReconnectBaseDelay
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &WSChannel{
		params:       params,
		dispatcher:   NewDispatcher(),
		ctx:          ctx,
		cancel:       cancel,
		connectedCh:  make(chan struct{}),
		pending:      make(map[uint64]chan ackResult),
		reconnectNow: make(chan struct{}, 1),
	}
}

func (c *WSChannel) Connect(ctx context.Context) error {
	if c.closed.IsBroken() {
		return ErrChannelClosed
	}
	if c.started.CompareAndSwap(false, true) {
		go c.run()
	}
	return c.WaitConnected(ctx)
}

func (c *WSChannel) IsConnected() bool {
	return c.connected.Load()
}

func (c *WSChannel) WaitConnected(ctx context.Context) error {
	for {
		c.connLock.Lock()
		ch := c.connectedCh
		c.connLock.Unlock()

		select {
		case <-ch:
			if c.IsConnected() {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		case <-c.closed.Watch():
			return ErrChannelClosed
		}
	}
}

func (c *WSChannel) Reconnect() {
	select {
	case c.reconnectNow <- struct{}{}:
	default:
	}
}

func (c *WSChannel) Emit(event string, payload interface{}) error {
	msg, err := NewMessage(event, 0, payload)
	if err != nil {
		return err
	}
	return c.write(msg)
}

func (c *WSChannel) Call(ctx context.Context, event string, payload interface{}, response interface{}) error {
	start := time.Now()
	err := c.call(ctx, event, payload, response)
	prometheus.RecordSignalRequest(event, err, time.Since(start))
	return err
}

func (c *WSChannel) call(ctx context.Context, event string, payload interface{}, response interface{}) error {
	if c.closed.IsBroken() {
		return ErrChannelClosed
	}

	id := c.nextReqID.Inc()
	msg, err := NewMessage(event, id, payload)
	if err != nil {
		return err
	}

	resultCh := make(chan ackResult, 1)
	c.pendingLock.Lock()
	c.pending[id] = resultCh
	c.pendingLock.Unlock()
	defer func() {
		c.pendingLock.Lock()
		delete(c.pending, id)
		c.pendingLock.Unlock()
	}()

	if err := c.write(msg); err != nil {
		return err
	}

	timer := time.NewTimer(c.params.RequestTimeout)
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return res.err
		}
		return DecodeAck(res.data, response)
	case <-timer.C:
		return errors.Wrap(ErrRequestTimeout, event)
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closed.Watch():
		return ErrChannelClosed
	}
}

func (c *WSChannel) Expect(event string) Waiter {
	return c.dispatcher.Expect(event)
}

func (c *WSChannel) Once(ctx context.Context, event string) (json.RawMessage, error) {
	return c.dispatcher.Once(ctx, event)
}

func (c *WSChannel) On(event string, handler Handler) func() {
	return c.dispatcher.On(event, handler)
}

func (c *WSChannel) OnDisconnect(f func(err error)) func() {
	return c.dispatcher.OnDisconnect(f)
}

func (c *WSChannel) OnConnectError(f func(err error)) func() {
	return c.dispatcher.OnConnectError(f)
}

func (c *WSChannel) OnReconnect(f func()) func() {
	return c.dispatcher.OnReconnect(f)
}

func (c *WSChannel) Close() {
	c.closeOnce.Do(func() {
		c.closed.Break()
		c.cancel()

		c.connLock.Lock()
		conn := c.conn
		c.conn = nil
		c.connLock.Unlock()
		c.connected.Store(false)
		if conn != nil {
			c.writeLock.Lock()
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(pingTimeout),
			)
			c.writeLock.Unlock()
			_ = conn.Close()
		}

		c.failPending(ErrChannelClosed)
		c.dispatcher.Close()
		c.params.Logger.Debugw("signalling channel closed")
	})
}

func (c *WSChannel) run() {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.params.ReconnectBaseDelay
	b.MaxInterval = c.params.ReconnectMaxDelay
	b.MaxElapsedTime = 0
	b.Reset()

	hasConnected := false
	for !c.closed.IsBroken() {
		conn, err := c.dial()
		if err != nil {
			if c.closed.IsBroken() {
				return
			}
			c.params.Logger.Warnw("could not connect signalling channel", err, "url", c.params.URL)
			c.dispatcher.NotifyConnectError(err)

			delay := b.NextBackOff()
			select {
			case <-time.After(delay):
			case <-c.reconnectNow:
			case <-c.closed.Watch():
				return
			}
			continue
		}
		b.Reset()

		c.connLock.Lock()
		if c.closed.IsBroken() {
			c.connLock.Unlock()
			_ = conn.Close()
			return
		}
		c.conn = conn
		c.connected.Store(true)
		close(c.connectedCh)
		c.connLock.Unlock()

		if hasConnected {
			c.params.Logger.Infow("signalling channel reconnected")
			prometheus.IncrementSignalReconnect()
			c.dispatcher.NotifyReconnect()
		}
		hasConnected = true

		pingDone := make(chan struct{})
		go c.pingWorker(conn, pingDone)
		err = c.readLoop(conn)
		close(pingDone)

		c.connLock.Lock()
		if c.conn == conn {
			c.conn = nil
		}
		c.connected.Store(false)
		c.connectedCh = make(chan struct{})
		c.connLock.Unlock()
		_ = conn.Close()

		if c.closed.IsBroken() {
			return
		}
		c.failPending(ErrDisconnected)
		c.params.Logger.Infow("signalling channel disconnected", "error", err)
		c.dispatcher.NotifyDisconnect(err)
	}
}

func (c *WSChannel) dial() (*websocket.Conn, error) {
	dialer := c.params.Dialer
	if dialer == nil {
		dialer = &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: c.params.ConnectTimeout,
		}
	}

	header := c.params.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set(connectionIDHeader, uuid.NewString())

	ctx, cancel := context.WithTimeout(c.ctx, c.params.ConnectTimeout)
	defer cancel()
	conn, _, err := dialer.DialContext(ctx, c.params.URL, header)
	return conn, err
}

func (c *WSChannel) readLoop(conn *websocket.Conn) error {
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if messageType != websocket.TextMessage {
			c.params.Logger.Debugw("unsupported message", "messageType", messageType)
			continue
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			c.params.Logger.Warnw("could not decode signalling message", err)
			continue
		}
		c.handleMessage(&msg)
	}
}

func (c *WSChannel) handleMessage(msg *Message) {
	if msg.Ack != 0 {
		c.pendingLock.Lock()
		resultCh, ok := c.pending[msg.Ack]
		delete(c.pending, msg.Ack)
		c.pendingLock.Unlock()
		if !ok {
			c.params.Logger.Debugw("dropping late acknowledgement", "ack", msg.Ack)
			return
		}
		resultCh <- ackResult{data: msg.Data}
		return
	}

	if msg.Event == "" {
		c.params.Logger.Debugw("dropping message without event")
		return
	}
	c.dispatcher.Dispatch(msg.Event, msg.Data)
}

func (c *WSChannel) write(msg *Message) error {
	if c.closed.IsBroken() {
		return ErrChannelClosed
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.connLock.Lock()
	conn := c.conn
	c.connLock.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(c.params.WriteTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *WSChannel) failPending(err error) {
	c.pendingLock.Lock()
	pending := c.pending
	c.pending = make(map[uint64]chan ackResult)
	c.pendingLock.Unlock()

	for _, ch := range pending {
		ch <- ackResult{err: err}
	}
}

func (c *WSChannel) pingWorker(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			c.writeLock.Lock()
			err := conn.WriteControl(websocket.PingMessage, []byte(""), time.Now().Add(pingTimeout))
			c.writeLock.Unlock()
			if err != nil {
				return
			}
		}
	}
}
