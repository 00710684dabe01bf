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
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

type serverConn struct {
	lock sync.Mutex
	conn *websocket.Conn
}

func (s *serverConn) send(msg Message) {
	s.lock.Lock()
	defer s.lock.Unlock()
	_ = s.conn.WriteJSON(msg)
}

func (s *serverConn) ack(id uint64, data string) {
	s.send(Message{Ack: id, Data: json.RawMessage(data)})
}

func (s *serverConn) push(event string, data string) {
	s.send(Message{Event: event, Data: json.RawMessage(data)})
}

type testServer struct {
	*httptest.Server
	connections atomic.Int32
}

func newTestServer(t *testing.T, handle func(sc *serverConn, index int32, msg Message)) *testServer {
	ts := &testServer{}
	upgrader := websocket.Upgrader{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		index := ts.connections.Inc()
		sc := &serverConn{conn: conn}
		defer conn.Close()
		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			handle(sc, index, msg)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func newTestChannel(t *testing.T, url string) *WSChannel {
	c := NewWSChannel(WSChannelParams{
		URL:                url,
		ConnectTimeout:     time.Second,
		RequestTimeout:     200 * time.Millisecond,
		ReconnectBaseDelay: 10 * time.Millisecond,
		ReconnectMaxDelay:  20 * time.Millisecond,
	})
	t.Cleanup(c.Close)
	return c
}

func TestWSChannel_Call(t *testing.T) {
	ts := newTestServer(t, func(sc *serverConn, _ int32, msg Message) {
		switch msg.Event {
		case "produce":
			sc.ack(msg.ID, `{"id":"producer-1"}`)
		case "consume":
			sc.ack(msg.ID, `{"error":"cannot consume"}`)
		case "create-send-transport":
			sc.ack(msg.ID, `"garbage"`)
		case "slow":
			// never acknowledged
		}
	})

	c := newTestChannel(t, ts.wsURL())
	require.NoError(t, c.Connect(context.Background()))
	require.True(t, c.IsConnected())

	var res struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Call(context.Background(), "produce", map[string]string{"kind": "video"}, &res))
	require.Equal(t, "producer-1", res.ID)

	require.ErrorIs(t, c.Call(context.Background(), "consume", nil, &res), ErrRequestFailed)
	require.ErrorIs(t, c.Call(context.Background(), "create-send-transport", nil, &res), ErrMalformedResponse)
	require.ErrorIs(t, c.Call(context.Background(), "slow", nil, nil), ErrRequestTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, c.Call(ctx, "slow", nil, nil), context.Canceled)
}

func TestWSChannel_Events(t *testing.T) {
	ts := newTestServer(t, func(sc *serverConn, _ int32, msg Message) {
		if msg.Event == "join-room" {
			sc.push("join-approved", `{"approved":true}`)
			sc.push("room-joined", `{"peers":{"bob":true}}`)
			sc.push("new-producer", `{"peerId":"bob","producerId":"p1"}`)
			sc.push("new-producer", `{"peerId":"bob","producerId":"p2"}`)
		}
	})

	c := newTestChannel(t, ts.wsURL())
	require.NoError(t, c.Connect(context.Background()))

	var lock sync.Mutex
	var producers []string
	c.On("new-producer", func(data json.RawMessage) {
		var ev struct {
			ProducerID string `json:"producerId"`
		}
		require.NoError(t, json.Unmarshal(data, &ev))
		lock.Lock()
		producers = append(producers, ev.ProducerID)
		lock.Unlock()
	})

	approved := c.Expect("join-approved")
	joined := c.Expect("room-joined")
	require.NoError(t, c.Emit("join-room", map[string]string{"roomId": "r1"}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	data, err := approved.Wait(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"approved":true}`, string(data))
	data, err = joined.Wait(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"peers":{"bob":true}}`, string(data))

	require.Eventually(t, func() bool {
		lock.Lock()
		defer lock.Unlock()
		return len(producers) == 2
	}, time.Second, 5*time.Millisecond)
	lock.Lock()
	require.Equal(t, []string{"p1", "p2"}, producers)
	lock.Unlock()
}

func TestWSChannel_Reconnect(t *testing.T) {
	ts := newTestServer(t, func(sc *serverConn, index int32, msg Message) {
		switch msg.Event {
		case "drop":
			_ = sc.conn.Close()
		case "echo":
			sc.ack(msg.ID, `{"connection":`+string(rune('0'+index))+`}`)
		}
	})

	c := newTestChannel(t, ts.wsURL())
	disconnects := atomic.NewInt32(0)
	reconnects := atomic.NewInt32(0)
	c.OnDisconnect(func(_ error) { disconnects.Inc() })
	c.OnReconnect(func() { reconnects.Inc() })
	require.NoError(t, c.Connect(context.Background()))

	err := c.Call(context.Background(), "drop", nil, nil)
	require.ErrorIs(t, err, ErrDisconnected)

	require.Eventually(t, func() bool {
		return disconnects.Load() == 1 && reconnects.Load() == 1
	}, 2*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.WaitConnected(ctx))

	var res struct {
		Connection int `json:"connection"`
	}
	require.NoError(t, c.Call(ctx, "echo", nil, &res))
	require.Equal(t, 2, res.Connection)
}

func TestWSChannel_ConnectError(t *testing.T) {
	c := newTestChannel(t, "ws://127.0.0.1:1")
	connectErrors := atomic.NewInt32(0)
	c.OnConnectError(func(_ error) { connectErrors.Inc() })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, c.Connect(ctx), context.DeadlineExceeded)
	require.GreaterOrEqual(t, connectErrors.Load(), int32(1))
	require.ErrorIs(t, c.Emit("message", nil), ErrNotConnected)
}

func TestWSChannel_Close(t *testing.T) {
	ts := newTestServer(t, func(sc *serverConn, _ int32, msg Message) {})

	c := newTestChannel(t, ts.wsURL())
	disconnects := atomic.NewInt32(0)
	c.OnDisconnect(func(_ error) { disconnects.Inc() })
	require.NoError(t, c.Connect(context.Background()))

	pending := make(chan error, 1)
	go func() {
		pending <- c.Call(context.Background(), "slow", nil, nil)
	}()
	time.Sleep(20 * time.Millisecond)

	c.Close()
	c.Close()

	require.ErrorIs(t, <-pending, ErrChannelClosed)
	require.False(t, c.IsConnected())
	require.ErrorIs(t, c.Emit("message", nil), ErrChannelClosed)
	require.ErrorIs(t, c.Connect(context.Background()), ErrChannelClosed)
	require.ErrorIs(t, c.WaitConnected(context.Background()), ErrChannelClosed)

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(0), disconnects.Load())
}
