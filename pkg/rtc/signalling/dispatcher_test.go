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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestDispatcher(t *testing.T) {
	t.Run("handlers run in registration order", func(t *testing.T) {
		d := NewDispatcher()
		var order []string
		d.On("new-producer", func(_ json.RawMessage) { order = append(order, "first") })
		d.On("new-producer", func(_ json.RawMessage) { order = append(order, "second") })
		d.On("other", func(_ json.RawMessage) { order = append(order, "other") })

		d.Dispatch("new-producer", json.RawMessage(`{}`))
		require.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("unsubscribe", func(t *testing.T) {
		d := NewDispatcher()
		count := atomic.NewInt32(0)
		unsub := d.On("message", func(_ json.RawMessage) { count.Inc() })
		d.Dispatch("message", nil)
		unsub()
		d.Dispatch("message", nil)
		require.Equal(t, int32(1), count.Load())
	})

	t.Run("waiter registered before dispatch", func(t *testing.T) {
		d := NewDispatcher()
		w := d.Expect("join-approved")
		d.Dispatch("join-approved", json.RawMessage(`{"approved":true}`))
		d.Dispatch("join-approved", json.RawMessage(`{"approved":false}`))

		data, err := w.Wait(context.Background())
		require.NoError(t, err)
		require.JSONEq(t, `{"approved":true}`, string(data))
	})

	t.Run("waiter honours context", func(t *testing.T) {
		d := NewDispatcher()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := d.Once(ctx, "room-joined")
		require.ErrorIs(t, err, context.DeadlineExceeded)

		d.lock.RLock()
		require.Empty(t, d.waiters)
		d.lock.RUnlock()
	})

	t.Run("close fails waiters", func(t *testing.T) {
		d := NewDispatcher()
		w := d.Expect("room-joined")
		d.Close()
		_, err := w.Wait(context.Background())
		require.ErrorIs(t, err, ErrChannelClosed)

		_, err = d.Expect("room-joined").Wait(context.Background())
		require.ErrorIs(t, err, ErrChannelClosed)
		d.Close()
	})

	t.Run("lifecycle listeners", func(t *testing.T) {
		d := NewDispatcher()
		var disconnectErr error
		reconnects := 0
		d.OnDisconnect(func(err error) { disconnectErr = err })
		unsub := d.OnReconnect(func() { reconnects++ })

		d.NotifyDisconnect(errors.New("io"))
		d.NotifyReconnect()
		unsub()
		d.NotifyReconnect()

		require.EqualError(t, disconnectErr, "io")
		require.Equal(t, 1, reconnects)
	})
}

func TestDecodeAck(t *testing.T) {
	type produceResponse struct {
		ID string `json:"id"`
	}

	var res produceResponse
	require.NoError(t, DecodeAck(json.RawMessage(`{"id":"p1"}`), &res))
	require.Equal(t, "p1", res.ID)

	require.ErrorIs(t, DecodeAck(json.RawMessage(`{"error":"no router"}`), &res), ErrRequestFailed)
	require.ErrorIs(t, DecodeAck(json.RawMessage(`{"error":"no router"}`), nil), ErrRequestFailed)
	require.ErrorIs(t, DecodeAck(nil, &res), ErrMalformedResponse)
	require.ErrorIs(t, DecodeAck(json.RawMessage(`null`), &res), ErrMalformedResponse)
	require.ErrorIs(t, DecodeAck(json.RawMessage(`"oops"`), &res), ErrMalformedResponse)
	require.NoError(t, DecodeAck(nil, nil))
}
