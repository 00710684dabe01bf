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
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Handler receives the raw payload of a server pushed event
type Handler func(data json.RawMessage)

// Waiter is a one-shot subscription registered before the triggering request is sent,
// so a reply that arrives immediately is never missed.
type Waiter interface {
	Wait(ctx context.Context) (json.RawMessage, error)
	Cancel()
}

//counterfeiter:generate . Channel

// Channel is a bidirectional, event-named message channel to the SFU.
//
// Events pushed by the server are delivered to handlers in the order they were received.
// Handlers are invoked on the channel's read goroutine and must not block.
type Channel interface {
	// Connect starts the connection, with automatic reconnection, and waits for the first successful attempt
	Connect(ctx context.Context) error
	// Emit sends a fire-and-forget event
	Emit(event string, payload interface{}) error
	// Call sends an event and waits for its acknowledgement, decoding it into response when non-nil
	Call(ctx context.Context, event string, payload interface{}, response interface{}) error
	Expect(event string) Waiter
	Once(ctx context.Context, event string) (json.RawMessage, error)
	// On registers a persistent handler that survives reconnections
	On(event string, handler Handler) func()

	OnDisconnect(f func(err error)) func()
	OnConnectError(f func(err error)) func()
	OnReconnect(f func()) func()

	IsConnected() bool
	WaitConnected(ctx context.Context) error
	// Reconnect skips any pending backoff delay
	Reconnect()
	Close()
}
