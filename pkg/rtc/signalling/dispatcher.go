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
	"sync"

	"github.com/frostbyte73/core"
)

type handlerEntry struct {
	id      uint64
	handler Handler
}

// Dispatcher fans server events out to handlers and one-shot waiters,
// and connection state changes out to lifecycle listeners.
type Dispatcher struct {
	lock         sync.RWMutex
	nextID       uint64
	handlers     map[string][]handlerEntry
	waiters      map[string]map[uint64]*waiter
	onDisconnect map[uint64]func(error)
	onConnectErr map[uint64]func(error)
	onReconnect  map[uint64]func()
	closed       bool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers:     make(map[string][]handlerEntry),
		waiters:      make(map[string]map[uint64]*waiter),
		onDisconnect: make(map[uint64]func(error)),
		onConnectErr: make(map[uint64]func(error)),
		onReconnect:  make(map[uint64]func()),
	}
}

func (d *Dispatcher) On(event string, handler Handler) func() {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return func() {}
	}
	d.nextID++
	id := d.nextID
	d.handlers[event] = append(d.handlers[event], handlerEntry{id: id, handler: handler})

	return func() {
		d.lock.Lock()
		defer d.lock.Unlock()

		entries := d.handlers[event]
		for i, e := range entries {
			if e.id == id {
				d.handlers[event] = append(entries[:i:i], entries[i+1:]...)
				break
			}
		}
		if len(d.handlers[event]) == 0 {
			delete(d.handlers, event)
		}
	}
}

func (d *Dispatcher) Expect(event string) Waiter {
	d.lock.Lock()
	defer d.lock.Unlock()

	w := &waiter{
		dispatcher: d,
		event:      event,
		ch:         make(chan json.RawMessage, 1),
	}
	if d.closed {
		w.err = ErrChannelClosed
		w.done.Break()
		return w
	}

	d.nextID++
	w.id = d.nextID
	if d.waiters[event] == nil {
		d.waiters[event] = make(map[uint64]*waiter)
	}
	d.waiters[event][w.id] = w
	return w
}

func (d *Dispatcher) Once(ctx context.Context, event string) (json.RawMessage, error) {
	return d.Expect(event).Wait(ctx)
}

func (d *Dispatcher) OnDisconnect(f func(err error)) func() {
	return d.addListener(func(id uint64) { d.onDisconnect[id] = f }, func(id uint64) { delete(d.onDisconnect, id) })
}

func (d *Dispatcher) OnConnectError(f func(err error)) func() {
	return d.addListener(func(id uint64) { d.onConnectErr[id] = f }, func(id uint64) { delete(d.onConnectErr, id) })
}

func (d *Dispatcher) OnReconnect(f func()) func() {
	return d.addListener(func(id uint64) { d.onReconnect[id] = f }, func(id uint64) { delete(d.onReconnect, id) })
}

func (d *Dispatcher) addListener(add func(id uint64), remove func(id uint64)) func() {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return func() {}
	}
	d.nextID++
	id := d.nextID
	add(id)
	return func() {
		d.lock.Lock()
		remove(id)
		d.lock.Unlock()
	}
}

// Dispatch resolves waiters for event first, then invokes handlers in registration order
func (d *Dispatcher) Dispatch(event string, data json.RawMessage) {
	d.lock.Lock()
	if d.closed {
		d.lock.Unlock()
		return
	}
	waiters := d.waiters[event]
	delete(d.waiters, event)
	entries := append([]handlerEntry(nil), d.handlers[event]...)
	d.lock.Unlock()

	for _, w := range waiters {
		w.ch <- data
	}
	for _, e := range entries {
		e.handler(data)
	}
}

func (d *Dispatcher) NotifyDisconnect(err error) {
	d.lock.RLock()
	listeners := make([]func(error), 0, len(d.onDisconnect))
	for _, f := range d.onDisconnect {
		listeners = append(listeners, f)
	}
	d.lock.RUnlock()

	for _, f := range listeners {
		f(err)
	}
}

func (d *Dispatcher) NotifyConnectError(err error) {
	d.lock.RLock()
	listeners := make([]func(error), 0, len(d.onConnectErr))
	for _, f := range d.onConnectErr {
		listeners = append(listeners, f)
	}
	d.lock.RUnlock()

	for _, f := range listeners {
		f(err)
	}
}

func (d *Dispatcher) NotifyReconnect() {
	d.lock.RLock()
	listeners := make([]func(), 0, len(d.onReconnect))
	for _, f := range d.onReconnect {
		listeners = append(listeners, f)
	}
	d.lock.RUnlock()

	for _, f := range listeners {
		f()
	}
}

// Close drops every handler and listener and fails outstanding waiters with ErrChannelClosed
func (d *Dispatcher) Close() {
	d.lock.Lock()
	if d.closed {
		d.lock.Unlock()
		return
	}
	d.closed = true
	waiters := d.waiters
	d.waiters = make(map[string]map[uint64]*waiter)
	d.handlers = make(map[string][]handlerEntry)
	d.onDisconnect = make(map[uint64]func(error))
	d.onConnectErr = make(map[uint64]func(error))
	d.onReconnect = make(map[uint64]func())
	d.lock.Unlock()

	for _, byID := range waiters {
		for _, w := range byID {
			w.fail(ErrChannelClosed)
		}
	}
}

func (d *Dispatcher) removeWaiter(w *waiter) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if byID, ok := d.waiters[w.event]; ok {
		delete(byID, w.id)
		if len(byID) == 0 {
			delete(d.waiters, w.event)
		}
	}
}

type waiter struct {
	dispatcher *Dispatcher
	event      string
	id         uint64
	ch         chan json.RawMessage

	errLock sync.Mutex
	err     error
	done    core.Fuse
}

func (w *waiter) Wait(ctx context.Context) (json.RawMessage, error) {
	select {
	case data := <-w.ch:
		return data, nil
	case <-w.done.Watch():
		select {
		case data := <-w.ch:
			return data, nil
		default:
		}
		w.errLock.Lock()
		defer w.errLock.Unlock()
		return nil, w.err
	case <-ctx.Done():
		w.Cancel()
		return nil, ctx.Err()
	}
}

func (w *waiter) Cancel() {
	w.dispatcher.removeWaiter(w)
	w.fail(context.Canceled)
}

func (w *waiter) fail(err error) {
	w.errLock.Lock()
	if w.err == nil {
		w.err = err
	}
	w.errLock.Unlock()
	w.done.Break()
}
