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

package utils

import (
	"context"
	"errors"
	"sync"

	"github.com/frostbyte73/core"
	"github.com/gammazero/deque"

	"github.com/myworldtech/meet/pkg/logger"
)

var ErrOpsQueueStopped = errors.New("ops queue stopped")

// OpsQueue runs queued operations one at a time, in order, on a single goroutine.
// The queue is unbounded so producers never block or drop.
type OpsQueue struct {
	logger logger.Logger
	name   string

	lock      sync.Mutex
	wake      chan struct{}
	ops       deque.Deque[func()]
	isStarted bool
	isStopped bool

	stopped core.Fuse
	done    core.Fuse
}

func NewOpsQueue(logger logger.Logger, name string) *OpsQueue {
	return &OpsQueue{
		logger: logger,
		name:   name,
		wake:   make(chan struct{}, 1),
	}
}

func (oq *OpsQueue) Start() {
	oq.lock.Lock()
	if oq.isStarted || oq.isStopped {
		oq.lock.Unlock()
		return
	}
	oq.isStarted = true
	oq.lock.Unlock()

	go oq.process()
}

// Stop discards pending operations. An operation already running is allowed to finish.
func (oq *OpsQueue) Stop() {
	oq.lock.Lock()
	if oq.isStopped {
		oq.lock.Unlock()
		return
	}
	oq.isStopped = true
	started := oq.isStarted
	oq.ops.Clear()
	oq.lock.Unlock()

	oq.stopped.Break()
	if !started {
		oq.done.Break()
	}
}

// Done fires once the processing goroutine has exited
func (oq *OpsQueue) Done() <-chan struct{} {
	return oq.done.Watch()
}

func (oq *OpsQueue) Enqueue(op func()) bool {
	oq.lock.Lock()
	if oq.isStopped {
		oq.lock.Unlock()
		oq.logger.Debugw("dropping op, queue stopped", "name", oq.name)
		return false
	}
	oq.ops.PushBack(op)
	oq.lock.Unlock()

	select {
	case oq.wake <- struct{}{}:
	default:
	}
	return true
}

// Run enqueues op and waits for it to complete. It returns early if ctx is done
// or the queue is stopped, in which case op may still run later or not at all.
// Must not be called from inside an op.
func (oq *OpsQueue) Run(ctx context.Context, op func()) error {
	finished := make(chan struct{})
	if !oq.Enqueue(func() {
		defer close(finished)
		op()
	}) {
		return ErrOpsQueueStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-oq.done.Watch():
		// the op may have completed right before the loop exited
		select {
		case <-finished:
			return nil
		default:
			return ErrOpsQueueStopped
		}
	}
}

func (oq *OpsQueue) process() {
	defer oq.done.Break()

	for {
		oq.lock.Lock()
		if oq.isStopped {
			oq.lock.Unlock()
			return
		}
		if oq.ops.Len() == 0 {
			oq.lock.Unlock()
			select {
			case <-oq.wake:
			case <-oq.stopped.Watch():
			}
			continue
		}
		op := oq.ops.PopFront()
		oq.lock.Unlock()

		oq.run(op)
	}
}

func (oq *OpsQueue) run(op func()) {
	defer func() {
		if r := recover(); r != nil {
			oq.logger.Errorw("recovered panic in op", nil, "name", oq.name, "panic", r)
		}
	}()
	op()
}
