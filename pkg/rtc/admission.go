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
	"sync"

	"github.com/gammazero/deque"

	"github.com/myworldtech/meet/pkg/rtc/types"
)

// AdmissionQueue holds ask-to-join requests in arrival order.
// A request stays answerable after it has been dequeued, until it is answered once.
type AdmissionQueue struct {
	lock        sync.Mutex
	queue       deque.Deque[types.PendingJoinRequest]
	outstanding map[string]types.PendingJoinRequest
	answered    map[string]struct{}
}

func NewAdmissionQueue() *AdmissionQueue {
	return &AdmissionQueue{
		outstanding: make(map[string]types.PendingJoinRequest),
		answered:    make(map[string]struct{}),
	}
}

func (a *AdmissionQueue) Enqueue(req types.PendingJoinRequest) {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.queue.PushBack(req)
	a.outstanding[req.CorrelationID] = req
}

// Dequeue pops the oldest request not yet handed out
func (a *AdmissionQueue) Dequeue() (types.PendingJoinRequest, bool) {
	a.lock.Lock()
	defer a.lock.Unlock()

	for a.queue.Len() > 0 {
		req := a.queue.PopFront()
		// skip requests answered while still queued
		if _, ok := a.outstanding[req.CorrelationID]; ok {
			return req, true
		}
	}
	return types.PendingJoinRequest{}, false
}

// Pending lists queued requests in arrival order
func (a *AdmissionQueue) Pending() []types.PendingJoinRequest {
	a.lock.Lock()
	defer a.lock.Unlock()

	pending := make([]types.PendingJoinRequest, 0, a.queue.Len())
	for i := 0; i < a.queue.Len(); i++ {
		req := a.queue.At(i)
		if _, ok := a.outstanding[req.CorrelationID]; ok {
			pending = append(pending, req)
		}
	}
	return pending
}

// Answer marks a request as answered, it fails for unknown or already answered requests
func (a *AdmissionQueue) Answer(correlationID string) (types.PendingJoinRequest, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	req, ok := a.outstanding[correlationID]
	if !ok {
		if a.answeredLocked(correlationID) {
			return types.PendingJoinRequest{}, ErrAlreadyAnswered
		}
		return types.PendingJoinRequest{}, ErrUnknownRequest
	}
	delete(a.outstanding, correlationID)
	a.answered[correlationID] = struct{}{}
	return req, nil
}

func (a *AdmissionQueue) answeredLocked(correlationID string) bool {
	_, ok := a.answered[correlationID]
	return ok
}
