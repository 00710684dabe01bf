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

// Package netmon produces download bandwidth estimates for quality adaptation.
package netmon

import (
	"sync"
	"time"

	"github.com/frostbyte73/core"
	"github.com/gammazero/workerpool"

	"github.com/myworldtech/meet/pkg/logger"
)

const DefaultSampleInterval = 3 * time.Second

// subscribers fans samples out in registration order on a single worker, so a slow
// subscriber delays later samples but never reorders them
type subscribers struct {
	lock   sync.Mutex
	nextID int
	subs   map[int]func(kbps int)
	order  []int
	worker *workerpool.WorkerPool
}

func newSubscribers() *subscribers {
	return &subscribers{
		subs:   make(map[int]func(int)),
		worker: workerpool.New(1),
	}
}

func (s *subscribers) add(f func(kbps int)) func() {
	s.lock.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = f
	s.order = append(s.order, id)
	s.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lock.Lock()
			defer s.lock.Unlock()
			delete(s.subs, id)
			for i, o := range s.order {
				if o == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *subscribers) publish(kbps int) {
	s.lock.Lock()
	fns := make([]func(int), 0, len(s.order))
	for _, id := range s.order {
		fns = append(fns, s.subs[id])
	}
	s.lock.Unlock()

	s.worker.Submit(func() {
		for _, f := range fns {
			f(kbps)
		}
	})
}

func (s *subscribers) stop() {
	s.worker.StopWait()
}

// ManualSource publishes whatever it is told, used by the CLI and tests
type ManualSource struct {
	subs *subscribers

	lock   sync.RWMutex
	closed bool
}

func NewManualSource() *ManualSource {
	return &ManualSource{subs: newSubscribers()}
}

func (m *ManualSource) OnSample(f func(kbps int)) func() {
	return m.subs.add(f)
}

func (m *ManualSource) Push(kbps int) {
	if kbps < 0 {
		return
	}
	m.lock.RLock()
	defer m.lock.RUnlock()
	if !m.closed {
		m.subs.publish(kbps)
	}
}

// Stop delivers pending samples and drops later pushes
func (m *ManualSource) Stop() {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.subs.stop()
}

// ByteCounter reports a monotonically increasing count of received bytes
type ByteCounter interface {
	BytesReceived() uint64
}

type StatsEstimatorParams struct {
	Counter  ByteCounter
	Interval time.Duration
	Logger   logger.Logger
}

// StatsEstimator turns a received byte counter into a kbps estimate every interval
type StatsEstimator struct {
	params StatsEstimatorParams
	subs   *subscribers

	lock      sync.Mutex
	lastBytes uint64
	lastAt    time.Time
	lastKbps  int

	started core.Fuse
	stop    core.Fuse
	done    core.Fuse
}

func NewStatsEstimator(params StatsEstimatorParams) *StatsEstimator {
	if params.Interval <= 0 {
		params.Interval = DefaultSampleInterval
	}
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	return &StatsEstimator{
		params: params,
		subs:   newSubscribers(),
	}
}

func (s *StatsEstimator) OnSample(f func(kbps int)) func() {
	return s.subs.add(f)
}

func (s *StatsEstimator) Start() {
	if s.started.IsBroken() || s.stop.IsBroken() {
		return
	}
	s.started.Break()

	s.lock.Lock()
	s.lastBytes = s.params.Counter.BytesReceived()
	s.lastAt = time.Now()
	s.lock.Unlock()

	go s.worker()
}

func (s *StatsEstimator) Stop() {
	if s.stop.IsBroken() {
		return
	}
	s.stop.Break()
	if s.started.IsBroken() {
		<-s.done.Watch()
	}
	s.subs.stop()
}

// LastKbps returns the most recent estimate
func (s *StatsEstimator) LastKbps() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.lastKbps
}

func (s *StatsEstimator) worker() {
	defer s.done.Break()

	ticker := time.NewTicker(s.params.Interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.sample(now)
		case <-s.stop.Watch():
			return
		}
	}
}

func (s *StatsEstimator) sample(now time.Time) {
	bytes := s.params.Counter.BytesReceived()

	s.lock.Lock()
	elapsed := now.Sub(s.lastAt)
	delta := bytes - s.lastBytes
	if bytes < s.lastBytes {
		// counter reset, eg. the engine was replaced
		delta = 0
	}
	s.lastBytes = bytes
	s.lastAt = now
	if elapsed <= 0 {
		s.lock.Unlock()
		return
	}
	kbps := int(float64(delta*8) / 1000 / elapsed.Seconds())
	s.lastKbps = kbps
	s.lock.Unlock()

	s.params.Logger.Debugw("bandwidth sample", "kbps", kbps)
	s.subs.publish(kbps)
}
