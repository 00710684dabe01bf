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

package supervisor

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/telemetry/prometheus"
)

var ErrRecoveryDeadline = errors.New("connection not recovered before deadline")

type ConnectionSupervisorParams struct {
	Deadline      time.Duration
	RetryInterval time.Duration
	Logger        logger.Logger

	// Teardown releases media state bound to the lost connection, locally
	Teardown      func(ctx context.Context)
	WaitConnected func(ctx context.Context) error
	Rejoin        func(ctx context.Context) error
	// IsTerminal reports rejoin errors that must not be retried
	IsTerminal  func(err error) bool
	OnRecovered func()
	OnGiveUp    func(err error)
}

type attempt struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// ConnectionSupervisor restores a session after the signalling connection drops.
// Each disconnect starts a fresh attempt bounded by Deadline, superseding any attempt in flight.
type ConnectionSupervisor struct {
	params ConnectionSupervisorParams

	lock    sync.Mutex
	current *attempt
	stopped bool

	recovering atomic.Bool
}

func NewConnectionSupervisor(params ConnectionSupervisorParams) *ConnectionSupervisor {
	if params.RetryInterval <= 0 {
		params.RetryInterval = time.Second
	}
	return &ConnectionSupervisor{
		params: params,
	}
}

func (s *ConnectionSupervisor) IsRecovering() bool {
	return s.recovering.Load()
}

func (s *ConnectionSupervisor) OnDisconnect(reason error) {
	s.lock.Lock()
	if s.stopped {
		s.lock.Unlock()
		return
	}

	var prevDone chan struct{}
	if s.current != nil {
		s.current.cancel()
		prevDone = s.current.done
		s.params.Logger.Debugw("superseding pending recovery")
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.params.Deadline)
	a := &attempt{cancel: cancel, done: make(chan struct{})}
	s.current = a
	s.recovering.Store(true)
	s.lock.Unlock()

	s.params.Logger.Infow("connection lost, recovering", "reason", reason, "deadline", s.params.Deadline)
	go s.recover(ctx, a, prevDone)
}

// Stop cancels any pending attempt and waits for its teardown to finish
func (s *ConnectionSupervisor) Stop() {
	s.lock.Lock()
	s.stopped = true
	a := s.current
	s.lock.Unlock()

	if a != nil {
		a.cancel()
		<-a.done
	}
}

func (s *ConnectionSupervisor) recover(ctx context.Context, a *attempt, prevDone chan struct{}) {
	defer close(a.done)
	defer a.cancel()

	// a superseded attempt must finish unwinding before this one touches shared state
	if prevDone != nil {
		<-prevDone
	}

	start := time.Now()
	s.params.Teardown(ctx)

	err := s.attemptLoop(ctx)

	s.lock.Lock()
	isCurrent := s.current == a
	if isCurrent {
		s.current = nil
		s.recovering.Store(false)
	}
	s.lock.Unlock()

	switch {
	case err == nil:
		s.params.Logger.Infow("connection recovered", "duration", time.Since(start))
		prometheus.IncrementRecovery("success")
		s.params.OnRecovered()

	case errors.Is(err, context.Canceled):
		// superseded or stopped, the newer owner takes over
		s.params.Logger.Debugw("recovery cancelled")
		prometheus.IncrementRecovery("cancelled")

	case isCurrent:
		s.params.Logger.Warnw("giving up on connection recovery", err, "duration", time.Since(start))
		prometheus.IncrementRecovery("failed")
		s.params.OnGiveUp(err)
	}
}

func (s *ConnectionSupervisor) attemptLoop(ctx context.Context) error {
	for {
		if err := s.params.WaitConnected(ctx); err != nil {
			return s.mapContextErr(ctx, err)
		}

		err := s.params.Rejoin(ctx)
		if err == nil {
			return nil
		}
		if s.params.IsTerminal != nil && s.params.IsTerminal(err) {
			return err
		}
		if ctx.Err() != nil {
			return s.mapContextErr(ctx, ctx.Err())
		}
		s.params.Logger.Infow("rejoin failed, retrying", "error", err)

		select {
		case <-time.After(s.params.RetryInterval):
		case <-ctx.Done():
			return s.mapContextErr(ctx, ctx.Err())
		}
	}
}

func (s *ConnectionSupervisor) mapContextErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrRecoveryDeadline
	}
	if ctx.Err() != nil {
		return context.Canceled
	}
	return err
}
