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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/logger"
)

func TestOpsQueue(t *testing.T) {
	t.Run("runs in order", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()
		defer oq.Stop()

		var lock sync.Mutex
		var order []int
		for i := 0; i < 1000; i++ {
			i := i
			require.True(t, oq.Enqueue(func() {
				lock.Lock()
				order = append(order, i)
				lock.Unlock()
			}))
		}
		require.NoError(t, oq.Run(context.Background(), func() {}))

		lock.Lock()
		defer lock.Unlock()
		require.Len(t, order, 1000)
		for i, v := range order {
			require.Equal(t, i, v)
		}
	})

	t.Run("enqueue before start", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test")
		ran := atomic.NewBool(false)
		oq.Enqueue(func() { ran.Store(true) })
		oq.Start()
		defer oq.Stop()

		require.Eventually(t, ran.Load, time.Second, 5*time.Millisecond)
	})

	t.Run("run waits for op", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()
		defer oq.Stop()

		value := 0
		require.NoError(t, oq.Run(context.Background(), func() {
			time.Sleep(10 * time.Millisecond)
			value = 42
		}))
		require.Equal(t, 42, value)
	})

	t.Run("run honours context", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()
		defer oq.Stop()

		release := make(chan struct{})
		oq.Enqueue(func() { <-release })
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, oq.Run(ctx, func() {}), context.DeadlineExceeded)
	})

	t.Run("stop drops pending", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()

		release := make(chan struct{})
		started := make(chan struct{})
		oq.Enqueue(func() {
			close(started)
			<-release
		})
		<-started

		count := atomic.NewInt32(0)
		for i := 0; i < 10; i++ {
			oq.Enqueue(func() { count.Inc() })
		}
		oq.Stop()
		close(release)

		<-oq.Done()
		require.Equal(t, int32(0), count.Load())
		require.False(t, oq.Enqueue(func() {}))
		require.ErrorIs(t, oq.Run(context.Background(), func() {}), ErrOpsQueueStopped)
	})

	t.Run("survives panic", func(t *testing.T) {
		oq := NewOpsQueue(logger.GetLogger(), "test")
		oq.Start()
		defer oq.Stop()

		oq.Enqueue(func() { panic("boom") })
		ran := false
		require.NoError(t, oq.Run(context.Background(), func() { ran = true }))
		require.True(t, ran)
	})
}
