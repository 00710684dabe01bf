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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myworldtech/meet/pkg/rtc/types"
)

func TestAdmissionQueue(t *testing.T) {
	t.Run("fifo", func(t *testing.T) {
		q := NewAdmissionQueue()
		_, ok := q.Dequeue()
		require.False(t, ok)

		for _, id := range []string{"A", "B", "C"} {
			q.Enqueue(types.PendingJoinRequest{PeerID: id, CorrelationID: "c-" + id})
		}
		require.Equal(t, []types.PendingJoinRequest{
			{PeerID: "A", CorrelationID: "c-A"},
			{PeerID: "B", CorrelationID: "c-B"},
			{PeerID: "C", CorrelationID: "c-C"},
		}, q.Pending())

		for _, id := range []string{"A", "B", "C"} {
			req, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, id, req.PeerID)
		}
		_, ok = q.Dequeue()
		require.False(t, ok)
		require.Empty(t, q.Pending())
	})

	t.Run("answer once", func(t *testing.T) {
		q := NewAdmissionQueue()
		q.Enqueue(types.PendingJoinRequest{PeerID: "A", CorrelationID: "c-A"})

		req, err := q.Answer("c-A")
		require.NoError(t, err)
		require.Equal(t, "A", req.PeerID)

		_, err = q.Answer("c-A")
		require.ErrorIs(t, err, ErrAlreadyAnswered)
		_, err = q.Answer("c-unknown")
		require.ErrorIs(t, err, ErrUnknownRequest)
	})

	t.Run("answered requests are skipped", func(t *testing.T) {
		q := NewAdmissionQueue()
		q.Enqueue(types.PendingJoinRequest{PeerID: "A", CorrelationID: "c-A"})
		q.Enqueue(types.PendingJoinRequest{PeerID: "B", CorrelationID: "c-B"})

		_, err := q.Answer("c-A")
		require.NoError(t, err)
		require.Len(t, q.Pending(), 1)

		req, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, "B", req.PeerID)
	})
}
