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

package types

import "fmt"

type MediaKind string

const (
	MediaKindAudio MediaKind = "audio"
	MediaKindVideo MediaKind = "video"
)

func (k MediaKind) Valid() bool {
	return k == MediaKindAudio || k == MediaKindVideo
}

type Direction string

const (
	DirectionSend Direction = "send"
	DirectionRecv Direction = "recv"
)

type SessionState int32

const (
	SessionStateIdle SessionState = iota
	SessionStateJoining
	SessionStateNegotiating
	SessionStateActive
	SessionStateClosing
	SessionStateClosed
)

func (s SessionState) String() string {
	switch s {
	case SessionStateIdle:
		return "IDLE"
	case SessionStateJoining:
		return "JOINING"
	case SessionStateNegotiating:
		return "NEGOTIATING"
	case SessionStateActive:
		return "ACTIVE"
	case SessionStateClosing:
		return "CLOSING"
	case SessionStateClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("%d", int(s))
	}
}

// QualityTier selects the simulcast spatial layer requested for remote video
type QualityTier int32

const (
	QualityLow QualityTier = iota
	QualityMedium
	QualityHigh
)

func (q QualityTier) String() string {
	switch q {
	case QualityLow:
		return "LOW"
	case QualityMedium:
		return "MEDIUM"
	case QualityHigh:
		return "HIGH"
	default:
		return fmt.Sprintf("%d", int(q))
	}
}

func (q QualityTier) SpatialLayer() int {
	return int(q)
}

type Participant struct {
	PeerID      string
	DisplayName string
	PhotoURL    string
	// NamePending is set until the profile lookup resolves
	NamePending bool
	IsLocal     bool
	Muted       bool
	VideoPaused bool

	AudioConsumerID string
	VideoConsumerID string
	AudioTrackID    string
	VideoTrackID    string
}

type ChatMessage struct {
	SenderID   string
	SenderName string
	Text       string
	IsLocal    bool
}

type PendingJoinRequest struct {
	PeerID        string
	CorrelationID string
}
