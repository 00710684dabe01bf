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

import "encoding/json"

// client requests
const (
	EventJoinRoom             = "join-room"
	EventCreateSendTransport  = "create-send-transport"
	EventCreateRecvTransport  = "create-recv-transport"
	EventConnectSendTransport = "connect-send-transport"
	EventConnectRecvTransport = "connect-recv-transport"
	EventProduce              = "produce"
	EventConsume              = "consume"
	EventPauseProducer        = "pause-producer"
	EventResumeProducer       = "resume-producer"
	EventPauseConsumer        = "pause-consumer"
	EventResumeConsumer       = "resume-consumer"
	EventSetConsumerQuality   = "set-consumer-quality"
	EventMessage              = "message"
	EventAskToJoinResponse    = "ask-to-join-response"
	EventDisconnectPeer       = "disconnect-peer"
)

// server events
const (
	EventJoinApproved         = "join-approved"
	EventRoomJoined           = "room-joined"
	EventNewProducer          = "new-producer"
	EventProducerPaused       = "producer-paused"
	EventProducerResumed      = "producer-resumed"
	EventPeerDisconnected     = "peer-disconnected"
	EventReceiveMessage       = "receive-message"
	EventAskToJoin            = "ask-to-join"
	EventQualityChangeSuccess = "quality-change-success"
	EventQualityChangeError   = "quality-change-error"
)

type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
	PeerID string `json:"peerId"`
	IsHost bool   `json:"isHost"`
}

type JoinApproved struct {
	Approved bool `json:"approved"`
}

type ProducerInfo struct {
	ProducerID string    `json:"producerId"`
	PeerID     string    `json:"peerId,omitempty"`
	Kind       MediaKind `json:"kind,omitempty"`
}

type RoomSnapshot struct {
	RouterRTPCapabilities json.RawMessage `json:"routerRtpCapabilities"`
	Producers             []ProducerInfo  `json:"producers"`
	// peers mapped to their presence, only true entries are in the room
	Peers map[string]bool `json:"peers"`
}

type CreateTransportRequest struct {
	SCTPCapabilities json.RawMessage `json:"sctpCapabilities,omitempty"`
}

type TransportParameters struct {
	ID             string          `json:"id"`
	ICEParameters  json.RawMessage `json:"iceParameters"`
	ICECandidates  json.RawMessage `json:"iceCandidates"`
	DTLSParameters json.RawMessage `json:"dtlsParameters"`
	SCTPParameters json.RawMessage `json:"sctpParameters,omitempty"`
}

type ConnectTransportRequest struct {
	DTLSParameters json.RawMessage `json:"dtlsParameters"`
}

type ProduceRequest struct {
	TransportID   string          `json:"transportId"`
	Kind          MediaKind       `json:"kind"`
	RTPParameters json.RawMessage `json:"rtpParameters"`
}

type ProduceResponse struct {
	ID string `json:"id"`
}

type ConsumeRequest struct {
	ProducerID      string          `json:"producerId"`
	RTPCapabilities json.RawMessage `json:"rtpCapabilities"`
}

type ConsumeResponse struct {
	PeerID        string          `json:"peerId"`
	ID            string          `json:"id"`
	ProducerID    string          `json:"producerId,omitempty"`
	Kind          MediaKind       `json:"kind"`
	RTPParameters json.RawMessage `json:"rtpParameters"`
}

type ProducerRequest struct {
	ProducerID string `json:"producerId"`
}

type ConsumerRequest struct {
	ConsumerID string `json:"consumerId"`
}

type SetConsumerQualityRequest struct {
	ConsumerID    string `json:"consumerId"`
	SpatialLayer  int    `json:"spatialLayer"`
	TemporalLayer int    `json:"temporalLayer"`
}

type ChatMessageRequest struct {
	Text string `json:"text"`
}

type AskToJoinResponse struct {
	Approved bool   `json:"approved"`
	To       string `json:"to"`
}

type NewProducerEvent struct {
	PeerID     string `json:"peerId"`
	ProducerID string `json:"producerId"`
}

type ProducerStateEvent struct {
	PeerID string    `json:"peerId"`
	Kind   MediaKind `json:"kind"`
}

type PeerDisconnectedEvent struct {
	PeerID string `json:"peerId"`
}

type ReceiveMessageEvent struct {
	PeerID string `json:"peerId"`
	Text   string `json:"text"`
}

type AskToJoinEvent struct {
	RequesterPeerID   string `json:"requesterPeerId"`
	RequesterSocketID string `json:"requesterSocketId"`
}

type QualityChangeEvent struct {
	ConsumerID   string `json:"consumerId,omitempty"`
	SpatialLayer *int   `json:"spatialLayer,omitempty"`
	Error        string `json:"error,omitempty"`
}
