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

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type TransportOptions struct {
	ID             string
	ICEParameters  json.RawMessage
	ICECandidates  json.RawMessage
	DTLSParameters json.RawMessage
	SCTPParameters json.RawMessage
}

// Encoding describes one simulcast layer of a published video track
type Encoding struct {
	RID                   string  `json:"rid"`
	Active                bool    `json:"active"`
	ScaleResolutionDownBy float64 `json:"scaleResolutionDownBy"`
	MaxBitrate            uint64  `json:"maxBitrate,omitempty"`
}

type ConsumerOptions struct {
	ID            string
	ProducerID    string
	Kind          MediaKind
	RTPParameters json.RawMessage
}

// TransportListener is called by the media engine when a transport needs signalling.
// Calls may block, they are made from the goroutine driving the engine operation.
type TransportListener interface {
	// OnConnect fires once, the first time the transport is used. Media does not flow until it returns.
	OnConnect(transport Transport, dtlsParameters json.RawMessage) error
	OnConnectionStateChange(transport Transport, state string)
}

type SendTransportListener interface {
	TransportListener
	// OnProduce must return the server assigned producer id
	OnProduce(transport Transport, kind MediaKind, rtpParameters json.RawMessage) (string, error)
}

type Transport interface {
	ID() string
	Direction() Direction
	Close()
	IsClosed() bool
}

//counterfeiter:generate . SendTransport
type SendTransport interface {
	Transport
	Produce(listener ProducerListener, track LocalTrack, encodings []Encoding) (Producer, error)
}

//counterfeiter:generate . RecvTransport
type RecvTransport interface {
	Transport
	Consume(listener ConsumerListener, options ConsumerOptions) (Consumer, error)
}

type ProducerListener interface {
	OnTransportClose(producer Producer)
}

type ConsumerListener interface {
	OnTransportClose(consumer Consumer)
}

//counterfeiter:generate . Producer
type Producer interface {
	ID() string
	Kind() MediaKind
	Track() LocalTrack
	Pause()
	Resume()
	IsPaused() bool
	Close()
	IsClosed() bool
}

//counterfeiter:generate . Consumer
type Consumer interface {
	ID() string
	ProducerID() string
	Kind() MediaKind
	Track() Track
	Pause()
	Resume()
	IsPaused() bool
	Close()
	IsClosed() bool
}

type Track interface {
	ID() string
	Kind() MediaKind
	SetEnabled(enabled bool)
	Enabled() bool
}

//counterfeiter:generate . LocalTrack
type LocalTrack interface {
	Track
	// Dispose releases the capture resource backing the track
	Dispose()
}

//counterfeiter:generate . MediaEngine

// MediaEngine is the device side of the SFU protocol: it owns codecs, transports and tracks.
type MediaEngine interface {
	Load(routerRTPCapabilities json.RawMessage) error
	IsLoaded() bool
	CanProduce(kind MediaKind) bool
	RTPCapabilities() json.RawMessage
	SCTPCapabilities() json.RawMessage

	CreateSendTransport(listener SendTransportListener, options TransportOptions) (SendTransport, error)
	CreateRecvTransport(listener TransportListener, options TransportOptions) (RecvTransport, error)
	CreateTrack(kind MediaKind) (LocalTrack, error)

	SwitchCamera() error
	RequestKeyFrame(consumerID string) error
	BytesReceived() uint64
	Close()
}
