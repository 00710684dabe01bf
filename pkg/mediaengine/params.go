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

package mediaengine

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pion/webrtc/v3"
	"github.com/pkg/errors"

	"github.com/myworldtech/meet/pkg/rtc/types"
)

const mimeTypeRTX = "video/rtx"

// codecs the device can encode and decode, in preference order
var supportedMimeTypes = []string{
	webrtc.MimeTypeOpus,
	webrtc.MimeTypeVP8,
	webrtc.MimeTypeH264,
}

type RTCPFeedback struct {
	Type      string `json:"type"`
	Parameter string `json:"parameter,omitempty"`
}

type RTPCodecCapability struct {
	Kind                 types.MediaKind        `json:"kind"`
	MimeType             string                 `json:"mimeType"`
	PreferredPayloadType uint8                  `json:"preferredPayloadType"`
	ClockRate            uint32                 `json:"clockRate"`
	Channels             uint16                 `json:"channels,omitempty"`
	Parameters           map[string]interface{} `json:"parameters,omitempty"`
	RTCPFeedback         []RTCPFeedback         `json:"rtcpFeedback,omitempty"`
}

type RTPHeaderExtensionCapability struct {
	Kind        types.MediaKind `json:"kind"`
	URI         string          `json:"uri"`
	PreferredID int             `json:"preferredId"`
	Direction   string          `json:"direction,omitempty"`
}

type RTPCapabilities struct {
	Codecs           []RTPCodecCapability           `json:"codecs"`
	HeaderExtensions []RTPHeaderExtensionCapability `json:"headerExtensions"`
}

type RTPCodecParameters struct {
	MimeType     string                 `json:"mimeType"`
	PayloadType  uint8                  `json:"payloadType"`
	ClockRate    uint32                 `json:"clockRate"`
	Channels     uint16                 `json:"channels,omitempty"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"`
	RTCPFeedback []RTCPFeedback         `json:"rtcpFeedback,omitempty"`
}

type RTXParameters struct {
	SSRC uint32 `json:"ssrc"`
}

type RTPEncoding struct {
	SSRC                  uint32         `json:"ssrc,omitempty"`
	RID                   string         `json:"rid,omitempty"`
	RTX                   *RTXParameters `json:"rtx,omitempty"`
	MaxBitrate            uint64         `json:"maxBitrate,omitempty"`
	ScaleResolutionDownBy float64        `json:"scaleResolutionDownBy,omitempty"`
}

type RTCPParameters struct {
	CNAME       string `json:"cname,omitempty"`
	ReducedSize bool   `json:"reducedSize"`
}

type RTPParameters struct {
	MID              string               `json:"mid,omitempty"`
	Codecs           []RTPCodecParameters `json:"codecs"`
	HeaderExtensions []json.RawMessage    `json:"headerExtensions"`
	Encodings        []RTPEncoding        `json:"encodings"`
	RTCP             RTCPParameters       `json:"rtcp"`
}

type ICECandidate struct {
	Foundation string `json:"foundation"`
	Priority   uint32 `json:"priority"`
	IP         string `json:"ip,omitempty"`
	Address    string `json:"address,omitempty"`
	Protocol   string `json:"protocol"`
	Port       uint16 `json:"port"`
	Type       string `json:"type"`
	TCPType    string `json:"tcpType,omitempty"`
}

type DTLSParameters struct {
	Role         string                   `json:"role,omitempty"`
	Fingerprints []webrtc.DTLSFingerprint `json:"fingerprints"`
}

type SCTPParameters struct {
	Port           uint16 `json:"port"`
	OS             uint16 `json:"OS"`
	MIS            uint16 `json:"MIS"`
	MaxMessageSize uint32 `json:"maxMessageSize"`
}

type numStreams struct {
	OS  uint16 `json:"OS"`
	MIS uint16 `json:"MIS"`
}

type sctpCapabilities struct {
	NumStreams numStreams `json:"numStreams"`
}

var defaultSCTPCapabilities = sctpCapabilities{NumStreams: numStreams{OS: 1024, MIS: 1024}}

func isSupported(mimeType string) bool {
	for _, m := range supportedMimeTypes {
		if strings.EqualFold(m, mimeType) {
			return true
		}
	}
	return false
}

func codecType(kind types.MediaKind) webrtc.RTPCodecType {
	if kind == types.MediaKindAudio {
		return webrtc.RTPCodecTypeAudio
	}
	return webrtc.RTPCodecTypeVideo
}

// matchCodecs keeps the router codecs this device supports, with their rtx companions
func matchCodecs(router RTPCapabilities) []RTPCodecCapability {
	var matched []RTPCodecCapability
	payloadTypes := map[uint8]bool{}
	for _, c := range router.Codecs {
		if !c.Kind.Valid() || !isSupported(c.MimeType) {
			continue
		}
		matched = append(matched, c)
		payloadTypes[c.PreferredPayloadType] = true
	}
	for _, c := range router.Codecs {
		if !strings.EqualFold(c.MimeType, mimeTypeRTX) {
			continue
		}
		if apt, ok := aptOf(c); ok && payloadTypes[apt] {
			matched = append(matched, c)
		}
	}
	return matched
}

func aptOf(c RTPCodecCapability) (uint8, bool) {
	raw, ok := c.Parameters["apt"]
	if !ok {
		return 0, false
	}
	apt, err := strconv.ParseUint(paramValue(raw), 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(apt), true
}

// json numbers decode as float64, integral ones must not render in exponent form
func paramValue(v interface{}) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(v)
}

// fmtpLine renders codec parameters as an sdp fmtp line with sorted keys
func fmtpLine(parameters map[string]interface{}) string {
	if len(parameters) == 0 {
		return ""
	}
	keys := make([]string, 0, len(parameters))
	for k := range parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+paramValue(parameters[k]))
	}
	return strings.Join(parts, ";")
}

func toFeedback(fb []RTCPFeedback) []webrtc.RTCPFeedback {
	out := make([]webrtc.RTCPFeedback, 0, len(fb))
	for _, f := range fb {
		out = append(out, webrtc.RTCPFeedback{Type: f.Type, Parameter: f.Parameter})
	}
	return out
}

func toCodecCapability(c RTPCodecCapability) webrtc.RTPCodecCapability {
	return webrtc.RTPCodecCapability{
		MimeType:     c.MimeType,
		ClockRate:    c.ClockRate,
		Channels:     c.Channels,
		SDPFmtpLine:  fmtpLine(c.Parameters),
		RTCPFeedback: toFeedback(c.RTCPFeedback),
	}
}

func toCodecParameters(c RTPCodecCapability) webrtc.RTPCodecParameters {
	return webrtc.RTPCodecParameters{
		RTPCodecCapability: toCodecCapability(c),
		PayloadType:        webrtc.PayloadType(c.PreferredPayloadType),
	}
}

func parseICEParameters(raw json.RawMessage) (webrtc.ICEParameters, error) {
	var params webrtc.ICEParameters
	if err := json.Unmarshal(raw, &params); err != nil {
		return params, errors.Wrap(ErrInvalidParameters, err.Error())
	}
	if params.UsernameFragment == "" || params.Password == "" {
		return params, errors.Wrap(ErrInvalidParameters, "missing ice credentials")
	}
	return params, nil
}

func parseICECandidates(raw json.RawMessage) ([]webrtc.ICECandidate, error) {
	var candidates []ICECandidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, errors.Wrap(ErrInvalidParameters, err.Error())
	}

	out := make([]webrtc.ICECandidate, 0, len(candidates))
	for _, c := range candidates {
		protocol, err := webrtc.NewICEProtocol(c.Protocol)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidParameters, err.Error())
		}
		typ, err := webrtc.NewICECandidateType(c.Type)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidParameters, err.Error())
		}
		address := c.Address
		if address == "" {
			address = c.IP
		}
		out = append(out, webrtc.ICECandidate{
			Foundation: c.Foundation,
			Priority:   c.Priority,
			Address:    address,
			Protocol:   protocol,
			Port:       c.Port,
			Typ:        typ,
			Component:  1,
			TCPType:    c.TCPType,
		})
	}
	return out, nil
}

// parseRemoteDTLS reads the server parameters. The device always takes the client role,
// so the server is pinned to the server role regardless of what it advertised.
func parseRemoteDTLS(raw json.RawMessage) (webrtc.DTLSParameters, error) {
	var params DTLSParameters
	if err := json.Unmarshal(raw, &params); err != nil {
		return webrtc.DTLSParameters{}, errors.Wrap(ErrInvalidParameters, err.Error())
	}
	if len(params.Fingerprints) == 0 {
		return webrtc.DTLSParameters{}, errors.Wrap(ErrInvalidParameters, "missing dtls fingerprints")
	}
	return webrtc.DTLSParameters{
		Role:         webrtc.DTLSRoleServer,
		Fingerprints: params.Fingerprints,
	}, nil
}

func localDTLS(params webrtc.DTLSParameters) (json.RawMessage, error) {
	return json.Marshal(DTLSParameters{
		Role:         "client",
		Fingerprints: params.Fingerprints,
	})
}

func parseSCTPParameters(raw json.RawMessage) (*SCTPParameters, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var params SCTPParameters
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, errors.Wrap(ErrInvalidParameters, err.Error())
	}
	return &params, nil
}

// produceParameters describes a local track to the server, one encoding per sender ssrc
func produceParameters(mid string, codec RTPCodecCapability, ssrcs []uint32, encodings []types.Encoding, cname string) RTPParameters {
	params := RTPParameters{
		MID: mid,
		Codecs: []RTPCodecParameters{{
			MimeType:     codec.MimeType,
			PayloadType:  codec.PreferredPayloadType,
			ClockRate:    codec.ClockRate,
			Channels:     codec.Channels,
			Parameters:   codec.Parameters,
			RTCPFeedback: codec.RTCPFeedback,
		}},
		HeaderExtensions: []json.RawMessage{},
		RTCP: RTCPParameters{
			CNAME:       cname,
			ReducedSize: true,
		},
	}
	for i, ssrc := range ssrcs {
		encoding := RTPEncoding{SSRC: ssrc}
		if i < len(encodings) {
			encoding.RID = encodings[i].RID
			encoding.MaxBitrate = encodings[i].MaxBitrate
			encoding.ScaleResolutionDownBy = encodings[i].ScaleResolutionDownBy
		}
		params.Encodings = append(params.Encodings, encoding)
	}
	return params
}

// consumeParameters extracts what a receiver needs from the server's consumer parameters
func consumeParameters(raw json.RawMessage) (webrtc.RTPCodecParameters, webrtc.SSRC, error) {
	var params RTPParameters
	if err := json.Unmarshal(raw, &params); err != nil {
		return webrtc.RTPCodecParameters{}, 0, errors.Wrap(ErrInvalidParameters, err.Error())
	}
	if len(params.Codecs) == 0 || len(params.Encodings) == 0 || params.Encodings[0].SSRC == 0 {
		return webrtc.RTPCodecParameters{}, 0, errors.Wrap(ErrInvalidParameters, "consumer parameters need a codec and an ssrc")
	}

	c := params.Codecs[0]
	codec := webrtc.RTPCodecParameters{
		RTPCodecCapability: webrtc.RTPCodecCapability{
			MimeType:     c.MimeType,
			ClockRate:    c.ClockRate,
			Channels:     c.Channels,
			SDPFmtpLine:  fmtpLine(c.Parameters),
			RTCPFeedback: toFeedback(c.RTCPFeedback),
		},
		PayloadType: webrtc.PayloadType(c.PayloadType),
	}
	return codec, webrtc.SSRC(params.Encodings[0].SSRC), nil
}
