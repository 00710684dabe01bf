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

package signalling

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Message is the wire envelope.
//
//	request:   {"event": "produce", "id": 7, "data": {...}}
//	ack:       {"ack": 7, "data": {...}}
//	push/emit: {"event": "new-producer", "data": {...}}
type Message struct {
	Event string          `json:"event,omitempty"`
	ID    uint64          `json:"id,omitempty"`
	Ack   uint64          `json:"ack,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type ackError struct {
	Error string `json:"error"`
}

func NewMessage(event string, id uint64, payload interface{}) (*Message, error) {
	msg := &Message{Event: event, ID: id}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		msg.Data = data
	}
	return msg, nil
}

// DecodeAck maps an acknowledgement payload onto response.
// An object carrying a non-empty "error" field is a server side rejection.
func DecodeAck(data json.RawMessage, response interface{}) error {
	if len(data) > 0 && data[0] == '{' {
		var ae ackError
		if err := json.Unmarshal(data, &ae); err == nil && ae.Error != "" {
			return errors.Wrap(ErrRequestFailed, ae.Error)
		}
	}

	if response == nil {
		return nil
	}
	if len(data) == 0 || string(data) == "null" {
		return errors.Wrap(ErrMalformedResponse, "empty acknowledgement")
	}
	if err := json.Unmarshal(data, response); err != nil {
		return errors.Wrap(ErrMalformedResponse, err.Error())
	}
	return nil
}
